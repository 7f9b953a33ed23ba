package dto

type BuildingRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email"`
	ContactNumber string `json:"contactNumber"`
}
