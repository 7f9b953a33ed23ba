package dto

import (
	"rentdesk/models"
	"rentdesk/types"
)

// UserResponse embeds the public user fields and the assigned room, if any.
type UserResponse struct {
	types.UserResponse
	AssignedRoom *models.Room `json:"assignedRoom,omitempty"`
}

// ProfileRequest updates profile fields; omitted fields are left unchanged.
type ProfileRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email" binding:"omitempty,email"`
	ContactNumber    *string `json:"contactNumber"`
	CurrentAddress   *string `json:"currentAddress"`
	PermanentAddress *string `json:"permanentAddress"`
	Password         *string `json:"password" binding:"omitempty,min=6"`
}

type TenantListResponse struct {
	Tenants     []UserResponse `json:"tenants"`
	Suggestions []string       `json:"suggestions,omitempty"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserResponse: types.UserResponse{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			ContactNumber:    u.ContactNumber,
			CurrentAddress:   u.CurrentAddress,
			PermanentAddress: u.PermanentAddress,
			Role:             u.Role,
		},
		AssignedRoom: u.AssignedRoom,
	}
}

func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
