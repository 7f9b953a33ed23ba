package controllers

import (
	"rentdesk/dto"
	"rentdesk/response"
	"rentdesk/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	users *services.UserService
}

func NewProfileController(users *services.UserService) *ProfileController {
	return &ProfileController{users: users}
}

// GetProfile godoc
// @Summary  Current user profile
// @Tags     profile
// @Security BearerAuth
// @Success  200 {object} response.Response{data=dto.UserResponse}
// @Router   /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	user, err := p.users.GetProfile(c.Request.Context(), id.UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToUserResponse(user))
}

// UpdateProfile godoc
// @Summary  Update the current user's profile
// @Tags     profile
// @Security BearerAuth
// @Param    body body dto.ProfileRequest true "Fields to change"
// @Success  200 {object} response.Response{data=dto.UserResponse}
// @Router   /profile [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req dto.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := p.users.UpdateProfile(c.Request.Context(), id.UserID, profileUpdate(req))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToUserResponse(user))
}

func profileUpdate(req dto.ProfileRequest) services.ProfileUpdate {
	return services.ProfileUpdate{
		Name:             req.Name,
		Email:            req.Email,
		ContactNumber:    req.ContactNumber,
		CurrentAddress:   req.CurrentAddress,
		PermanentAddress: req.PermanentAddress,
		Password:         req.Password,
	}
}
