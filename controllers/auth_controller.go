package controllers

import (
	"rentdesk/dto"
	"rentdesk/middleware"
	"rentdesk/response"
	"rentdesk/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary  Tenant self-registration
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.RegisterRequest true "Account"
// @Success  201 {object} response.Response
// @Failure  409 {object} response.Response
// @Router   /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := a.auth.Register(c.Request.Context(), services.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		ContactNumber:    req.ContactNumber,
		CurrentAddress:   req.CurrentAddress,
		PermanentAddress: req.PermanentAddress,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, dto.ToUserResponse(user))
}

// Login godoc
// @Summary  Log in and receive an access token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body dto.LoginRequest true "Credentials"
// @Success  200 {object} response.Response{data=dto.LoginResponse}
// @Failure  401 {object} response.Response
// @Router   /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := a.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		User:        dto.ToUserResponse(result.User),
	})
}

// Logout godoc
// @Summary  Revoke the current access token
// @Tags     auth
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Router   /auth/logout [delete]
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.auth.Logout(c.Request.Context(), c.GetString(middleware.TokenKey)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, nil)
}
