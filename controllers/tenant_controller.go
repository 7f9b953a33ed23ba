package controllers

import (
	"rentdesk/dto"
	"rentdesk/response"
	"rentdesk/services"

	"github.com/gin-gonic/gin"
)

// TenantController serves the admin view of tenant accounts.
type TenantController struct {
	admin *services.AdminFacade
}

func NewTenantController(admin *services.AdminFacade) *TenantController {
	return &TenantController{admin: admin}
}

// ListTenants godoc
// @Summary  List tenants, optionally searching name, email and phone
// @Tags     tenants
// @Security BearerAuth
// @Param    search query string false "Search text"
// @Success  200 {object} response.Response{data=dto.TenantListResponse}
// @Router   /tenants [get]
func (t *TenantController) ListTenants(c *gin.Context) {
	result, err := t.admin.ListTenants(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.TenantListResponse{
		Tenants:     dto.ToUserResponses(result.Tenants),
		Suggestions: result.Suggestions,
	})
}

func (t *TenantController) UpdateTenant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := t.admin.UpdateTenant(c.Request.Context(), id, profileUpdate(req))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToUserResponse(user))
}
