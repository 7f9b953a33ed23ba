package controllers

import (
	"rentdesk/response"
	"rentdesk/services"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the admin dashboard and the tenant portal.
type DashboardController struct {
	admin *services.AdminFacade
	svc   *services.Services
}

func NewDashboardController(admin *services.AdminFacade, svc *services.Services) *DashboardController {
	return &DashboardController{admin: admin, svc: svc}
}

// AdminStats godoc
// @Summary  Totals across buildings, rooms and tenants
// @Tags     dashboard
// @Security BearerAuth
// @Success  200 {object} response.Response{data=services.DashboardStats}
// @Router   /dashboard/stats [get]
func (d *DashboardController) AdminStats(c *gin.Context) {
	stats, err := d.admin.DashboardStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, stats)
}

// tenantFacade scopes every tenant read to the caller's own id.
func (d *DashboardController) tenantFacade(c *gin.Context) (*services.TenantFacade, bool) {
	id, ok := identity(c)
	if !ok {
		return nil, false
	}
	return services.NewTenantFacade(d.svc, id.UserID), true
}

// TenantDashboard godoc
// @Summary  The caller's room and payment summary
// @Tags     tenant
// @Security BearerAuth
// @Success  200 {object} response.Response{data=services.TenantDashboard}
// @Router   /tenant/dashboard [get]
func (d *DashboardController) TenantDashboard(c *gin.Context) {
	facade, ok := d.tenantFacade(c)
	if !ok {
		return
	}
	dashboard, err := facade.Dashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dashboard)
}

func (d *DashboardController) TenantRoom(c *gin.Context) {
	facade, ok := d.tenantFacade(c)
	if !ok {
		return
	}
	room, err := facade.Room(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, room)
}

func (d *DashboardController) TenantPayments(c *gin.Context) {
	facade, ok := d.tenantFacade(c)
	if !ok {
		return
	}
	payments, err := facade.Payments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithTotal(c, payments, len(payments))
}
