package routes

import (
	"net/http"

	"rentdesk/constants"
	"rentdesk/controllers"
	"rentdesk/docs"
	"rentdesk/middleware"
	"rentdesk/services"
	"rentdesk/services/logger"
	"rentdesk/services/metrics"
	"rentdesk/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Services *services.Services
	Melody   *melody.Melody
	Metrics  *metrics.Metrics
	Logger   logger.Logger
}

func SetupRoutes(router *gin.Engine, deps Dependencies) error {
	if err := validator.RegisterBindings(); err != nil {
		return err
	}

	router.Use(middleware.RequestID(), middleware.Metrics(deps.Metrics), middleware.ErrorHandler())

	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	svc := deps.Services
	admin := services.NewAdminFacade(svc)

	authController := controllers.NewAuthController(svc.Auth)
	profileController := controllers.NewProfileController(svc.Users)
	buildingController := controllers.NewBuildingController(admin)
	roomController := controllers.NewRoomController(admin, svc.Occupancy)
	tenantController := controllers.NewTenantController(admin)
	paymentController := controllers.NewPaymentController(admin)
	dashboardController := controllers.NewDashboardController(admin, svc)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)

	if deps.Melody != nil {
		wsController := controllers.NewWSController(deps.Melody, svc.Auth, deps.Logger)
		v1.GET("/ws", wsController.Connect)
	}

	authed := v1.Group("", middleware.AuthMiddleware(svc.Auth))
	authed.DELETE("/auth/logout", authController.Logout)
	authed.GET("/profile", profileController.GetProfile)
	authed.PUT("/profile", profileController.UpdateProfile)
	authed.GET("/rooms/available", roomController.ListAvailableRooms)

	adminGroup := v1.Group("", middleware.AuthMiddleware(svc.Auth), middleware.RoleMiddleware(constants.RoleAdmin))
	adminGroup.GET("/buildings", buildingController.ListBuildings)
	adminGroup.POST("/buildings", buildingController.CreateBuilding)
	adminGroup.GET("/buildings/:id", buildingController.GetBuilding)
	adminGroup.PUT("/buildings/:id", buildingController.UpdateBuilding)
	adminGroup.DELETE("/buildings/:id", buildingController.DeleteBuilding)
	adminGroup.POST("/buildings/:id/image", buildingController.UploadImage)

	adminGroup.POST("/rooms", roomController.CreateRoom)
	adminGroup.GET("/rooms", roomController.ListRooms)
	adminGroup.GET("/rooms/buildingRoomStats", roomController.BuildingRoomStats)
	adminGroup.POST("/rooms/assignTenant", roomController.AssignTenant)
	adminGroup.GET("/rooms/:id", roomController.GetRoom)
	adminGroup.PUT("/rooms/:id", roomController.UpdateRoom)
	adminGroup.DELETE("/rooms/:id", roomController.DeleteRoom)
	adminGroup.POST("/rooms/:id/release", roomController.ReleaseTenant)
	adminGroup.PUT("/rooms/:id/maintenance", roomController.SetMaintenance)

	adminGroup.GET("/tenants", tenantController.ListTenants)
	adminGroup.PUT("/tenants/:id", tenantController.UpdateTenant)

	adminGroup.POST("/payments", paymentController.CreatePayment)
	adminGroup.GET("/payments", paymentController.ListPayments)
	adminGroup.GET("/payments/export", paymentController.ExportPayments)
	adminGroup.GET("/payments/:id", paymentController.GetPayment)
	adminGroup.PUT("/payments/:id", paymentController.UpdatePayment)

	adminGroup.GET("/dashboard/stats", dashboardController.AdminStats)

	tenantGroup := v1.Group("/tenant", middleware.AuthMiddleware(svc.Auth), middleware.RoleMiddleware(constants.RoleTenant))
	tenantGroup.GET("/dashboard", dashboardController.TenantDashboard)
	tenantGroup.GET("/room", dashboardController.TenantRoom)
	tenantGroup.GET("/payments", dashboardController.TenantPayments)

	return nil
}
