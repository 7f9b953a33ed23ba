package controllers

import (
	"rentdesk/dto"
	"rentdesk/response"
	"rentdesk/services"
	"rentdesk/validator"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	admin     *services.AdminFacade
	occupancy *services.OccupancyManager
}

func NewRoomController(admin *services.AdminFacade, occupancy *services.OccupancyManager) *RoomController {
	return &RoomController{admin: admin, occupancy: occupancy}
}

// CreateRoom godoc
// @Summary  Create a room in a building
// @Tags     rooms
// @Security BearerAuth
// @Param    body body dto.CreateRoomRequest true "Room"
// @Success  201 {object} response.Response{data=models.Room}
// @Failure  409 {object} response.Response "DUPLICATE_ROOM_NUMBER"
// @Router   /rooms [post]
func (r *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := r.admin.CreateRoom(c.Request.Context(), services.RoomInput{
		BuildingID: req.Building,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Rent:       req.Rent,
		Deposit:    req.Deposit,
		Furniture:  req.Furniture,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, room)
}

// ListRooms godoc
// @Summary  List rooms
// @Tags     rooms
// @Security BearerAuth
// @Param    building query int    false "Building id"
// @Param    status   query string false "Available, Occupied or Maintenance"
// @Success  200 {object} response.Response{data=[]models.Room}
// @Router   /rooms [get]
func (r *RoomController) ListRooms(c *gin.Context) {
	buildingID, ok := queryID(c, "building")
	if !ok {
		return
	}
	rooms, err := r.admin.ListRooms(c.Request.Context(), buildingID, c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}

// ListAvailableRooms is open to every authenticated role.
func (r *RoomController) ListAvailableRooms(c *gin.Context) {
	buildingID, ok := queryID(c, "building")
	if !ok {
		return
	}
	rooms, err := r.occupancy.ListAvailableRooms(c.Request.Context(), buildingID)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithTotal(c, rooms, len(rooms))
}

func (r *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := r.admin.GetRoom(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, room)
}

func (r *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := r.admin.UpdateRoom(c.Request.Context(), id, services.RoomUpdate{
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Rent:       req.Rent,
		Deposit:    req.Deposit,
		Furniture:  req.Furniture,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, room)
}

// DeleteRoom godoc
// @Summary  Delete a room that is not occupied
// @Tags     rooms
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Failure  422 {object} response.Response "ROOM_OCCUPIED"
// @Router   /rooms/{id} [delete]
func (r *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := r.admin.DeleteRoom(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, nil)
}

// AssignTenant godoc
// @Summary  Assign a tenant to an available room
// @Tags     rooms
// @Security BearerAuth
// @Param    body body dto.AssignTenantRequest true "Assignment"
// @Success  200 {object} response.Response{data=models.Room}
// @Failure  409 {object} response.Response "ALREADY_ASSIGNED"
// @Failure  422 {object} response.Response "INVALID_STATE"
// @Router   /rooms/assignTenant [post]
func (r *RoomController) AssignTenant(c *gin.Context) {
	var req dto.AssignTenantRequest
	if !bindJSON(c, &req) {
		return
	}
	occupiedFrom, err := validator.ParseDate("occupiedFrom", req.OccupiedFrom)
	if err != nil {
		c.Error(err)
		return
	}
	room, err := r.admin.AssignTenant(c.Request.Context(), req.RoomID, req.TenantID, occupiedFrom)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, room)
}

// ReleaseTenant ends the occupancy of a room; the body is optional.
func (r *RoomController) ReleaseTenant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReleaseRoomRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	room, err := r.admin.ReleaseTenant(c.Request.Context(), id, req.ToMaintenance)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, room)
}

func (r *RoomController) SetMaintenance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.MaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := r.admin.SetMaintenance(c.Request.Context(), id, *req.Maintenance)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, room)
}

// BuildingRoomStats godoc
// @Summary  Room counts per building and status
// @Tags     rooms
// @Security BearerAuth
// @Success  200 {object} response.Response{data=[]services.BuildingStats}
// @Router   /rooms/buildingRoomStats [get]
func (r *RoomController) BuildingRoomStats(c *gin.Context) {
	stats, err := r.admin.BuildingRoomStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, stats)
}
