package controllers

import (
	"rentdesk/dto"
	"rentdesk/response"
	"rentdesk/services"

	"github.com/gin-gonic/gin"
)

type BuildingController struct {
	admin *services.AdminFacade
}

func NewBuildingController(admin *services.AdminFacade) *BuildingController {
	return &BuildingController{admin: admin}
}

func buildingInput(req dto.BuildingRequest) services.BuildingInput {
	return services.BuildingInput{
		Name:          req.Name,
		Address:       req.Address,
		ContactEmail:  req.ContactEmail,
		ContactNumber: req.ContactNumber,
	}
}

// ListBuildings godoc
// @Summary  List buildings
// @Tags     buildings
// @Security BearerAuth
// @Success  200 {object} response.Response{data=[]models.Building}
// @Router   /buildings [get]
func (b *BuildingController) ListBuildings(c *gin.Context) {
	buildings, err := b.admin.ListBuildings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithTotal(c, buildings, len(buildings))
}

func (b *BuildingController) GetBuilding(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	building, err := b.admin.GetBuilding(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, building)
}

// CreateBuilding godoc
// @Summary  Create a building
// @Tags     buildings
// @Security BearerAuth
// @Param    body body dto.BuildingRequest true "Building"
// @Success  201 {object} response.Response{data=models.Building}
// @Failure  400 {object} response.Response
// @Router   /buildings [post]
func (b *BuildingController) CreateBuilding(c *gin.Context) {
	var req dto.BuildingRequest
	if !bindJSON(c, &req) {
		return
	}
	building, err := b.admin.CreateBuilding(c.Request.Context(), buildingInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, building)
}

func (b *BuildingController) UpdateBuilding(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.BuildingRequest
	if !bindJSON(c, &req) {
		return
	}
	building, err := b.admin.UpdateBuilding(c.Request.Context(), id, buildingInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, building)
}

// DeleteBuilding godoc
// @Summary  Delete a building without rooms
// @Tags     buildings
// @Security BearerAuth
// @Success  200 {object} response.Response
// @Failure  422 {object} response.Response
// @Router   /buildings/{id} [delete]
func (b *BuildingController) DeleteBuilding(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := b.admin.DeleteBuilding(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, nil)
}

// UploadImage stores the multipart "file" as the building image.
func (b *BuildingController) UploadImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "cannot read file")
		return
	}
	defer file.Close()

	building, err := b.admin.SetBuildingImage(c.Request.Context(), id, header.Filename, file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, building)
}
