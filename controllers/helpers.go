package controllers

import (
	"strconv"

	"rentdesk/errors"
	"rentdesk/middleware"
	"rentdesk/response"
	"rentdesk/types"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter and writes a 400 when it
// is malformed.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric query parameter; absent means zero.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil))
		return false
	}
	return true
}

func identity(c *gin.Context) (types.Identity, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c)
	}
	return id, ok
}
