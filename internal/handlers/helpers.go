package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

// renderError maps service errors onto the HTTP error taxonomy.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrNotAuthenticated):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrResourceNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrValidation):
		utils.UnprocessableEntity(c, err.Error())
	default:
		utils.InternalServerError(c, "Internal server error")
	}
}

// parseIDParam reads a positive integer path parameter. It writes the error
// response itself and returns false when the value is not a valid id.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// pagination reads skip/limit query parameters with sane defaults.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return offset, limit
}

// intQuery reads a bounded positive integer query parameter.
func intQuery(c *gin.Context, name string, def, max int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || v <= 0 || v > max {
		return def
	}
	return v
}
