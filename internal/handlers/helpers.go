package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/hero-task-tracker/internal/errors"
	"github.com/yukikurage/hero-task-tracker/internal/middleware"
	"github.com/yukikurage/hero-task-tracker/internal/models"
)

// parseIDParam reads a positive integer path parameter, writing a 400 when
// it is malformed.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// currentUser returns the caller's id and role, writing a 401 when the
// request carries no identity.
func currentUser(c *gin.Context) (uint64, models.Role, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return 0, "", false
	}
	return userID, middleware.GetUserRole(c), true
}
