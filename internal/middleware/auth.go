package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hero-task-tracker/internal/constants"
	apierrors "github.com/yukikurage/hero-task-tracker/internal/errors"
	"github.com/yukikurage/hero-task-tracker/internal/models"
	"github.com/yukikurage/hero-task-tracker/internal/services"
)

// UserLoader resolves the account behind a session.
type UserLoader interface {
	GetUser(ctx context.Context, id uint64) (*models.User, error)
}

// RequireAuth checks if the user is authenticated via session. The account is
// reloaded on every request, so deleted users lose access immediately and the
// role always reflects the stored row.
func RequireAuth(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		id, ok := GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := users.GetUser(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				session.Clear()
				session.Options(sessions.Options{Path: "/", MaxAge: -1})
				if saveErr := session.Save(); saveErr != nil {
					slog.WarnContext(c.Request.Context(), "failed to clear stale session", "user_id", id, "error", saveErr)
				}
				apierrors.Unauthorized(c, "")
			} else {
				apierrors.RespondServiceError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserRole, user.Role)
		c.Next()
	}
}

// RequireAdmin rejects callers whose stored role is not admin. It must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != models.RoleAdmin {
			apierrors.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserRole retrieves the current user's role, defaulting to user
func GetUserRole(c *gin.Context) models.Role {
	if role, ok := c.Get(constants.ContextKeyUserRole); ok {
		if r, ok := role.(models.Role); ok && r.Valid() {
			return r
		}
	}
	return models.RoleUser
}
