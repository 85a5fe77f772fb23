package middleware

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/tasklight/task-tracker-api/internal/constants"
	apierrors "github.com/tasklight/task-tracker-api/internal/errors"
)

// RequireAuth checks if the user is authenticated via the session cookie.
// The session carries the user ID and its creation time; it is valid only
// while strictly younger than constants.SessionTTL, recomputed on every
// request. An invalid session aborts with 401 before any store is touched.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get(constants.SessionKeyUserID).(string)
		if !ok || userID == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		createdAt, ok := session.Get(constants.SessionKeyCreatedAt).(int64)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		if time.Since(time.Unix(createdAt, 0)) >= constants.SessionTTL {
			apierrors.Unauthorized(c, "Session expired")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
