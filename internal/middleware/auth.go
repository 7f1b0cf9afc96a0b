package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/worklog-api/internal/constants"
	apierrors "github.com/yukikurage/worklog-api/internal/errors"
	"github.com/yukikurage/worklog-api/internal/models"
	"github.com/yukikurage/worklog-api/internal/services"
)

// LoginPath is where page requests without a session are sent.
const LoginPath = "/login"

// UserLookup resolves a session user id. It reports services.ErrUserNotFound
// for ids that no longer name a user.
type UserLookup interface {
	GetUser(ctx context.Context, id uint64) (*models.User, error)
}

// RequireAuth checks if the user is authenticated via session
func RequireAuth(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := loadUser(c, users)
		if err != nil {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePageAuth is RequireAuth for browser pages: it redirects to the
// login page instead of answering 401.
func RequirePageAuth(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := loadUser(c, users)
		if err != nil {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth exposes the session user to handlers when there is one and
// lets anonymous requests through.
func OptionalAuth(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := loadUser(c, users); err != nil {
			apierrors.InternalError(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// loadUser resolves the session user and stores it with its id in the gin
// context. A session whose id no longer names a user is cleared and counts
// as anonymous.
func loadUser(c *gin.Context, users UserLookup) (bool, error) {
	session := sessions.Default(c)
	raw := session.Get(constants.ContextKeyUserID)
	if raw == nil {
		return false, nil
	}

	userID, ok := toUserID(raw)
	if !ok {
		clearSession(c, session)
		return false, nil
	}

	user, err := users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			clearSession(c, session)
			return false, nil
		}
		slog.ErrorContext(c.Request.Context(), "load session user failed",
			"request_id", c.GetString(constants.ContextKeyRequestID), "error", err)
		return false, err
	}

	c.Set(constants.ContextKeyUserID, user.ID)
	c.Set(constants.ContextKeyUser, user)
	return true, nil
}

func clearSession(c *gin.Context, session sessions.Session) {
	session.Clear()
	if err := session.Save(); err != nil {
		slog.WarnContext(c.Request.Context(), "clear stale session failed",
			"request_id", c.GetString(constants.ContextKeyRequestID), "error", err)
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return toUserID(userID)
}

// GetUser retrieves the user resolved by the auth middleware
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

func toUserID(value any) (uint64, bool) {
	switch v := value.(type) {
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
