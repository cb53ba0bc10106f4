package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	sessionPort "socialfeed/internal/ports/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionCookie = "session_token"
	userIDKey     = "userID"
)

// SessionResolver maps a session token to the id of its user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// SessionAuth puts the user id of a valid session cookie into the gin
// context. Requests without a usable cookie continue anonymously. Invalid or
// revoked cookies are cleared; a store outage leaves the cookie in place.
func SessionAuth(sessions SessionResolver, secure bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, sessionPort.ErrInvalidSession) {
				ClearSessionCookie(c, secure)
			} else {
				logger.Error("could not resolve session", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to loginPath.
func RequireAuth(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, if any.
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func SetSessionCookie(c *gin.Context, value string, expiresAt time.Time, secure bool) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, value, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
