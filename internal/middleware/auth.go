package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
	"github.com/nmc-egov/civic-portal-api/pkg/session"
)

// ContextSessionKey is the gin context key storing the session data.
const ContextSessionKey = "currentSession"

// RequireCitizen protects routes that need a logged-in citizen session.
func RequireCitizen(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := sessions.Get(c)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "unauthorized: please login"))
			} else {
				response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session"))
			}
			c.Abort()
			return
		}
		if data.Username == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "unauthorized: please login"))
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, data)
		c.Next()
	}
}

// RequireAdmin protects routes that need the configured administrator
// session. The session's admin username must match the configured identity.
func RequireAdmin(sessions *session.Manager, adminUsername string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := sessions.Get(c)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "unauthorized: admin access required"))
			} else {
				response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session"))
			}
			c.Abort()
			return
		}
		if !data.IsAdmin || data.AdminUsername == "" || data.AdminUsername != adminUsername {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "unauthorized: admin access required"))
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, data)
		c.Next()
	}
}

// SessionFromContext returns the session data attached by the auth middleware.
func SessionFromContext(c *gin.Context) (*session.Data, bool) {
	value, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil, false
	}
	data, ok := value.(*session.Data)
	return data, ok
}
