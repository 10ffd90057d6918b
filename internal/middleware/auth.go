package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"todo-tracker/internal/model"
	"todo-tracker/pkg/response"
)

// UserIDHeader carries the caller identity set by the upstream gateway.
const UserIDHeader = "X-User-ID"

// ScopeKey is the gin context key holding the caller's model.Scope.
const ScopeKey = "scope"

// Auth resolves the caller from UserIDHeader and stores its Scope on both
// the gin context and the request context. Requests without it get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: missing %s on %s", UserIDHeader, c.FullPath())
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{UserID: userID}
		c.Set(ScopeKey, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}
