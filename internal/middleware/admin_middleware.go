package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velandev/website/internal/app/models/dto"
	"github.com/velandev/website/internal/pkg/auth"
)

// AdminMiddleware guards job-mutation routes with the shared-secret
// session gate
type AdminMiddleware struct {
	gate *auth.SessionGate
}

// NewAdminMiddleware creates a new AdminMiddleware
func NewAdminMiddleware(gate *auth.SessionGate) *AdminMiddleware {
	return &AdminMiddleware{
		gate: gate,
	}
}

// RequireSession validates the admin_session cookie before any store
// access. A failed check short-circuits with 401; an unconfigured gate
// surfaces as a server misconfiguration instead.
func (m *AdminMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.gate.Configured() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeNotConfigured, "Admin access is not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		token, err := c.Cookie(auth.SessionCookieName)
		if err != nil || !m.gate.Authorize(token) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
