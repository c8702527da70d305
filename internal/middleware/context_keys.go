package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
)

// principalKey is the key used to store the authenticated principal in the
// request context.
const principalKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal placed in
// the request context by the auth middleware. Handlers pass it explicitly
// into the core; the core itself never reads it from a context.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	principal, ok := c.Request.Context().Value(principalKey).(domain.Principal)
	return principal, ok
}
