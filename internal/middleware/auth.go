package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadanas3/currency-exchange-api/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// JWT tokens and places the resulting Principal into the request context.
// Only principals with a recognised role pass.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		principal := claims.ToPrincipal()
		if principal.UserID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if !principal.Role.IsValid() {
			logger.Warn("Token carries unknown role", slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not permitted"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), principalKey, principal)

		enrichedLogger := logger.With(slog.String("user_id", principal.UserID), slog.String("role", string(principal.Role)))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
