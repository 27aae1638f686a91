package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mediconnect-server/internal/config"
	"mediconnect-server/internal/models"
	"mediconnect-server/internal/service"
	"mediconnect-server/internal/utils"
)

const identityKey = "identity"

// TokenMiddleware extracts the bearer token when present. A missing or
// invalid token leaves the request anonymous; routes that need a caller gate
// themselves with RequireAuth/RequireRole.
func TokenMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			token := authHeader
			if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
				token = strings.TrimSpace(authHeader[len("bearer "):])
			}
			if claims, err := utils.ValidateToken(token, cfg.JWTSecret); err == nil {
				c.Set(identityKey, service.Identity{UserID: claims.UserID, Role: claims.Role})
			}
		}

		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetIdentity(c).IsAnonymous() {
			utils.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set. It
// implies RequireAuth.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity.IsAnonymous() {
			utils.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}
		for _, role := range allowed {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		utils.Forbidden(c, "You do not have permission to access this resource.")
		c.Abort()
	}
}

// GetIdentity returns the authenticated caller, or the zero Identity for
// anonymous requests.
func GetIdentity(c *gin.Context) service.Identity {
	if v, exists := c.Get(identityKey); exists {
		if identity, ok := v.(service.Identity); ok {
			return identity
		}
	}
	return service.Identity{}
}
