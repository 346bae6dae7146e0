package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reviu-server/types"
	"reviu-server/utils"
)

// ManagerAuthMiddleware validates manager scope tokens and sets the tenant
// scope in the request context. Every downstream query is bound to that
// tenant; there is no ambient "current tenant" state.
func ManagerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := scopeClaims(c)
		if !ok {
			return
		}

		if claims.Role != types.RoleManager || claims.TenantID == "" {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Manager access required",
				"message": "This endpoint requires an unlocked manager scope",
			})
			c.Abort()
			return
		}

		c.Set("tenant_id", claims.TenantID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminAuthMiddleware validates admin scope tokens
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := scopeClaims(c)
		if !ok {
			return
		}

		if claims.Role != types.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Admin access required",
				"message": "This endpoint requires an unlocked admin scope",
			})
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}

// scopeClaims extracts and verifies the bearer token, aborting on failure.
// WebSocket upgrades cannot set headers, so the token query parameter is
// accepted as a fallback.
func scopeClaims(c *gin.Context) (*types.Claims, bool) {
	tokenString := ""

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token format",
				"message": "Token must be in format: Bearer <token>",
			})
			c.Abort()
			return nil, false
		}
	} else {
		tokenString = c.Query("token")
	}

	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authorization required",
			"message": "Please unlock this scope first",
		})
		c.Abort()
		return nil, false
	}

	claims, err := utils.VerifyScopeToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid token",
			"message": "Token is invalid or expired",
		})
		c.Abort()
		return nil, false
	}

	return claims, true
}
