package middleware

import (
	"net/http"                    // HTTP status codes
	"number_game/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole lets the request through only when the token role is want.
// It must run after JWTAuthMiddleware.
func RequireRole(want domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if !allowed(role, want) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			return
		}
		c.Next()
	}
}

// AdminOnlyMiddleware restricts a route group to admins
func AdminOnlyMiddleware() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

func allowed(have, want domain.Role) bool {
	switch want {
	case domain.RoleAdmin:
		return have == domain.RoleAdmin
	case domain.RoleUser:
		// Any authenticated account may use player routes
		return have == domain.RoleUser || have == domain.RoleAdmin
	default:
		return false
	}
}
