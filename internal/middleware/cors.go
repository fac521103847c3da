package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // Origin comparison

	"github.com/gin-gonic/gin" // Gin web framework
)

// CORS allows the browser frontend at origin to call the API with
// credentials. "*" allows any origin.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqOrigin := c.GetHeader("Origin")
		if reqOrigin == "" || (origin != "*" && !strings.EqualFold(origin, reqOrigin)) {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", reqOrigin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")
		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
