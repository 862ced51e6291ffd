package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders adds the baseline response headers to every reply.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}
