package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const preflightMaxAge = "86400"

// CORS разрешает запросы с любого origin. Preflight закрывается сразу
// с суточным кэшем.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-User-Id, X-Admin-Password")
		c.Header("Access-Control-Max-Age", preflightMaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
