package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth пропускает только запросы с корректным админским секретом в заголовке.
// Сравнение за константное время, чтобы не протекать длиной совпавшего префикса.
func AdminAuth(password []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := []byte(c.GetHeader(AdminPasswordHeader))
		if subtle.ConstantTimeCompare(header, password) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
