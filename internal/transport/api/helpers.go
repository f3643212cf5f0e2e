package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortInternal прячет внутреннюю ошибку от клиента, наружу уходит только
// нейтральное сообщение. Сама ошибка попадает в лог через gin контекст.
func abortInternal(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
