package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type AuthParams struct {
	Username string `json:"username"`
}

type AuthResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Register POST RouteGroup + AuthRoute. Идемпотентная регистрация по юзернейму:
// 201 для нового юзера, 200 для существующего, тело одинаковое.
func (h *AuthHandler) Register(c *gin.Context) {
	var params AuthParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, created, err := h.userService.Register(ctx, strings.TrimSpace(params.Username))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": "Username must be at least 2 characters"})
			return
		}
		abortInternal(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, AuthResponse{ID: user.ID, Username: user.Username})
}
