package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/gin-gonic/gin"
)

type LotteryHandler struct {
	lotterySvs LotteryServicer
}

func NewLotteryHandler(lotterySvs LotteryServicer) *LotteryHandler {
	return &LotteryHandler{
		lotterySvs: lotterySvs,
	}
}

type LotteryResponseItem struct {
	ID               int64   `json:"id"`
	Prize            float64 `json:"prize"`
	Active           bool    `json:"active"`
	ParticipantCount int64   `json:"participantCount"`
}

// Index GET RouteGroup + LotteryRoute. Активные лотереи с живыми счетчиками участников.
func (h *LotteryHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	lotteries, err := h.lotterySvs.ListActive(ctx)
	if err != nil {
		abortInternal(c, err)
		return
	}

	response := make([]LotteryResponseItem, len(lotteries))
	for i, lottery := range lotteries {
		response[i] = LotteryResponseItem{
			ID:               lottery.ID,
			Prize:            lottery.Prize.InexactFloat64(),
			Active:           lottery.Active,
			ParticipantCount: lottery.ParticipantCount,
		}
	}
	c.JSON(http.StatusOK, gin.H{"lotteries": response})
}

type JoinLotteryParams struct {
	LotteryID int64 `json:"lotteryId"`
	UserID    int64 `json:"userId"`
}

// Join POST RouteGroup + LotteryRoute.
func (h *LotteryHandler) Join(c *gin.Context) {
	var params JoinLotteryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if params.LotteryID == 0 || params.UserID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "lotteryId and userId required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.lotterySvs.Join(ctx, params.LotteryID, params.UserID); err != nil {
		switch {
		case errors.Is(err, domain.ErrLotteryNotActive):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Lottery not active"})
		case errors.Is(err, domain.ErrAlreadyParticipating):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Already participating"})
		default:
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
