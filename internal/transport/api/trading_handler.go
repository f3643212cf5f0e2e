package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TradingHandler struct {
	settingsSvs SettingsServicer
	userSvs     UserServicer
	tradingSvs  TradingServicer
	purchaseSvs PurchaseServicer
}

func NewTradingHandler(
	settingsSvs SettingsServicer,
	userSvs UserServicer,
	tradingSvs TradingServicer,
	purchaseSvs PurchaseServicer,
) *TradingHandler {
	return &TradingHandler{
		settingsSvs: settingsSvs,
		userSvs:     userSvs,
		tradingSvs:  tradingSvs,
		purchaseSvs: purchaseSvs,
	}
}

// Index GET RouteGroup + TradingRoute. Диспетчеризация по query параметру action,
// дефолтное действие - price.
func (h *TradingHandler) Index(c *gin.Context) {
	switch c.DefaultQuery("action", "price") {
	case "price":
		h.price(c)
	case "balance":
		h.balance(c)
	case "transactions":
		h.transactions(c)
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

type PriceResponse struct {
	Price      float64 `json:"price"`
	Commission float64 `json:"commission"`
}

func (h *TradingHandler) price(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	price, commission, err := h.settingsSvs.GetPrice(ctx)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, PriceResponse{
		Price:      price.InexactFloat64(),
		Commission: commission.InexactFloat64(),
	})
}

func (h *TradingHandler) balance(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.userSvs.Balance(ctx, userID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cryptoBalance": balance.InexactFloat64()})
}

type TransactionResponseItem struct {
	ID         int64   `json:"id"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Price      float64 `json:"price"`
	Commission float64 `json:"commission"`
	Timestamp  string  `json:"timestamp"`
	User       string  `json:"user"`
}

func (h *TradingHandler) transactions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.tradingSvs.RecentTransactions(ctx)
	if err != nil {
		abortInternal(c, err)
		return
	}

	response := make([]TransactionResponseItem, len(transactions))
	for i, trans := range transactions {
		response[i] = TransactionResponseItem{
			ID:         trans.ID,
			Type:       string(trans.Type),
			Amount:     trans.Amount.InexactFloat64(),
			Price:      trans.Price.InexactFloat64(),
			Commission: trans.Commission.InexactFloat64(),
			Timestamp:  trans.CreatedAt.Format(time.RFC3339),
			User:       trans.Username,
		}
	}
	c.JSON(http.StatusOK, gin.H{"transactions": response})
}

type TradingActionParams struct {
	Action    string           `binding:"required" json:"action"`
	UserID    int64            `json:"userId"`
	Amount    *decimal.Decimal `json:"amount"`
	Signature string           `json:"signature"`
}

// Create POST RouteGroup + TradingRoute. Диспетчеризация по полю action тела запроса.
func (h *TradingHandler) Create(c *gin.Context) {
	var params TradingActionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch params.Action {
	case "purchase_request":
		h.purchaseRequest(c, params)
	case "sell":
		h.sell(c, params)
	case "add_clicks":
		h.addClicks(c, params)
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

func (h *TradingHandler) purchaseRequest(c *gin.Context, params TradingActionParams) {
	if params.UserID == 0 || params.Amount == nil || params.Signature == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "userId, amount, and signature required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.purchaseSvs.Submit(ctx, params.UserID, *params.Amount, params.Signature)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": "userId, amount, and signature required"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"requestId": request.ID, "status": request.Status})
}

func (h *TradingHandler) sell(c *gin.Context, params TradingActionParams) {
	if params.UserID == 0 || params.Amount == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId and amount required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	commission, err := h.tradingSvs.Sell(ctx, params.UserID, *params.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Insufficient crypto balance"})
		case errors.Is(err, domain.ErrValidation):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId and amount required"})
		default:
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "commission": commission.InexactFloat64()})
}

func (h *TradingHandler) addClicks(c *gin.Context, params TradingActionParams) {
	if params.UserID == 0 || params.Amount == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId and amount required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.tradingSvs.AddClicks(ctx, params.UserID, *params.Amount); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId and amount required"})
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// queryUserID читает и валидирует query параметр userId. Пишет 400 сам,
// вызывающему остается только выйти при ok=false.
func queryUserID(c *gin.Context) (int64, bool) {
	raw := c.Query("userId")
	if raw == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId required"})
		return 0, false
	}
	userID, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId required"})
		return 0, false
	}
	return userID, true
}
