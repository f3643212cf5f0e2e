package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminHandler единственная точка, где несколько сервисов сходятся в одном
// хендлере: админка управляет настройками, акциями, лотереями и заявками.
type AdminHandler struct {
	userSvs     UserServicer
	settingsSvs SettingsServicer
	purchaseSvs PurchaseServicer
	promoSvs    PromotionServicer
	lotterySvs  LotteryServicer
}

func NewAdminHandler(
	userSvs UserServicer,
	settingsSvs SettingsServicer,
	purchaseSvs PurchaseServicer,
	promoSvs PromotionServicer,
	lotterySvs LotteryServicer,
) *AdminHandler {
	return &AdminHandler{
		userSvs:     userSvs,
		settingsSvs: settingsSvs,
		purchaseSvs: purchaseSvs,
		promoSvs:    promoSvs,
		lotterySvs:  lotterySvs,
	}
}

// Index GET RouteGroup + AdminRoute. Админские списки, дефолтное действие - users.
func (h *AdminHandler) Index(c *gin.Context) {
	switch c.DefaultQuery("action", "users") {
	case "users":
		h.users(c)
	case "promotions":
		h.promotions(c)
	case "lotteries":
		h.lotteries(c)
	case "purchase_requests":
		h.purchaseRequests(c)
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

type AdminUserItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	CryptoBalance float64 `json:"cryptoBalance"`
}

func (h *AdminHandler) users(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userSvs.ListWithBalances(ctx)
	if err != nil {
		abortInternal(c, err)
		return
	}

	response := make([]AdminUserItem, len(users))
	for i, user := range users {
		response[i] = AdminUserItem{
			ID:            user.ID,
			Name:          user.Username,
			CryptoBalance: user.CryptoBalance.InexactFloat64(),
		}
	}
	c.JSON(http.StatusOK, gin.H{"users": response})
}

type AdminPromotionItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	Active      bool    `json:"active"`
}

func (h *AdminHandler) promotions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	promotions, err := h.promoSvs.List(ctx)
	if err != nil {
		abortInternal(c, err)
		return
	}

	response := make([]AdminPromotionItem, len(promotions))
	for i, promo := range promotions {
		response[i] = AdminPromotionItem{
			ID:          promo.ID,
			Title:       promo.Title,
			Description: promo.Description,
			Discount:    promo.Discount.InexactFloat64(),
			Active:      promo.Active,
		}
	}
	c.JSON(http.StatusOK, gin.H{"promotions": response})
}

type AdminLotteryItem struct {
	ID               int64   `json:"id"`
	Prize            float64 `json:"prize"`
	WinnerID         *int64  `json:"winnerId"`
	Active           bool    `json:"active"`
	Winner           *string `json:"winner"`
	ParticipantCount int64   `json:"participantCount"`
}

func (h *AdminHandler) lotteries(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	lotteries, err := h.lotterySvs.ListAll(ctx)
	if err != nil {
		abortInternal(c, err)
		return
	}

	response := make([]AdminLotteryItem, len(lotteries))
	for i, lottery := range lotteries {
		response[i] = AdminLotteryItem{
			ID:               lottery.ID,
			Prize:            lottery.Prize.InexactFloat64(),
			WinnerID:         lottery.WinnerID,
			Active:           lottery.Active,
			Winner:           lottery.WinnerName,
			ParticipantCount: lottery.ParticipantCount,
		}
	}
	c.JSON(http.StatusOK, gin.H{"lotteries": response})
}

type AdminPurchaseItem struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	Username  string  `json:"username"`
	Amount    float64 `json:"amount"`
	Price     float64 `json:"price"`
	Signature string  `json:"signature"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

func (h *AdminHandler) purchaseRequests(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := h.purchaseSvs.ListPending(ctx)
	if err != nil {
		abortInternal(c, err)
		return
	}

	response := make([]AdminPurchaseItem, len(requests))
	for i, request := range requests {
		response[i] = AdminPurchaseItem{
			ID:        request.ID,
			UserID:    request.UserID,
			Username:  request.Username,
			Amount:    request.Amount.InexactFloat64(),
			Price:     request.Price.InexactFloat64(),
			Signature: request.Signature,
			Status:    string(request.Status),
			CreatedAt: request.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, gin.H{"requests": response})
}

type AdminActionParams struct {
	Action      string           `binding:"required" json:"action"`
	Price       *decimal.Decimal `json:"price"`
	Commission  *decimal.Decimal `json:"commission"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Discount    *decimal.Decimal `json:"discount"`
	PromoID     int64            `json:"promoId"`
	Prize       *decimal.Decimal `json:"prize"`
	LotteryID   int64            `json:"lotteryId"`
	RequestID   int64            `json:"requestId"`
	Approved    bool             `json:"approved"`
	UserID      int64            `json:"userId"`
	Amount      *decimal.Decimal `json:"amount"`
}

// Create POST RouteGroup + AdminRoute. Диспетчеризация по полю action тела запроса.
func (h *AdminHandler) Create(c *gin.Context) {
	var params AdminActionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	switch params.Action {
	case "set_price":
		h.setPrice(c, params)
	case "set_commission":
		h.setCommission(c, params)
	case "create_promotion":
		h.createPromotion(c, params)
	case "toggle_promotion":
		h.togglePromotion(c, params)
	case "create_lottery":
		h.createLottery(c, params)
	case "draw_winner":
		h.drawWinner(c, params)
	case "approve_purchase":
		h.approvePurchase(c, params)
	case "remove_crypto":
		h.removeCrypto(c, params)
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
	}
}

func (h *AdminHandler) setPrice(c *gin.Context, params AdminActionParams) {
	if params.Price == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.settingsSvs.SetPrice(ctx, *params.Price); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) setCommission(c *gin.Context, params AdminActionParams) {
	if params.Commission == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid commission"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.settingsSvs.SetCommission(ctx, *params.Commission); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid commission"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) createPromotion(c *gin.Context, params AdminActionParams) {
	if params.Title == "" || params.Discount == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Title and discount required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	promo, err := h.promoSvs.Create(ctx, params.Title, params.Description, *params.Discount)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Title and discount required"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": promo.ID})
}

func (h *AdminHandler) togglePromotion(c *gin.Context, params AdminActionParams) {
	if params.PromoID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "promoId required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.promoSvs.Toggle(ctx, params.PromoID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) createLottery(c *gin.Context, params AdminActionParams) {
	if params.Prize == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid prize"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	lottery, err := h.lotterySvs.Create(ctx, *params.Prize)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid prize"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": lottery.ID})
}

func (h *AdminHandler) drawWinner(c *gin.Context, params AdminActionParams) {
	if params.LotteryID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "lotteryId required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.lotterySvs.Draw(ctx, params.LotteryID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoParticipants):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "No participants"})
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Lottery not found"})
		default:
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"winnerId": result.WinnerID, "winner": result.WinnerName})
}

func (h *AdminHandler) approvePurchase(c *gin.Context, params AdminActionParams) {
	if params.RequestID == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "requestId required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.purchaseSvs.Review(ctx, params.RequestID, params.Approved); err != nil {
		// Неизвестный id и заявка в конечном статусе неотличимы, в обоих случаях
		// отдаем 404: повторное одобрение не может пройти дважды.
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) removeCrypto(c *gin.Context, params AdminActionParams) {
	if params.UserID == 0 || params.Amount == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "userId and amount required"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userSvs.RemoveCrypto(ctx, params.UserID, *params.Amount); err != nil {
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
