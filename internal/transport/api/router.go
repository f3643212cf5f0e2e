package api

import (
	"net/http"
	"time"

	"github.com/fsdevblog/groph-exchange/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup   = "/api"
	AuthRoute    = "/auth"
	TradingRoute = "/trading"
	LotteryRoute = "/lottery"
	AdminRoute   = "/admin"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	SettingsService SettingsServicer
	TradingService  TradingServicer
	PurchaseService PurchaseServicer
	PromoService    PromotionServicer
	LotteryService  LotteryServicer
	AdminPassword   []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORS())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	authHandler := NewAuthHandler(args.UserService)
	tradingHandler := NewTradingHandler(args.SettingsService, args.UserService, args.TradingService, args.PurchaseService)
	lotteryHandler := NewLotteryHandler(args.LotteryService)
	adminHandler := NewAdminHandler(
		args.UserService,
		args.SettingsService,
		args.PurchaseService,
		args.PromoService,
		args.LotteryService,
	)

	api := r.Group(RouteGroup)

	api.POST(AuthRoute, authHandler.Register)

	api.GET(TradingRoute, tradingHandler.Index)
	api.POST(TradingRoute, tradingHandler.Create)

	api.GET(LotteryRoute, lotteryHandler.Index)
	api.POST(LotteryRoute, lotteryHandler.Join)

	admin := api.Group(AdminRoute)
	admin.Use(middlewares.AdminAuth(args.AdminPassword))
	// ниже все роуты группы требуют админский секрет в заголовке.
	admin.GET("", adminHandler.Index)
	admin.POST("", adminHandler.Create)

	return r
}
