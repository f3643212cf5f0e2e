package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/internal/service"
	"github.com/shopspring/decimal"
)

// Интерфейсы сервисов. Нужны исключительно для моков в тестах хендлеров.

type UserServicer interface {
	Register(ctx context.Context, username string) (*domain.User, bool, error)
	Balance(ctx context.Context, userID int64) (decimal.Decimal, error)
	RemoveCrypto(ctx context.Context, userID int64, amount decimal.Decimal) error
	ListWithBalances(ctx context.Context) ([]repoargs.UserWithBalance, error)
}

type SettingsServicer interface {
	GetPrice(ctx context.Context) (price, commission decimal.Decimal, err error)
	SetPrice(ctx context.Context, price decimal.Decimal) error
	SetCommission(ctx context.Context, commission decimal.Decimal) error
}

type TradingServicer interface {
	Sell(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	AddClicks(ctx context.Context, userID int64, amount decimal.Decimal) error
	RecentTransactions(ctx context.Context) ([]repoargs.TransactionWithUser, error)
}

type PurchaseServicer interface {
	Submit(ctx context.Context, userID int64, amount decimal.Decimal, signature string) (*domain.PurchaseRequest, error)
	ListPending(ctx context.Context) ([]repoargs.PendingPurchase, error)
	Review(ctx context.Context, requestID int64, approved bool) error
}

type PromotionServicer interface {
	Create(ctx context.Context, title, description string, discount decimal.Decimal) (*domain.Promotion, error)
	Toggle(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Promotion, error)
}

type LotteryServicer interface {
	Create(ctx context.Context, prize decimal.Decimal) (*domain.Lottery, error)
	Join(ctx context.Context, lotteryID, userID int64) error
	ListActive(ctx context.Context) ([]repoargs.LotteryOverview, error)
	ListAll(ctx context.Context) ([]repoargs.LotteryOverview, error)
	Draw(ctx context.Context, lotteryID int64) (*service.DrawResult, error)
}
