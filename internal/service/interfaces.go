package service

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	ListWithBalances(ctx context.Context) ([]repoargs.UserWithBalance, error)
}

type BalanceRepository interface {
	CreateZero(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int64, amount decimal.Decimal) error
	Debit(ctx context.Context, userID int64, amount decimal.Decimal) error
	AdjustDown(ctx context.Context, userID int64, amount decimal.Decimal) error
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	ListRecent(ctx context.Context, limit int32) ([]repoargs.TransactionWithUser, error)
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Set(ctx context.Context, key, value string) error
}

type PromotionRepository interface {
	Create(ctx context.Context, args repoargs.PromotionCreate) (*domain.Promotion, error)
	Toggle(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Promotion, error)
	HighestActiveDiscount(ctx context.Context) (decimal.Decimal, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, args repoargs.PurchaseCreate) (*domain.PurchaseRequest, error)
	FindPendingByID(ctx context.Context, id int64) (*domain.PurchaseRequest, error)
	ListPending(ctx context.Context) ([]repoargs.PendingPurchase, error)
	SetStatus(ctx context.Context, id int64, status domain.PurchaseStatus) error
}

type LotteryRepository interface {
	Create(ctx context.Context, prize decimal.Decimal) (*domain.Lottery, error)
	FindByID(ctx context.Context, id int64) (*domain.Lottery, error)
	FindActiveByIDForUpdate(ctx context.Context, id int64) (*domain.Lottery, error)
	ListOverview(ctx context.Context, activeOnly bool) ([]repoargs.LotteryOverview, error)
	AddParticipant(ctx context.Context, lotteryID, userID int64) error
	ParticipantIDs(ctx context.Context, lotteryID int64) ([]int64, error)
	SetWinner(ctx context.Context, lotteryID, winnerID int64) error
}
