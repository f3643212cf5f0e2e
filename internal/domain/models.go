package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
}

// Balance хранит кастодиальный крипто-баланс юзера. Один к одному с User,
// никогда не опускается ниже нуля.
type Balance struct {
	UserID        int64
	CryptoBalance decimal.Decimal
	UpdatedAt     time.Time
}

// Transaction неизменяемая запись о завершенной сделке (покупка или продажа).
type Transaction struct {
	ID         int64
	CreatedAt  time.Time
	UserID     int64
	Type       TransactionType
	Amount     decimal.Decimal
	Price      decimal.Decimal
	Commission decimal.Decimal
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type Promotion struct {
	ID          int64
	CreatedAt   time.Time
	Title       string
	Description string
	Discount    decimal.Decimal
	Active      bool
}

// PurchaseRequest заявка на покупку, ожидающая решения админа. Цена фиксируется
// в момент подачи и не пересматривается при одобрении.
type PurchaseRequest struct {
	ID         int64
	CreatedAt  time.Time
	ApprovedAt *time.Time
	UserID     int64
	Amount     decimal.Decimal
	Price      decimal.Decimal
	Signature  string
	Status     PurchaseStatus
}

type Lottery struct {
	ID          int64
	CreatedAt   time.Time
	CompletedAt *time.Time
	Prize       decimal.Decimal
	WinnerID    *int64
	Active      bool
}

type LotteryParticipant struct {
	ID        int64
	CreatedAt time.Time
	LotteryID int64
	UserID    int64
}
