package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/shopspring/decimal"
)

type PurchaseCreate struct {
	UserID    int64
	Amount    decimal.Decimal
	Price     decimal.Decimal
	Signature string
}

// PendingPurchase заявка из админской очереди вместе с именем подавшего юзера.
type PendingPurchase struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Username  string
	Amount    decimal.Decimal
	Price     decimal.Decimal
	Signature string
	Status    domain.PurchaseStatus
}
