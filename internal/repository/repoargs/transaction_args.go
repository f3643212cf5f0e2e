package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionCreate struct {
	UserID     int64
	Type       domain.TransactionType
	Amount     decimal.Decimal
	Price      decimal.Decimal
	Commission decimal.Decimal
}

// TransactionWithUser строка публичной ленты сделок (join с users).
type TransactionWithUser struct {
	ID         int64
	CreatedAt  time.Time
	Username   string
	Type       domain.TransactionType
	Amount     decimal.Decimal
	Price      decimal.Decimal
	Commission decimal.Decimal
}
