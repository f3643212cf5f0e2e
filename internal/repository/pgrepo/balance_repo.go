package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

type BalanceRepository struct {
	db uow.DBTX
}

func NewBalanceRepository(db uow.DBTX) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// CreateZero заводит нулевой баланс для нового юзера.
func (b *BalanceRepository) CreateZero(ctx context.Context, userID int64) error {
	const query = `INSERT INTO user_balances (user_id, crypto_balance) VALUES ($1, 0)`

	if _, err := b.db.Exec(ctx, query, userID); err != nil {
		return convertErr(err, "creating zero balance for user %d", userID)
	}
	return nil
}

// Get возвращает баланс юзера. Отсутствие строки трактуется как нулевой баланс.
func (b *BalanceRepository) Get(ctx context.Context, userID int64) (decimal.Decimal, error) {
	const query = `SELECT crypto_balance FROM user_balances WHERE user_id = $1`

	var balance decimal.Decimal
	if err := b.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		return decimal.Decimal{}, convertErr(err, "getting balance of user %d", userID)
	}
	return balance, nil
}

func (b *BalanceRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal) error {
	const query = `UPDATE user_balances
		SET crypto_balance = crypto_balance + $1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2`

	tag, err := b.db.Exec(ctx, query, amount, userID)
	if err != nil {
		return convertErr(err, "crediting user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "crediting user %d", userID)
	}
	return nil
}

// Debit списывает amount одним условным UPDATE: проверка достаточности средств и само
// списание - один атомарный стейтмент, конкурентные продажи не могут пройти обе по
// устаревшему остатку. GREATEST страхует от ухода в минус.
func (b *BalanceRepository) Debit(ctx context.Context, userID int64, amount decimal.Decimal) error {
	const query = `UPDATE user_balances
		SET crypto_balance = GREATEST(crypto_balance - $1, 0), updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2 AND crypto_balance >= $1`

	tag, err := b.db.Exec(ctx, query, amount, userID)
	if err != nil {
		return convertErr(err, "debiting user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEnoughBalance
	}
	return nil
}

// AdjustDown административное списание: уменьшает баланс на amount, но не ниже нуля.
// В отличие от Debit не требует достаточности средств.
func (b *BalanceRepository) AdjustDown(ctx context.Context, userID int64, amount decimal.Decimal) error {
	const query = `UPDATE user_balances
		SET crypto_balance = GREATEST(crypto_balance - $1, 0), updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2`

	tag, err := b.db.Exec(ctx, query, amount, userID)
	if err != nil {
		return convertErr(err, "adjusting balance of user %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "adjusting balance of user %d", userID)
	}
	return nil
}
