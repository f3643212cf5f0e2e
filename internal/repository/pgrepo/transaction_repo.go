package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
)

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create добавляет неизменяемую запись о сделке. Баланс юзера этот метод не трогает,
// вызывающая сторона комбинирует его с Credit/Debit внутри одной транзакции.
func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	const query = `INSERT INTO transactions (user_id, type, amount, price, commission)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, user_id, type, amount, price, commission`

	var trans domain.Transaction
	err := t.db.QueryRow(ctx, query, args.UserID, args.Type, args.Amount, args.Price, args.Commission).
		Scan(&trans.ID, &trans.CreatedAt, &trans.UserID, &trans.Type,
			&trans.Amount, &trans.Price, &trans.Commission)
	if err != nil {
		return nil, convertErr(err, "creating transaction")
	}
	return &trans, nil
}

// ListRecent возвращает последние limit сделок с именами юзеров, новые первыми.
func (t *TransactionRepository) ListRecent(
	ctx context.Context,
	limit int32,
) ([]repoargs.TransactionWithUser, error) {
	const query = `SELECT t.id, t.created_at, u.username, t.type, t.amount, t.price, t.commission
		FROM transactions t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.created_at DESC
		LIMIT $1`

	rows, err := t.db.Query(ctx, query, limit)
	if err != nil {
		return nil, convertErr(err, "listing recent transactions")
	}
	defer rows.Close()

	var transactions []repoargs.TransactionWithUser
	for rows.Next() {
		var row repoargs.TransactionWithUser
		if scanErr := rows.Scan(&row.ID, &row.CreatedAt, &row.Username, &row.Type,
			&row.Amount, &row.Price, &row.Commission); scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction")
		}
		transactions = append(transactions, row)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing recent transactions")
	}
	return transactions, nil
}
