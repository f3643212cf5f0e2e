package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

type PromotionRepository struct {
	db uow.DBTX
}

func NewPromotionRepository(db uow.DBTX) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// Create создает акцию. Новая акция всегда неактивна, видимой её делает
// только явный Toggle.
func (p *PromotionRepository) Create(
	ctx context.Context,
	args repoargs.PromotionCreate,
) (*domain.Promotion, error) {
	const query = `INSERT INTO promotions (title, description, discount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, title, description, discount, active`

	var promo domain.Promotion
	err := p.db.QueryRow(ctx, query, args.Title, args.Description, args.Discount).
		Scan(&promo.ID, &promo.CreatedAt, &promo.Title, &promo.Description, &promo.Discount, &promo.Active)
	if err != nil {
		return nil, convertErr(err, "creating promotion")
	}
	return &promo, nil
}

// Toggle инвертирует флаг active. Возвращает domain.ErrRecordNotFound,
// если акции с таким id нет.
func (p *PromotionRepository) Toggle(ctx context.Context, id int64) error {
	const query = `UPDATE promotions SET active = NOT active WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return convertErr(err, "toggling promotion %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "toggling promotion %d", id)
	}
	return nil
}

// List возвращает все акции, новые первыми.
func (p *PromotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	const query = `SELECT id, created_at, title, description, discount, active
		FROM promotions
		ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "listing promotions")
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		var promo domain.Promotion
		if scanErr := rows.Scan(&promo.ID, &promo.CreatedAt, &promo.Title,
			&promo.Description, &promo.Discount, &promo.Active); scanErr != nil {
			return nil, convertErr(scanErr, "scanning promotion")
		}
		promotions = append(promotions, promo)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing promotions")
	}
	return promotions, nil
}

// HighestActiveDiscount возвращает максимальную скидку среди активных акций.
// Если активных акций нет - domain.ErrRecordNotFound.
func (p *PromotionRepository) HighestActiveDiscount(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT discount FROM promotions WHERE active = true ORDER BY discount DESC LIMIT 1`

	var discount decimal.Decimal
	if err := p.db.QueryRow(ctx, query).Scan(&discount); err != nil {
		return decimal.Decimal{}, convertErr(err, "getting highest active discount")
	}
	return discount, nil
}
