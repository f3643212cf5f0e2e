package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
)

type PurchaseRepository struct {
	db uow.DBTX
}

func NewPurchaseRepository(db uow.DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Create создает заявку со статусом pending. Цена фиксируется в момент подачи.
func (p *PurchaseRepository) Create(
	ctx context.Context,
	args repoargs.PurchaseCreate,
) (*domain.PurchaseRequest, error) {
	const query = `INSERT INTO purchase_requests (user_id, amount, price, signature, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, approved_at, user_id, amount, price, signature, status`

	var request domain.PurchaseRequest
	err := p.db.QueryRow(ctx, query,
		args.UserID, args.Amount, args.Price, args.Signature, domain.PurchaseStatusPending).
		Scan(&request.ID, &request.CreatedAt, &request.ApprovedAt, &request.UserID,
			&request.Amount, &request.Price, &request.Signature, &request.Status)
	if err != nil {
		return nil, convertErr(err, "creating purchase request")
	}
	return &request, nil
}

// FindPendingByID возвращает заявку в статусе pending с блокировкой строки до конца
// транзакции. Конкурирующие одобрения одной и той же заявки выстраиваются в очередь,
// и вторая получает domain.ErrRecordNotFound.
func (p *PurchaseRepository) FindPendingByID(ctx context.Context, id int64) (*domain.PurchaseRequest, error) {
	const query = `SELECT id, created_at, approved_at, user_id, amount, price, signature, status
		FROM purchase_requests
		WHERE id = $1 AND status = $2
		FOR UPDATE`

	var request domain.PurchaseRequest
	err := p.db.QueryRow(ctx, query, id, domain.PurchaseStatusPending).
		Scan(&request.ID, &request.CreatedAt, &request.ApprovedAt, &request.UserID,
			&request.Amount, &request.Price, &request.Signature, &request.Status)
	if err != nil {
		return nil, convertErr(err, "finding pending purchase request %d", id)
	}
	return &request, nil
}

// ListPending возвращает заявки в статусе pending с именами юзеров, новые первыми.
func (p *PurchaseRepository) ListPending(ctx context.Context) ([]repoargs.PendingPurchase, error) {
	const query = `SELECT pr.id, pr.created_at, pr.user_id, u.username, pr.amount, pr.price, pr.signature, pr.status
		FROM purchase_requests pr
		JOIN users u ON pr.user_id = u.id
		WHERE pr.status = $1
		ORDER BY pr.created_at DESC`

	rows, err := p.db.Query(ctx, query, domain.PurchaseStatusPending)
	if err != nil {
		return nil, convertErr(err, "listing pending purchase requests")
	}
	defer rows.Close()

	var requests []repoargs.PendingPurchase
	for rows.Next() {
		var row repoargs.PendingPurchase
		if scanErr := rows.Scan(&row.ID, &row.CreatedAt, &row.UserID, &row.Username,
			&row.Amount, &row.Price, &row.Signature, &row.Status); scanErr != nil {
			return nil, convertErr(scanErr, "scanning pending purchase request")
		}
		requests = append(requests, row)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing pending purchase requests")
	}
	return requests, nil
}

// SetStatus переводит заявку в конечный статус. Для approved дополнительно
// проставляется approved_at. Статусы approved/rejected назад не откатываются.
func (p *PurchaseRepository) SetStatus(ctx context.Context, id int64, status domain.PurchaseStatus) error {
	const query = `UPDATE purchase_requests SET status = $1, approved_at = $2 WHERE id = $3`

	var approvedAt *time.Time
	if status == domain.PurchaseStatusApproved {
		now := time.Now()
		approvedAt = &now
	}

	tag, err := p.db.Exec(ctx, query, status, approvedAt, id)
	if err != nil {
		return convertErr(err, "updating status of purchase request %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating status of purchase request %d", id)
	}
	return nil
}
