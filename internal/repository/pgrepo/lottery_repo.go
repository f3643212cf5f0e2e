package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

type LotteryRepository struct {
	db uow.DBTX
}

func NewLotteryRepository(db uow.DBTX) *LotteryRepository {
	return &LotteryRepository{db: db}
}

// Create создает активную лотерею без участников и победителя.
func (l *LotteryRepository) Create(ctx context.Context, prize decimal.Decimal) (*domain.Lottery, error) {
	const query = `INSERT INTO lotteries (prize) VALUES ($1)
		RETURNING id, created_at, completed_at, prize, winner_id, active`

	var lottery domain.Lottery
	err := l.db.QueryRow(ctx, query, prize).
		Scan(&lottery.ID, &lottery.CreatedAt, &lottery.CompletedAt,
			&lottery.Prize, &lottery.WinnerID, &lottery.Active)
	if err != nil {
		return nil, convertErr(err, "creating lottery")
	}
	return &lottery, nil
}

func (l *LotteryRepository) FindByID(ctx context.Context, id int64) (*domain.Lottery, error) {
	const query = `SELECT id, created_at, completed_at, prize, winner_id, active
		FROM lotteries WHERE id = $1`

	var lottery domain.Lottery
	err := l.db.QueryRow(ctx, query, id).
		Scan(&lottery.ID, &lottery.CreatedAt, &lottery.CompletedAt,
			&lottery.Prize, &lottery.WinnerID, &lottery.Active)
	if err != nil {
		return nil, convertErr(err, "finding lottery %d", id)
	}
	return &lottery, nil
}

// FindActiveByIDForUpdate блокирует строку лотереи до конца транзакции, чтобы два
// конкурирующих розыгрыша не выбрали победителя дважды.
func (l *LotteryRepository) FindActiveByIDForUpdate(ctx context.Context, id int64) (*domain.Lottery, error) {
	const query = `SELECT id, created_at, completed_at, prize, winner_id, active
		FROM lotteries
		WHERE id = $1 AND active = true
		FOR UPDATE`

	var lottery domain.Lottery
	err := l.db.QueryRow(ctx, query, id).
		Scan(&lottery.ID, &lottery.CreatedAt, &lottery.CompletedAt,
			&lottery.Prize, &lottery.WinnerID, &lottery.Active)
	if err != nil {
		return nil, convertErr(err, "finding active lottery %d", id)
	}
	return &lottery, nil
}

// ListOverview возвращает лотереи со счетчиками участников и именем победителя.
// activeOnly ограничивает выборку активными (публичный список).
func (l *LotteryRepository) ListOverview(ctx context.Context, activeOnly bool) ([]repoargs.LotteryOverview, error) {
	const query = `SELECT l.id, l.created_at, l.prize, l.active, l.winner_id, u.username,
			(SELECT COUNT(*) FROM lottery_participants WHERE lottery_id = l.id)
		FROM lotteries l
		LEFT JOIN users u ON l.winner_id = u.id
		WHERE l.active = true OR NOT $1
		ORDER BY l.created_at DESC`

	rows, err := l.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, convertErr(err, "listing lotteries")
	}
	defer rows.Close()

	var lotteries []repoargs.LotteryOverview
	for rows.Next() {
		var row repoargs.LotteryOverview
		if scanErr := rows.Scan(&row.ID, &row.CreatedAt, &row.Prize, &row.Active,
			&row.WinnerID, &row.WinnerName, &row.ParticipantCount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning lottery")
		}
		lotteries = append(lotteries, row)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing lotteries")
	}
	return lotteries, nil
}

// AddParticipant вставляет строку участия. Повторное участие упирается в уникальный
// индекс (lottery_id, user_id) и возвращает domain.ErrDuplicateKey.
func (l *LotteryRepository) AddParticipant(ctx context.Context, lotteryID, userID int64) error {
	const query = `INSERT INTO lottery_participants (lottery_id, user_id) VALUES ($1, $2)`

	if _, err := l.db.Exec(ctx, query, lotteryID, userID); err != nil {
		return convertErr(err, "adding participant %d to lottery %d", userID, lotteryID)
	}
	return nil
}

// ParticipantIDs возвращает id всех участников лотереи.
func (l *LotteryRepository) ParticipantIDs(ctx context.Context, lotteryID int64) ([]int64, error) {
	const query = `SELECT user_id FROM lottery_participants WHERE lottery_id = $1`

	rows, err := l.db.Query(ctx, query, lotteryID)
	if err != nil {
		return nil, convertErr(err, "listing participants of lottery %d", lotteryID)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scanning participant id")
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing participants of lottery %d", lotteryID)
	}
	return ids, nil
}

// SetWinner фиксирует победителя и деактивирует лотерею. Повторный розыгрыш
// невозможен: строка уже не active.
func (l *LotteryRepository) SetWinner(ctx context.Context, lotteryID, winnerID int64) error {
	const query = `UPDATE lotteries
		SET winner_id = $1, active = false, completed_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND active = true`

	tag, err := l.db.Exec(ctx, query, winnerID, lotteryID)
	if err != nil {
		return convertErr(err, "setting winner of lottery %d", lotteryID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "setting winner of lottery %d", lotteryID)
	}
	return nil
}
