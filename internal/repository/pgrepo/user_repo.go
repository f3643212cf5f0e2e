package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает юзера. В случае конфликта юзернейма возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	const query = `INSERT INTO users (username) VALUES ($1)
		RETURNING id, created_at, updated_at, username`

	var user domain.User
	err := u.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return &user, nil
}

// FindByUsername возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `SELECT id, created_at, updated_at, username FROM users WHERE username = $1`

	var user domain.User
	err := u.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return &user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT id, created_at, updated_at, username FROM users WHERE id = $1`

	var user domain.User
	err := u.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return &user, nil
}

// ListWithBalances возвращает всех юзеров с их балансами, новые первыми.
// Юзеры без строки баланса получают ноль.
func (u *UserRepository) ListWithBalances(ctx context.Context) ([]repoargs.UserWithBalance, error) {
	const query = `SELECT u.id, u.username, COALESCE(ub.crypto_balance, 0)
		FROM users u
		LEFT JOIN user_balances ub ON u.id = ub.user_id
		ORDER BY u.created_at DESC`

	rows, err := u.db.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "listing users with balances")
	}
	defer rows.Close()

	var users []repoargs.UserWithBalance
	for rows.Next() {
		var row repoargs.UserWithBalance
		if scanErr := rows.Scan(&row.ID, &row.Username, &row.CryptoBalance); scanErr != nil {
			return nil, convertErr(scanErr, "scanning user with balance")
		}
		users = append(users, row)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing users with balances")
	}
	return users, nil
}
