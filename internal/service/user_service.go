package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

const MinUsernameLength = 2

type UserService struct {
	uow         uow.UOW
	userRepo    UserRepository
	balanceRepo BalanceRepository
}

func NewUserService(u uow.UOW) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	balanceRepo, balanceRepoErr := uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if balanceRepoErr != nil {
		return nil, balanceRepoErr
	}
	return &UserService{
		uow:         u,
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
	}, nil
}

// Register идемпотентная регистрация по одному юзернейму. Если юзер уже есть,
// возвращается существующая запись и created=false; двух строк с одним именем
// не бывает. Новый юзер создается вместе с нулевым балансом в одной транзакции.
func (s *UserService) Register(ctx context.Context, username string) (user *domain.User, created bool, err error) {
	// Длина считается в рунах: однобуквенное кириллическое имя короче минимума,
	// сколько бы байт оно ни занимало.
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return nil, false, fmt.Errorf("%w: username must be at least %d characters",
			domain.ErrValidation, MinUsernameLength)
	}

	existing, findErr := s.userRepo.FindByUsername(ctx, username)
	if findErr == nil {
		return existing, false, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("registering user: %w", findErr)
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		balanceRepo, balanceRepoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if balanceRepoErr != nil {
			return balanceRepoErr //nolint:wrapcheck
		}

		var createErr error
		user, createErr = userRepo.CreateUser(c, username)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		return balanceRepo.CreateZero(c, user.ID) //nolint:wrapcheck
	})

	if txErr != nil {
		// Гонка двух одновременных регистраций одного имени: проигравшая транзакция
		// упирается в уникальный индекс, перечитываем уже созданную запись.
		if errors.Is(txErr, domain.ErrDuplicateKey) {
			existing, raceErr := s.userRepo.FindByUsername(ctx, username)
			if raceErr != nil {
				return nil, false, fmt.Errorf("registering user: %w", raceErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("registering user: %w", txErr)
	}
	return user, true, nil
}

// Balance возвращает крипто-баланс юзера. Отсутствие строки баланса равнозначно нулю.
func (s *UserService) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	balance, err := s.balanceRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Decimal{}, err //nolint:wrapcheck
	}
	return balance, nil
}

// RemoveCrypto ручное админское списание. Баланс уменьшается на amount,
// но не ниже нуля; достаточность средств не проверяется.
func (s *UserService) RemoveCrypto(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if err := s.balanceRepo.AdjustDown(ctx, userID, amount); err != nil {
		return fmt.Errorf("removing crypto from user %d: %w", userID, err)
	}
	return nil
}

// ListWithBalances админский список всех юзеров с балансами.
func (s *UserService) ListWithBalances(ctx context.Context) ([]repoargs.UserWithBalance, error) {
	users, err := s.userRepo.ListWithBalances(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}
