package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

type LotteryService struct {
	uow         uow.UOW
	lotteryRepo LotteryRepository
}

// DrawResult итог розыгрыша лотереи.
type DrawResult struct {
	WinnerID   int64
	WinnerName string
}

func NewLotteryService(u uow.UOW) (*LotteryService, error) {
	lotteryRepo, err := uow.GetRepositoryAs[LotteryRepository](u, uow.RepositoryName(repoargs.LotteryRepoName))
	if err != nil {
		return nil, err
	}
	return &LotteryService{
		uow:         u,
		lotteryRepo: lotteryRepo,
	}, nil
}

func (l *LotteryService) Create(ctx context.Context, prize decimal.Decimal) (*domain.Lottery, error) {
	if !prize.IsPositive() {
		return nil, fmt.Errorf("%w: prize must be greater than zero", domain.ErrValidation)
	}
	lottery, err := l.lotteryRepo.Create(ctx, prize)
	if err != nil {
		return nil, fmt.Errorf("creating lottery: %w", err)
	}
	return lottery, nil
}

// Join записывает юзера в участники. Участвовать можно только в активной лотерее
// и только один раз: повторная запись возвращает domain.ErrAlreadyParticipating.
func (l *LotteryService) Join(ctx context.Context, lotteryID, userID int64) error {
	lottery, findErr := l.lotteryRepo.FindByID(ctx, lotteryID)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return domain.ErrLotteryNotActive
		}
		return fmt.Errorf("joining lottery %d: %w", lotteryID, findErr)
	}
	if !lottery.Active {
		return domain.ErrLotteryNotActive
	}

	if addErr := l.lotteryRepo.AddParticipant(ctx, lotteryID, userID); addErr != nil {
		if errors.Is(addErr, domain.ErrDuplicateKey) {
			return domain.ErrAlreadyParticipating
		}
		return fmt.Errorf("joining lottery %d: %w", lotteryID, addErr)
	}
	return nil
}

// ListActive активные лотереи с живыми счетчиками участников.
func (l *LotteryService) ListActive(ctx context.Context) ([]repoargs.LotteryOverview, error) {
	lotteries, err := l.lotteryRepo.ListOverview(ctx, true)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return lotteries, nil
}

// ListAll все лотереи, включая завершенные, с именами победителей. Админский вид.
func (l *LotteryService) ListAll(ctx context.Context) ([]repoargs.LotteryOverview, error) {
	lotteries, err := l.lotteryRepo.ListOverview(ctx, false)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return lotteries, nil
}

// Draw разыгрывает лотерею: один победитель выбирается равновероятно среди всех
// участников, лотерея деактивируется, приз зачисляется победителю. Все в одной
// транзакции, строка лотереи блокируется от конкурентного розыгрыша.
func (l *LotteryService) Draw(ctx context.Context, lotteryID int64) (*DrawResult, error) {
	var result DrawResult

	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		lotteryRepo, lotteryRepoErr := uow.GetAs[LotteryRepository](tx, uow.RepositoryName(repoargs.LotteryRepoName))
		if lotteryRepoErr != nil {
			return lotteryRepoErr //nolint:wrapcheck
		}
		balanceRepo, balanceRepoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if balanceRepoErr != nil {
			return balanceRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		lottery, findErr := lotteryRepo.FindActiveByIDForUpdate(c, lotteryID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		participants, participantsErr := lotteryRepo.ParticipantIDs(c, lottery.ID)
		if participantsErr != nil {
			return participantsErr //nolint:wrapcheck
		}
		if len(participants) == 0 {
			return domain.ErrNoParticipants
		}

		// rand/v2 сидится из системной энтропии, порядок вставки участников
		// на выбор не влияет.
		winnerID := participants[rand.Intn(len(participants))]

		if setErr := lotteryRepo.SetWinner(c, lottery.ID, winnerID); setErr != nil {
			return setErr //nolint:wrapcheck
		}
		if creditErr := balanceRepo.Credit(c, winnerID, lottery.Prize); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}

		winner, winnerErr := userRepo.FindByID(c, winnerID)
		if winnerErr != nil {
			return winnerErr //nolint:wrapcheck
		}
		result = DrawResult{WinnerID: winner.ID, WinnerName: winner.Username}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("drawing lottery %d: %w", lotteryID, txErr)
	}
	return &result, nil
}
