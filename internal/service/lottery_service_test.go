package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/internal/service/mocks"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-exchange/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LotteryServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockLotteryRepo *mocks.MockLotteryRepository
	mockBalanceRepo *mocks.MockBalanceRepository
	mockUserRepo    *mocks.MockUserRepository
	lotteryService  *LotteryService
}

func TestLotteryServiceSuite(t *testing.T) {
	suite.Run(t, new(LotteryServiceTestSuite))
}

func (s *LotteryServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockLotteryRepo = mocks.NewMockLotteryRepository(mockCtrl)
	s.mockBalanceRepo = mocks.NewMockBalanceRepository(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.LotteryRepoName)).
		Return(s.mockLotteryRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.LotteryRepoName)).
		Return(s.mockLotteryRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BalanceRepoName)).
		Return(s.mockBalanceRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	lotteryService, servErr := NewLotteryService(s.mockUOW)
	s.Require().NoError(servErr)
	s.lotteryService = lotteryService
}

func (s *LotteryServiceTestSuite) TestCreate() {
	created := domain.Lottery{ID: 1, Prize: decimal.NewFromInt(100), Active: true}

	s.mockLotteryRepo.EXPECT().
		Create(gomock.Any(), decimal.NewFromInt(100)).
		Return(&created, nil)

	lottery, err := s.lotteryService.Create(context.Background(), decimal.NewFromInt(100))
	s.Require().NoError(err)
	s.True(lottery.Active)

	_, err = s.lotteryService.Create(context.Background(), decimal.Zero)
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *LotteryServiceTestSuite) TestJoin() {
	active := domain.Lottery{ID: 1, Prize: decimal.NewFromInt(100), Active: true}
	finished := domain.Lottery{ID: 2, Prize: decimal.NewFromInt(50), Active: false}

	s.mockLotteryRepo.EXPECT().FindByID(gomock.Any(), active.ID).
		Return(&active, nil).AnyTimes()
	s.mockLotteryRepo.EXPECT().FindByID(gomock.Any(), finished.ID).
		Return(&finished, nil)
	s.mockLotteryRepo.EXPECT().FindByID(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound)

	s.mockLotteryRepo.EXPECT().AddParticipant(gomock.Any(), active.ID, int64(1)).
		Return(nil)
	// Повторная запись упирается в уникальный индекс.
	s.mockLotteryRepo.EXPECT().AddParticipant(gomock.Any(), active.ID, int64(2)).
		Return(domain.ErrDuplicateKey)

	cases := []struct {
		name      string
		lotteryID int64
		userID    int64
		wantErr   error
	}{
		{name: "ok", lotteryID: active.ID, userID: 1},
		{name: "already participating", lotteryID: active.ID, userID: 2, wantErr: domain.ErrAlreadyParticipating},
		{name: "inactive lottery", lotteryID: finished.ID, userID: 1, wantErr: domain.ErrLotteryNotActive},
		{name: "missing lottery", lotteryID: 99, userID: 1, wantErr: domain.ErrLotteryNotActive},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.lotteryService.Join(context.Background(), t.lotteryID, t.userID)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *LotteryServiceTestSuite) TestDraw() {
	lottery := domain.Lottery{ID: 1, Prize: decimal.NewFromInt(100), Active: true}
	participants := []int64{10, 20, 30}

	s.mockLotteryRepo.EXPECT().FindActiveByIDForUpdate(gomock.Any(), lottery.ID).
		Return(&lottery, nil)
	s.mockLotteryRepo.EXPECT().ParticipantIDs(gomock.Any(), lottery.ID).
		Return(participants, nil)

	var winnerID int64
	s.mockLotteryRepo.EXPECT().
		SetWinner(gomock.Any(), lottery.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, id int64) error {
			winnerID = id
			s.Contains(participants, id)
			return nil
		})
	s.mockBalanceRepo.EXPECT().
		Credit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, amount decimal.Decimal) error {
			s.Equal(winnerID, userID)
			s.True(lottery.Prize.Equal(amount))
			return nil
		})
	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (*domain.User, error) {
			s.Equal(winnerID, id)
			return &domain.User{ID: id, Username: "winner"}, nil
		})

	result, err := s.lotteryService.Draw(context.Background(), lottery.ID)
	s.Require().NoError(err)
	s.Equal(winnerID, result.WinnerID)
	s.Equal("winner", result.WinnerName)
}

func (s *LotteryServiceTestSuite) TestDrawNoParticipants() {
	lottery := domain.Lottery{ID: 2, Prize: decimal.NewFromInt(10), Active: true}

	s.mockLotteryRepo.EXPECT().FindActiveByIDForUpdate(gomock.Any(), lottery.ID).
		Return(&lottery, nil)
	s.mockLotteryRepo.EXPECT().ParticipantIDs(gomock.Any(), lottery.ID).
		Return([]int64{}, nil)
	s.mockLotteryRepo.EXPECT().SetWinner(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.lotteryService.Draw(context.Background(), lottery.ID)
	s.Require().ErrorIs(err, domain.ErrNoParticipants)
}

func (s *LotteryServiceTestSuite) TestDrawInactiveLottery() {
	// Неактивная или несуществующая лотерея не находится запросом FOR UPDATE.
	s.mockLotteryRepo.EXPECT().FindActiveByIDForUpdate(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.lotteryService.Draw(context.Background(), 99)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *LotteryServiceTestSuite) TestListActive() {
	overview := []repoargs.LotteryOverview{
		{ID: 1, Prize: decimal.NewFromInt(100), Active: true, ParticipantCount: 3},
	}

	s.mockLotteryRepo.EXPECT().ListOverview(gomock.Any(), true).Return(overview, nil)

	got, err := s.lotteryService.ListActive(context.Background())
	s.Require().NoError(err)
	s.Equal(overview, got)
}
