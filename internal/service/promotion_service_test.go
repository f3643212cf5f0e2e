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

type PromotionServiceTestSuite struct {
	suite.Suite
	mockUOW          *uowmocks.MockUOW
	mockPromoRepo    *mocks.MockPromotionRepository
	promotionService *PromotionService
}

func TestPromotionServiceSuite(t *testing.T) {
	suite.Run(t, new(PromotionServiceTestSuite))
}

func (s *PromotionServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockPromoRepo = mocks.NewMockPromotionRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PromotionRepoName)).
		Return(s.mockPromoRepo, nil).AnyTimes()

	promotionService, servErr := NewPromotionService(s.mockUOW)
	s.Require().NoError(servErr)
	s.promotionService = promotionService
}

func (s *PromotionServiceTestSuite) TestCreate() {
	created := domain.Promotion{
		ID:       1,
		Title:    "launch week",
		Discount: decimal.NewFromInt(5),
		Active:   false,
	}

	s.mockPromoRepo.EXPECT().
		Create(gomock.Any(), repoargs.PromotionCreate{
			Title:       "launch week",
			Description: "5% bonus",
			Discount:    decimal.NewFromInt(5),
		}).
		Return(&created, nil)

	promo, err := s.promotionService.Create(context.Background(), "launch week", "5% bonus", decimal.NewFromInt(5))
	s.Require().NoError(err)
	// Новая акция неактивна, пока её явно не включат.
	s.False(promo.Active)
}

func (s *PromotionServiceTestSuite) TestCreateValidation() {
	cases := []struct {
		name     string
		title    string
		discount decimal.Decimal
	}{
		{name: "blank title", title: "  ", discount: decimal.NewFromInt(5)},
		{name: "zero discount", title: "promo", discount: decimal.Zero},
		{name: "negative discount", title: "promo", discount: decimal.NewFromInt(-5)},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			promo, err := s.promotionService.Create(context.Background(), t.title, "", t.discount)
			s.Require().ErrorIs(err, domain.ErrValidation)
			s.Nil(promo)
		})
	}
}

func (s *PromotionServiceTestSuite) TestToggle() {
	s.mockPromoRepo.EXPECT().Toggle(gomock.Any(), int64(1)).Return(nil)
	s.mockPromoRepo.EXPECT().Toggle(gomock.Any(), int64(99)).Return(domain.ErrRecordNotFound)

	s.Require().NoError(s.promotionService.Toggle(context.Background(), 1))

	err := s.promotionService.Toggle(context.Background(), 99)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PromotionServiceTestSuite) TestList() {
	promotions := []domain.Promotion{
		{ID: 2, Title: "second", Active: true},
		{ID: 1, Title: "first"},
	}

	s.mockPromoRepo.EXPECT().List(gomock.Any()).Return(promotions, nil)

	got, err := s.promotionService.List(context.Background())
	s.Require().NoError(err)
	s.Equal(promotions, got)
}
