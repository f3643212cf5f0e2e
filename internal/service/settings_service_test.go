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

type SettingsServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockSettingRepo *mocks.MockSettingRepository
	settingsService *SettingsService
}

func TestSettingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func (s *SettingsServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockSettingRepo = mocks.NewMockSettingRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.SettingRepoName)).
		Return(s.mockSettingRepo, nil).AnyTimes()

	settingsService, servErr := NewSettingsService(s.mockUOW)
	s.Require().NoError(servErr)
	s.settingsService = settingsService
}

func (s *SettingsServiceTestSuite) TestGetPriceDefaults() {
	// Ключи не заданы - отдаются дефолты, ошибки нет.
	s.mockSettingRepo.EXPECT().Get(gomock.Any(), domain.SettingCurrentPrice).
		Return(nil, domain.ErrRecordNotFound)
	s.mockSettingRepo.EXPECT().Get(gomock.Any(), domain.SettingCommission).
		Return(nil, domain.ErrRecordNotFound)

	price, commission, err := s.settingsService.GetPrice(context.Background())
	s.Require().NoError(err)
	s.True(DefaultPrice.Equal(price))
	s.True(DefaultCommission.Equal(commission))
}

func (s *SettingsServiceTestSuite) TestGetPriceStoredValues() {
	s.mockSettingRepo.EXPECT().Get(gomock.Any(), domain.SettingCurrentPrice).
		Return(&domain.Setting{Key: domain.SettingCurrentPrice, Value: "50"}, nil)
	s.mockSettingRepo.EXPECT().Get(gomock.Any(), domain.SettingCommission).
		Return(&domain.Setting{Key: domain.SettingCommission, Value: "10"}, nil)

	price, commission, err := s.settingsService.GetPrice(context.Background())
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(50).Equal(price))
	s.True(decimal.NewFromInt(10).Equal(commission))
}

func (s *SettingsServiceTestSuite) TestSetPrice() {
	s.mockSettingRepo.EXPECT().
		Set(gomock.Any(), domain.SettingCurrentPrice, "99.9").
		Return(nil)

	cases := []struct {
		name    string
		price   decimal.Decimal
		wantErr error
	}{
		{name: "ok", price: decimal.RequireFromString("99.9")},
		{name: "zero", price: decimal.Zero, wantErr: domain.ErrValidation},
		{name: "negative", price: decimal.NewFromInt(-1), wantErr: domain.ErrValidation},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.settingsService.SetPrice(context.Background(), t.price)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *SettingsServiceTestSuite) TestSetCommission() {
	// Нулевая комиссия валидна, в отличие от нулевой цены.
	s.mockSettingRepo.EXPECT().
		Set(gomock.Any(), domain.SettingCommission, "0").
		Return(nil)
	s.mockSettingRepo.EXPECT().
		Set(gomock.Any(), domain.SettingCommission, "15").
		Return(nil)

	cases := []struct {
		name       string
		commission decimal.Decimal
		wantErr    error
	}{
		{name: "ok", commission: decimal.NewFromInt(15)},
		{name: "zero ok", commission: decimal.Zero},
		{name: "negative", commission: decimal.NewFromInt(-5), wantErr: domain.ErrValidation},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.settingsService.SetCommission(context.Background(), t.commission)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}
