package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

// Дефолты для незаданных ключей настроек.
var (
	DefaultPrice      = decimal.RequireFromString("42.50")
	DefaultCommission = decimal.Zero
)

type SettingsService struct {
	uow         uow.UOW
	settingRepo SettingRepository
}

func NewSettingsService(u uow.UOW) (*SettingsService, error) {
	settingRepo, err := uow.GetRepositoryAs[SettingRepository](u, uow.RepositoryName(repoargs.SettingRepoName))
	if err != nil {
		return nil, err
	}
	return &SettingsService{
		uow:         u,
		settingRepo: settingRepo,
	}, nil
}

// GetPrice возвращает текущую цену и процент комиссии. Незаданные ключи
// подменяются дефолтами, это не ошибка.
func (s *SettingsService) GetPrice(ctx context.Context) (price, commission decimal.Decimal, err error) {
	price, err = settingDecimal(ctx, s.settingRepo, domain.SettingCurrentPrice, DefaultPrice)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	commission, err = settingDecimal(ctx, s.settingRepo, domain.SettingCommission, DefaultCommission)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return price, commission, nil
}

func (s *SettingsService) SetPrice(ctx context.Context, price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than zero", domain.ErrValidation)
	}
	if err := s.settingRepo.Set(ctx, domain.SettingCurrentPrice, price.String()); err != nil {
		return fmt.Errorf("setting price: %w", err)
	}
	return nil
}

func (s *SettingsService) SetCommission(ctx context.Context, commission decimal.Decimal) error {
	if commission.IsNegative() {
		return fmt.Errorf("%w: commission must not be negative", domain.ErrValidation)
	}
	if err := s.settingRepo.Set(ctx, domain.SettingCommission, commission.String()); err != nil {
		return fmt.Errorf("setting commission: %w", err)
	}
	return nil
}

// settingDecimal читает ключ через переданный репозиторий (пул или транзакция)
// и парсит значение. Отсутствующий ключ заменяется значением def.
func settingDecimal(
	ctx context.Context,
	repo SettingRepository,
	key string,
	def decimal.Decimal,
) (decimal.Decimal, error) {
	setting, err := repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return def, nil
		}
		return decimal.Decimal{}, err //nolint:wrapcheck
	}
	value, parseErr := decimal.NewFromString(setting.Value)
	if parseErr != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing setting %s: %s", key, parseErr.Error())
	}
	return value, nil
}
