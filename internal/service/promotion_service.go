package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

type PromotionService struct {
	uow       uow.UOW
	promoRepo PromotionRepository
}

func NewPromotionService(u uow.UOW) (*PromotionService, error) {
	promoRepo, err := uow.GetRepositoryAs[PromotionRepository](u, uow.RepositoryName(repoargs.PromotionRepoName))
	if err != nil {
		return nil, err
	}
	return &PromotionService{
		uow:       u,
		promoRepo: promoRepo,
	}, nil
}

// Create создает акцию. Акция рождается неактивной: чтобы скидка начала
// применяться при одобрении покупок, её нужно явно включить через Toggle.
func (p *PromotionService) Create(
	ctx context.Context,
	title, description string,
	discount decimal.Decimal,
) (*domain.Promotion, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !discount.IsPositive() {
		return nil, fmt.Errorf("%w: discount must be greater than zero", domain.ErrValidation)
	}

	promo, err := p.promoRepo.Create(ctx, repoargs.PromotionCreate{
		Title:       title,
		Description: description,
		Discount:    discount,
	})
	if err != nil {
		return nil, fmt.Errorf("creating promotion: %w", err)
	}
	return promo, nil
}

// Toggle инвертирует флаг active акции.
func (p *PromotionService) Toggle(ctx context.Context, id int64) error {
	if err := p.promoRepo.Toggle(ctx, id); err != nil {
		return fmt.Errorf("toggling promotion %d: %w", id, err)
	}
	return nil
}

// List все акции, новые первыми.
func (p *PromotionService) List(ctx context.Context) ([]domain.Promotion, error) {
	promotions, err := p.promoRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return promotions, nil
}
