package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

type PurchaseService struct {
	uow          uow.UOW
	purchaseRepo PurchaseRepository
}

func NewPurchaseService(u uow.UOW) (*PurchaseService, error) {
	purchaseRepo, err := uow.GetRepositoryAs[PurchaseRepository](u, uow.RepositoryName(repoargs.PurchaseRepoName))
	if err != nil {
		return nil, err
	}
	return &PurchaseService{
		uow:          u,
		purchaseRepo: purchaseRepo,
	}, nil
}

// Submit подает заявку на покупку. Текущая цена снимается в момент подачи и
// сохраняется в заявке: одобрение всегда считает по сохраненной цене, даже если
// к этому моменту цена изменилась.
func (p *PurchaseService) Submit(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	signature string,
) (*domain.PurchaseRequest, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return nil, fmt.Errorf("%w: signature is required", domain.ErrValidation)
	}

	var request *domain.PurchaseRequest
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		settingRepo, settingRepoErr := uow.GetAs[SettingRepository](tx, uow.RepositoryName(repoargs.SettingRepoName))
		if settingRepoErr != nil {
			return settingRepoErr //nolint:wrapcheck
		}
		purchaseRepo, purchaseRepoErr := uow.GetAs[PurchaseRepository](tx, uow.RepositoryName(repoargs.PurchaseRepoName))
		if purchaseRepoErr != nil {
			return purchaseRepoErr //nolint:wrapcheck
		}

		price, priceErr := settingDecimal(c, settingRepo, domain.SettingCurrentPrice, DefaultPrice)
		if priceErr != nil {
			return priceErr
		}

		var createErr error
		request, createErr = purchaseRepo.Create(c, repoargs.PurchaseCreate{
			UserID:    userID,
			Amount:    amount,
			Price:     price,
			Signature: signature,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("submitting purchase request: %w", txErr)
	}
	return request, nil
}

// ListPending заявки, ожидающие решения админа, новые первыми.
func (p *PurchaseService) ListPending(ctx context.Context) ([]repoargs.PendingPurchase, error) {
	requests, err := p.purchaseRepo.ListPending(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

// Review одобряет или отклоняет заявку. Заявка не в статусе pending дает
// domain.ErrRecordNotFound, то есть повторное одобрение не начислит баланс дважды.
//
// При одобрении в одной транзакции:
//  1. комиссия = amount * price * (процент комиссии / 100), цена - из заявки;
//  2. скидка = максимальная среди активных акций, 0 если активных нет;
//  3. начисляется amount * (1 + скидка/100);
//  4. пишется buy транзакция с итоговой суммой и комиссией;
//  5. заявка переводится в approved.
func (p *PurchaseService) Review(ctx context.Context, requestID int64, approved bool) error {
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		purchaseRepo, purchaseRepoErr := uow.GetAs[PurchaseRepository](tx, uow.RepositoryName(repoargs.PurchaseRepoName))
		if purchaseRepoErr != nil {
			return purchaseRepoErr //nolint:wrapcheck
		}

		request, findErr := purchaseRepo.FindPendingByID(c, requestID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !approved {
			return purchaseRepo.SetStatus(c, request.ID, domain.PurchaseStatusRejected) //nolint:wrapcheck
		}
		return p.approve(c, tx, purchaseRepo, request)
	})

	if txErr != nil {
		return fmt.Errorf("reviewing purchase request %d: %w", requestID, txErr)
	}
	return nil
}

func (p *PurchaseService) approve(
	ctx context.Context,
	tx uow.TX,
	purchaseRepo PurchaseRepository,
	request *domain.PurchaseRequest,
) error {
	settingRepo, settingRepoErr := uow.GetAs[SettingRepository](tx, uow.RepositoryName(repoargs.SettingRepoName))
	if settingRepoErr != nil {
		return settingRepoErr //nolint:wrapcheck
	}
	promoRepo, promoRepoErr := uow.GetAs[PromotionRepository](tx, uow.RepositoryName(repoargs.PromotionRepoName))
	if promoRepoErr != nil {
		return promoRepoErr //nolint:wrapcheck
	}
	balanceRepo, balanceRepoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
	if balanceRepoErr != nil {
		return balanceRepoErr //nolint:wrapcheck
	}
	transRepo, transRepoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return transRepoErr //nolint:wrapcheck
	}

	commissionPercent, commErr := settingDecimal(ctx, settingRepo, domain.SettingCommission, DefaultCommission)
	if commErr != nil {
		return commErr
	}
	commission := request.Amount.Mul(request.Price).Mul(commissionPercent.Div(percentBase))

	discount, discountErr := promoRepo.HighestActiveDiscount(ctx)
	if discountErr != nil {
		if !errors.Is(discountErr, domain.ErrRecordNotFound) {
			return discountErr //nolint:wrapcheck
		}
		discount = decimal.Zero
	}
	finalAmount := request.Amount.Mul(decimal.NewFromInt(1).Add(discount.Div(percentBase)))

	if creditErr := balanceRepo.Credit(ctx, request.UserID, finalAmount); creditErr != nil {
		return creditErr //nolint:wrapcheck
	}

	if _, createErr := transRepo.Create(ctx, repoargs.TransactionCreate{
		UserID:     request.UserID,
		Type:       domain.TransactionTypeBuy,
		Amount:     finalAmount,
		Price:      request.Price,
		Commission: commission,
	}); createErr != nil {
		return createErr //nolint:wrapcheck
	}

	return purchaseRepo.SetStatus(ctx, request.ID, domain.PurchaseStatusApproved) //nolint:wrapcheck
}
