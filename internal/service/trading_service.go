package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-exchange/internal/domain"
	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"
	"github.com/fsdevblog/groph-exchange/pkg/uow"
	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 50

var percentBase = decimal.NewFromInt(100)

type TradingService struct {
	uow             uow.UOW
	balanceRepo     BalanceRepository
	transactionRepo TransactionRepository
}

func NewTradingService(u uow.UOW) (*TradingService, error) {
	balanceRepo, balanceRepoErr := uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if balanceRepoErr != nil {
		return nil, balanceRepoErr
	}
	transRepo, transRepoErr := uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, transRepoErr
	}
	return &TradingService{
		uow:             u,
		balanceRepo:     balanceRepo,
		transactionRepo: transRepo,
	}, nil
}

// Sell продает amount по текущей цене. Списание баланса, чтение настроек и запись
// сделки выполняются в одной транзакции; само списание - условный UPDATE, так что
// параллельные продажи не уведут баланс в минус. Возвращает размер комиссии.
func (t *TradingService) Sell(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}

	var commission decimal.Decimal
	txErr := t.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		balanceRepo, balanceRepoErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
		if balanceRepoErr != nil {
			return balanceRepoErr //nolint:wrapcheck
		}
		settingRepo, settingRepoErr := uow.GetAs[SettingRepository](tx, uow.RepositoryName(repoargs.SettingRepoName))
		if settingRepoErr != nil {
			return settingRepoErr //nolint:wrapcheck
		}
		transRepo, transRepoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}

		if debitErr := balanceRepo.Debit(c, userID, amount); debitErr != nil {
			return debitErr //nolint:wrapcheck
		}

		price, priceErr := settingDecimal(c, settingRepo, domain.SettingCurrentPrice, DefaultPrice)
		if priceErr != nil {
			return priceErr
		}
		commissionPercent, commErr := settingDecimal(c, settingRepo, domain.SettingCommission, DefaultCommission)
		if commErr != nil {
			return commErr
		}

		commission = amount.Mul(price).Mul(commissionPercent.Div(percentBase))

		_, createErr := transRepo.Create(c, repoargs.TransactionCreate{
			UserID:     userID,
			Type:       domain.TransactionTypeSell,
			Amount:     amount,
			Price:      price,
			Commission: commission,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return decimal.Decimal{}, fmt.Errorf("selling: %w", txErr)
	}
	return commission, nil
}

// AddClicks начисляет юзеру "накликанную" крипту. Единственный путь дохода
// помимо одобренных покупок и выигрышей.
func (t *TradingService) AddClicks(ctx context.Context, userID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if err := t.balanceRepo.Credit(ctx, userID, amount); err != nil {
		return fmt.Errorf("adding clicks: %w", err)
	}
	return nil
}

// RecentTransactions публичная лента последних сделок.
func (t *TradingService) RecentTransactions(ctx context.Context) ([]repoargs.TransactionWithUser, error) {
	transactions, err := t.transactionRepo.ListRecent(ctx, recentTransactionsLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}
