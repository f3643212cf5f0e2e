package service

import (
	"fmt"

	"github.com/fsdevblog/groph-exchange/pkg/uow"
)

type AppServices struct {
	UserService      *UserService
	SettingsService  *SettingsService
	TradingService   *TradingService
	PurchaseService  *PurchaseService
	PromotionService *PromotionService
	LotteryService   *LotteryService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	userService, userErr := NewUserService(unitOfWork)
	if userErr != nil {
		return nil, fmt.Errorf("service factory: %s", userErr.Error())
	}

	settingsService, settingsErr := NewSettingsService(unitOfWork)
	if settingsErr != nil {
		return nil, fmt.Errorf("service factory: %s", settingsErr.Error())
	}

	tradingService, tradingErr := NewTradingService(unitOfWork)
	if tradingErr != nil {
		return nil, fmt.Errorf("service factory: %s", tradingErr.Error())
	}

	purchaseService, purchaseErr := NewPurchaseService(unitOfWork)
	if purchaseErr != nil {
		return nil, fmt.Errorf("service factory: %s", purchaseErr.Error())
	}

	promotionService, promotionErr := NewPromotionService(unitOfWork)
	if promotionErr != nil {
		return nil, fmt.Errorf("service factory: %s", promotionErr.Error())
	}

	lotteryService, lotteryErr := NewLotteryService(unitOfWork)
	if lotteryErr != nil {
		return nil, fmt.Errorf("service factory: %s", lotteryErr.Error())
	}

	return &AppServices{
		UserService:      userService,
		SettingsService:  settingsService,
		TradingService:   tradingService,
		PurchaseService:  purchaseService,
		PromotionService: promotionService,
		LotteryService:   lotteryService,
	}, nil
}
