package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-exchange/internal/repository/repoargs"

	"github.com/fsdevblog/groph-exchange/pkg/uow"

	"github.com/fsdevblog/groph-exchange/internal/config"
	"github.com/fsdevblog/groph-exchange/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-exchange/internal/service"
	"github.com/fsdevblog/groph-exchange/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:          a.Logger,
		UserService:     services.UserService,
		SettingsService: services.SettingsService,
		TradingService:  services.TradingService,
		PurchaseService: services.PurchaseService,
		PromoService:    services.PromotionService,
		LotteryService:  services.LotteryService,
		AdminPassword:   []byte(a.Config.AdminPassword),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.BalanceRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBalanceRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.SettingRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewSettingRepository(dbtx)
		},
		repoargs.PromotionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPromotionRepository(dbtx)
		},
		repoargs.PurchaseRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPurchaseRepository(dbtx)
		},
		repoargs.LotteryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLotteryRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
