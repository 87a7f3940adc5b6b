package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"budget-app-go/internal/config"
	"budget-app-go/internal/db"
	budgetsdomain "budget-app-go/internal/domain/budgets"
	expensesdomain "budget-app-go/internal/domain/expenses"
	reportsdomain "budget-app-go/internal/domain/reports"
	"budget-app-go/internal/repository/inmemory"
	budgetsrepo "budget-app-go/internal/repository/postgres/budgets"
	expensesrepo "budget-app-go/internal/repository/postgres/expenses"
	sqliterepo "budget-app-go/internal/repository/sqlite"
	"budget-app-go/internal/transport/httpserver"
	"budget-app-go/internal/transport/httpserver/handler"
	"budget-app-go/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

const seedTimeout = 10 * time.Second

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	closeStore func() error
}

type storage struct {
	expenses expensesdomain.Repository
	budgets  budgetsdomain.Repository
	close    func() error
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log = logger.NewFromConfig(cfg.Log.Level, cfg.Log.Format, cfg.Env)

	log.Info("app: initializing storage", "backend", cfg.Storage.Backend)
	store, err := newStorage(cfg, log)
	if err != nil {
		return nil, err
	}

	expensesService := expensesdomain.NewService(store.expenses)
	budgetsService := budgetsdomain.NewService(store.budgets)
	reportsService := reportsdomain.NewService(expensesService, budgetsService)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	created, err := expensesService.SeedDefaultCategories(ctx)
	if err != nil {
		store.close()
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	if created > 0 {
		log.Info("app: seeded default categories", "count", created)
	}

	log.Info("app: initializing router")
	handlers := handler.New(expensesService, budgetsService, reportsService, log.With("component", "http"))
	router := httpserver.NewRouter(cfg, handlers, prometheus.NewRegistry(), log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: srv,
		closeStore: store.close,
	}, nil
}

func newStorage(cfg config.Config, log logger.Logger) (storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		gormDB, err := db.NewPostgres(cfg.DB, log)
		if err != nil {
			return storage{}, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return storage{}, fmt.Errorf("db handle: %w", err)
		}
		return storage{
			expenses: expensesrepo.NewPostgres(gormDB),
			budgets:  budgetsrepo.NewPostgres(gormDB),
			close:    sqlDB.Close,
		}, nil
	case config.BackendSQLite:
		sqlDB, err := db.NewSQLite(cfg.Storage.SQLitePath, log)
		if err != nil {
			return storage{}, err
		}
		repo := sqliterepo.New(sqlDB)
		return storage{expenses: repo, budgets: repo, close: sqlDB.Close}, nil
	default:
		store := inmemory.New()
		return storage{expenses: store, budgets: store, close: func() error { return nil }}, nil
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Logger() logger.Logger {
	return a.log
}

func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}
