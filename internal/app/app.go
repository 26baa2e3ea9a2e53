// Package app собирает приложение: хранилище, миграции, кеш,
// бизнес-сервисы, маршруты и HTTP-сервер с graceful shutdown.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/CrisDa7/activeGym/internal/cache"
	"github.com/CrisDa7/activeGym/internal/config"
	"github.com/CrisDa7/activeGym/internal/migrations"
	expenseservice "github.com/CrisDa7/activeGym/internal/services/expense"
	memberservice "github.com/CrisDa7/activeGym/internal/services/member"
	saleservice "github.com/CrisDa7/activeGym/internal/services/sale"
	statsservice "github.com/CrisDa7/activeGym/internal/services/stats"
	visitorservice "github.com/CrisDa7/activeGym/internal/services/visitor"
	"github.com/CrisDa7/activeGym/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New инициализирует все зависимости приложения.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	memberService := memberservice.New(db, cacheRedis, logger)
	visitorService := visitorservice.New(db, logger)
	saleService := saleservice.New(db, logger)
	expenseService := expenseservice.New(db, logger)
	statsService := statsservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, memberService, visitorService, saleService, expenseService, statsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
