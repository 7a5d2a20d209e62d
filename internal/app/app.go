// Package app собирает все слои приложения: хранилище, кеш, брокер,
// бизнес-сервисы и HTTP-сервер.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/gym-helper/internal/cache"
	"github.com/magabrotheeeer/gym-helper/internal/config"
	"github.com/magabrotheeeer/gym-helper/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-helper/internal/migrations"
	"github.com/magabrotheeeer/gym-helper/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/gym-helper/internal/services/auth"
	clientservice "github.com/magabrotheeeer/gym-helper/internal/services/client"
	membershipservice "github.com/magabrotheeeer/gym-helper/internal/services/membership"
	subscriptionservice "github.com/magabrotheeeer/gym-helper/internal/services/subscription"
	"github.com/magabrotheeeer/gym-helper/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и внешние подключения приложения.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	cache      *cache.Cache
	rabbitConn *amqp.Connection
}

// New инициализирует все зависимости приложения и собирает маршрутизатор.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.DatabaseURL, cfg.MaxDBConnections)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = db.CheckDatabaseReady(ctx); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	rabbitCh, err := rabbitmq.SetupChannel(rabbitConn, rabbitmq.GetEventQueues())
	if err != nil {
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(rabbitCh)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.AccessTTL, cfg.RefreshTTL)

	authService := authservice.New(db, jwtMaker)
	clientService := clientservice.New(db, logger)
	membershipService := membershipservice.New(db, logger)
	subscriptionService := subscriptionservice.New(db, cacheRedis, publisher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger,
		authService, clientService, membershipService, subscriptionService, db)

	srv := &http.Server{
		Addr:         cfg.APIBind,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		cache:      cacheRedis,
		rabbitConn: rabbitConn,
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
		_ = a.rabbitConn.Close()
		_ = a.db.DB.Close()
		return err
	}
}
