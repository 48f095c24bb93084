package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"banking-backoffice/internal/banking"
	"banking-backoffice/internal/config"
	"banking-backoffice/internal/database"
	"banking-backoffice/internal/events"
	httpserver "banking-backoffice/internal/http"
	"banking-backoffice/internal/logging"
	"banking-backoffice/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Connect(cfg.DB, logger)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	uow := store.NewUnitOfWork(db)
	tokens := banking.NewTokenGenerator(cfg.MaxTokenAttempts)
	sessions := banking.NewSessionIssuer(cfg.JWT)

	var publisher banking.EventPublisher
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		publisher = events.NewPublisher(client, cfg.Redis.Stream)
		logger.Info("publishing transfer events", "addr", cfg.Redis.Addr, "stream", cfg.Redis.Stream)
	}

	r := httpserver.NewServer(cfg, httpserver.Deps{
		Auth:      banking.NewAuthService(uow.Stores(), sessions, logger),
		Registrar: banking.NewRegistrationService(uow, tokens, cfg.Account, logger),
		Transfers: banking.NewTransferService(uow, tokens, publisher, logger),
		Ledger:    banking.NewLedgerService(uow.Stores(), logger),
		Accounts:  banking.NewAccountService(uow.Stores(), logger),
		Sessions:  sessions,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
