package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpadapter "loginsvc/internal/adapters/http"
	"loginsvc/internal/adapters/security"
	"loginsvc/internal/config"
	"loginsvc/internal/core/auth"
	"loginsvc/internal/domain"
	"loginsvc/internal/event"
	"loginsvc/internal/logger"
	"loginsvc/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	if cfg.JWTSecret == "" {
		log.Error("JWT_SECRET is mandatory for server")
		os.Exit(1)
	}

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open user store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	bus := event.New(log)
	bus.Subscribe(domain.EventLoginSucceeded, func(e any) {
		ev := e.(domain.LoginSucceeded)
		log.Info("auth: login succeeded", "user_id", ev.UserID, "email", ev.Email)
	})
	bus.Subscribe(domain.EventLoginFailed, func(e any) {
		ev := e.(domain.LoginFailed)
		log.Warn("auth: login failed", "email", ev.Email, "reason", ev.Reason)
	})

	authService := auth.NewService(
		store.Users,
		security.NewBcryptComparer(),
		security.NewJWTGenerator(cfg.JWTSecret, cfg.JWTExpiry),
		bus,
	)

	router := httpadapter.NewRouter(&httpadapter.RouterDeps{
		Login: httpadapter.NewLoginRouter(authService, log),
		Log:   log,
	})

	srv := httpadapter.NewServer(router, cfg.Address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: starting server", "address", cfg.Address, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http: server error", "error", err)
	}

	log.Info("server stopped")
}
