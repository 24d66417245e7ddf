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

	"golang.org/x/sync/errgroup"

	"watchparty/internal/config"
	"watchparty/internal/handlers"
	"watchparty/internal/hub"
	"watchparty/internal/router"
	"watchparty/internal/service"
	"watchparty/internal/storage/sqlite"
	"watchparty/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logging.Setup()
	cfg := config.Load()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	roomHub := hub.New()

	h := router.Handlers{
		Rooms:    handlers.NewRoomHandler(service.NewRoomService(store)),
		Expenses: handlers.NewExpenseHandler(service.NewExpenseService(store)),
		Votes:    handlers.NewVoteHandler(service.NewVoteService(store)),
		WS:       handlers.NewWebSocketHandler(roomHub),
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(h, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server starting", "address", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutdown signal received, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
