package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/pairs-go/internal/adapters/animation"
	httpadapter "github.com/randomtoy/pairs-go/internal/adapters/http"
	"github.com/randomtoy/pairs-go/internal/adapters/sessions"
	"github.com/randomtoy/pairs-go/internal/app"
	"github.com/randomtoy/pairs-go/internal/config"
	"github.com/randomtoy/pairs-go/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	hub := animation.NewHub(cfg.WSWriteTimeout, logger)
	driver := animation.Fanout{hub, animation.NewLogDriver(logger)}

	svc := app.NewGameService(
		sessions.NewMemoryStore(),
		driver,
		domain.SystemRNG{},
		app.Defaults{SlotCount: cfg.DefaultSlotCount, Deferred: cfg.DeferredResolution},
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, hub, logger)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "default_slots", cfg.DefaultSlotCount)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
