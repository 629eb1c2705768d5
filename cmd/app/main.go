package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodies/cmd"
	"foodies/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync(zapLog)

	if err := run(cfg, zapLog); err != nil {
		zapLog.Error("service stopped with error", zap.Error(err))
		logger.Sync(zapLog)
		log.Fatal(err)
	}
}

func run(cfg cmd.Config, zapLog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(cfg, zapLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			zapLog.Warn("shutdown", zap.Error(err))
		}
	}()

	e, err := app.Router()
	if err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLog.Info("http server started", zap.String("port", cfg.HTTPPort))
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zapLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
