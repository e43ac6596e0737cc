package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tradevalues/internal/application"
	"tradevalues/internal/config"
	"tradevalues/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log := logx.New(os.Stdout, cfg.App.LogLevel, cfg.App.LogFormat)
	slog.SetDefault(log)

	if err = application.Run(ctx, cfg, log); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
