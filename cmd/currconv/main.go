package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"max.ks1230/currconv/internal/logger"
)

func main() {
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Debug("command failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}
