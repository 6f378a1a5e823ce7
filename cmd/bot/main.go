package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"max.ks1230/currconv/internal/app"
	"max.ks1230/currconv/internal/clients/tg"
	"max.ks1230/currconv/internal/config"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	converter, err := app.New(ctx, conf)
	if err != nil {
		logger.Fatal("failed to init converter", zap.Error(err))
	}
	defer converter.Close()

	client, err := tg.New(conf.Telegram(), conf.App().LastUpdatedLayout())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	logger.Info("Bot init - end")

	converter.Start(ctx)
	client.ListenUpdates(ctx, converter.Service)
}
