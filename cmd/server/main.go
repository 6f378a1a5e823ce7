package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/api"
	"max.ks1230/currconv/internal/app"
	"max.ks1230/currconv/internal/config"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Server init - start")

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

	srv := &http.Server{
		Addr:              conf.Server().Addr(),
		Handler:           api.NewRouter(api.NewHandler(converter.Service)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server init - end", zap.String("addr", srv.Addr))

	converter.Start(ctx)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
