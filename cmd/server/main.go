package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasklist/internal/config"
	"tasklist/internal/logger"
	"tasklist/internal/manager"
	"tasklist/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	session := manager.NewSession(nil)
	if cfg.SeedDemo {
		if err := session.SeedDemo(time.Now()); err != nil {
			logger.Error(ctx, err, "seed demo tasks")
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           server.NewRouter(session),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, err, "listen")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, err, "shutdown")
	}
	logger.Info(ctx, "server stopped")
}
