package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dnimmo/bestretro/internal/catalog"
	"github.com/dnimmo/bestretro/internal/config"
	"github.com/dnimmo/bestretro/internal/logger"
	"github.com/dnimmo/bestretro/internal/middleware"
	"github.com/dnimmo/bestretro/internal/server"
	"github.com/dnimmo/bestretro/internal/user"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration from defaults, env, config file and flags.
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Errorw("server stopped with error", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infow("config",
		"listen", cfg.ListenAddr(),
		"log_level", cfg.Logging.Level,
		"shutdown_timeout", cfg.Server.ShutdownTimeout,
	)

	// 2. Build the router around the fixed user record.
	handler := server.New(log, user.NewStatic(user.Default), catalog.Dev(), middleware.NewMetrics())

	// 3. Bind and serve until SIGINT / SIGTERM. A bind failure returns here
	// and exits non-zero.
	srv := server.NewServer(cfg, handler, log)
	if err := srv.Run(ctx); err != nil {
		return err
	}

	log.Infow("server stopped")
	return nil
}
