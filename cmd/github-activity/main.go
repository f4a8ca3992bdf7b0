package main

import (
	"context"
	"fmt"
	"githubActivity/internal/cli"
	"githubActivity/internal/config"
	"githubActivity/internal/events"
	"githubActivity/internal/logger"
	"githubActivity/internal/store"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadFrom(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initialising logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []events.Option
	if cfg.History.Path != "" {
		db, err := store.Open(cfg.History.Path)
		if err != nil {
			logger.Lg.Error("history open", zap.String("path", cfg.History.Path), zap.Error(err))
		} else {
			defer db.Close()
			opts = append(opts, events.WithRecorder(store.NewHistory(db)))
		}
	}
	if cfg.Cache.RedisAddr != "" {
		rdb, err := store.OpenRedis(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			logger.Lg.Error("redis connect", zap.String("addr", cfg.Cache.RedisAddr), zap.Error(err))
		} else {
			defer rdb.Close()
			ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
			opts = append(opts, events.WithCache(events.NewRedisCache(rdb), ttl))
		}
	}

	svc := events.NewService(events.NewClient(cfg.APIURL), opts...)
	if err := cli.NewREPL(os.Stdin, os.Stdout, svc).Run(ctx); err != nil {
		logger.Lg.Error("read input", zap.Error(err))
	}
}
