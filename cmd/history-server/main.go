package main

import (
	"database/sql"
	"fmt"
	"githubActivity/internal/config"
	"githubActivity/internal/handlers"
	"githubActivity/internal/logger"
	"githubActivity/internal/middleware"
	"githubActivity/internal/store"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadFrom(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "initialising logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Lg.Sync()

	if cfg.History.Path == "" {
		logger.Lg.Error("history.path is not configured")
		os.Exit(1)
	}
	db, err := store.Open(cfg.History.Path)
	if err != nil {
		logger.Lg.Error("sql open", zap.Error(err))
		os.Exit(1)
	}

	app := fiber.New()
	app.Use(middleware.RequestLogger(logger.Lg))
	h := handlers.NewHTTP(store.NewHistory(db))

	// endpoints
	app.Get("/history/:username", h.GetUserHistory)
	app.Get("/history", h.GetHistory)

	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logger.Lg.Info("Server stopped", zap.Error(err))
		}
	}()

	GracefulShutdown(app, db)
	logger.Lg.Info("Shutdown complete")
}

func GracefulShutdown(app *fiber.App, db *sql.DB) {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	<-sigchan
	logger.Lg.Info("Shutdown sig rcv")
	if err := app.Shutdown(); err != nil {
		logger.Lg.Error("Server shutdown error", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		logger.Lg.Error("db close error", zap.Error(err))
	}
}
