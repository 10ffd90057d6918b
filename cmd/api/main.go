package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-tracker/config"
	_ "todo-tracker/docs" // Swagger docs
	"todo-tracker/internal/httpserver"
	"todo-tracker/internal/middleware"
	"todo-tracker/internal/naturallanguage"
	"todo-tracker/internal/todo/repository"
	memoryRepo "todo-tracker/internal/todo/repository/memory"
	sqliteRepo "todo-tracker/internal/todo/repository/sqlite"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/sqlite"
)

// @title       Todo Tracker API
// @description Personal task tracker with natural-language task capture.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, todoRepo, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		return
	}
	if db != nil {
		defer db.Close()
	}
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 4. Natural-language extractor
	resolver, err := naturallanguage.NewResolver(cfg.NaturalLanguage.Engine, cfg.NaturalLanguage.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize date engine: %v", err)
		return
	}
	extractor := naturallanguage.New(resolver)
	logger.Infof(ctx, "Date engine: %s (%s)", cfg.NaturalLanguage.Engine, cfg.NaturalLanguage.Timezone)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             db,
		TodoRepository: todoRepo,
		Extractor:      extractor,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		}),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openStorage returns the todo repository for the configured driver. The
// *sql.DB is nil for the in-memory driver.
func openStorage(ctx context.Context, cfg config.StorageConfig, l log.Logger) (*sql.DB, repository.Repository, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqliteRepo.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, sqliteRepo.New(db, l), nil
	default:
		return nil, memoryRepo.New(l), nil
	}
}
