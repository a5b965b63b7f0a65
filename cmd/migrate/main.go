package main

import (
	"context"
	"log/slog"
	"os"

	"contactbook/config"
	"contactbook/internal/domain/lifecycle"
	logs "contactbook/internal/infra/log"
	"contactbook/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build migrate app", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	exitCode := 0
	if err := postgres.Migrate(context.Background(), db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("Migration completed")
	}

	if err := app.Stop(ctx); err != nil {
		logger.Error("Failed to close database", slog.Any("error", err))
	}
	cancel()
	os.Exit(exitCode)
}
