// seedcoa seeds the default transportation chart of accounts for one
// account class. The batch is transactional: a failed insert leaves the
// chart untouched.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Horpyshow/transportation-erp/internal/accounting/accounts"
	acctshared "github.com/Horpyshow/transportation-erp/internal/accounting/shared"
	"github.com/Horpyshow/transportation-erp/internal/app"
	"github.com/Horpyshow/transportation-erp/internal/platform/db"
	"github.com/Horpyshow/transportation-erp/internal/shared"
)

func main() {
	classID := flag.Int64("class", 0, "account class id to seed the default chart under")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	service := accounts.NewService(accounts.NewRepository(pool), shared.NewAuditLogger(pool))

	if err := service.InitializeDefaults(ctx, *classID); err != nil {
		switch {
		case errors.Is(err, acctshared.ErrInvalidInput):
			logger.Error("a positive -class id is required")
		case errors.Is(err, acctshared.ErrSeedAborted):
			logger.Error("seed rolled back", slog.Any("error", err))
		default:
			logger.Error("seed failed", slog.Any("error", err))
		}
		os.Exit(1)
	}

	logger.Info("default chart seeded",
		slog.Int64("account_class_id", *classID),
		slog.Int("accounts", len(accounts.DefaultChart)))
}
