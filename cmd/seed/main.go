// Command seed resets the configured database to the baseline catalogue and
// demo account.
package main

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"junkdealer/internal/config"
	applog "junkdealer/internal/log"
	"junkdealer/internal/repos"
)

func main() {
	if err := run(); err != nil {
		applog.Error(nil, "seed.failed", err, nil)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := applog.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	if cfg.StoreBackend != config.BackendSQL {
		return errors.Errorf("seeding needs STORE_BACKEND=%s, got %q", config.BackendSQL, cfg.StoreBackend)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	return repos.Seed(context.Background(), db)
}
