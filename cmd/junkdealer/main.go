package main

import (
	"os"

	"junkdealer/internal/config"
	"junkdealer/internal/http/handlers"
	applog "junkdealer/internal/log"
	"junkdealer/internal/repos"
	"junkdealer/internal/storage"
	"junkdealer/internal/storage/memstore"
)

func main() {
	if err := run(); err != nil {
		applog.Error(nil, "server.exit", err, nil)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := applog.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	cfg.Log()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var store storage.Store
	if cfg.StoreBackend == config.BackendMemory {
		store = memstore.New()
		applog.Info(nil, "store.memory", nil)
	} else {
		db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		store = repos.NewStore(db)
	}

	app := handlers.NewApp(handlers.NewDeps(store), handlers.Limits{})
	return app.Listen(":" + cfg.Port)
}
