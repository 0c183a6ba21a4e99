package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	applog "junkdealer/internal/log"
)

const (
	BackendSQL    = "sql"
	BackendMemory = "memory"
)

type Config struct {
	Port         string
	StoreBackend string
	DBDriver     string
	DBDSN        string
	LogFile      string
	LogLevel     string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env when present, then the environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", BackendSQL),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBDSN:        getEnv("DB_DSN", "junkdealer.db"), // sqlite file in the working directory
		LogFile:      getEnv("LOG_FILE", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendSQL, BackendMemory:
	default:
		return errors.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendSQL, BackendMemory, c.StoreBackend)
	}
	if c.StoreBackend == BackendSQL {
		switch c.DBDriver {
		case "sqlite", "postgres":
		default:
			return errors.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver)
		}
		if c.DBDSN == "" {
			return errors.New("DB_DSN is required for the sql backend")
		}
	}
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	return nil
}

// Log prints the resolved configuration. The DSN is left out since it may hold credentials.
func (c Config) Log() {
	applog.Info(nil, "config.loaded", map[string]any{
		"port":          c.Port,
		"store_backend": c.StoreBackend,
		"db_driver":     c.DBDriver,
		"log_file":      c.LogFile,
		"log_level":     c.LogLevel,
	})
}
