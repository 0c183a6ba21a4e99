package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_BACKEND", "DB_DRIVER", "DB_DSN", "LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendSQL, cfg.StoreBackend)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "junkdealer.db", cfg.DBDSN)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", BackendMemory)
	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
}

func TestValidate(t *testing.T) {
	ok := Config{Port: "8080", StoreBackend: BackendSQL, DBDriver: "postgres", DBDSN: "postgres://x"}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.StoreBackend = "redis"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.DBDriver = "mysql"
	assert.Error(t, bad.Validate())

	// driver and dsn do not matter for the memory backend
	mem := Config{Port: "8080", StoreBackend: BackendMemory}
	assert.NoError(t, mem.Validate())
}
