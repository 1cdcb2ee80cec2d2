package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "USD", cfg.Server.Currency)
	assert.Equal(t, 60, cfg.Server.StatsCacheSeconds)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "backoffice", cfg.Database.Name)
	assert.Equal(t, "exports", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
}
