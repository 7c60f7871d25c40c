package config_test

import (
	"testing"

	"subscription-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, "https://api.stripe.com", cfg.Gateway.BaseURL)
		assert.Equal(t, "sync-logs", cfg.Storage.Bucket)
		assert.Equal(t, 10, cfg.Sync.ChunkSize)
		assert.Equal(t, 60, cfg.Sync.SessionTTLMinutes)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Environment Override", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SYNC_CHUNK_SIZE", "25")

		cfg, err := config.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 25, cfg.Sync.ChunkSize)
	})
}
