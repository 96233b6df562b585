package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.scryfall.com", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 100*time.Millisecond, c.RequestInterval)
	assert.Equal(t, "sqlite", c.StorageDriver)
	assert.Equal(t, "deckkeeper.db", c.StoragePath)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 500*time.Millisecond, c.AuthDelay)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.yaml", "storage_driver: badger\nstorage_path: /tmp/from-file\n")
	os.Args = []string{"testbin", "-c", path, "-d", "/tmp/from-flag"}

	cfg := LoadConfig()
	assert.Equal(t, "badger", cfg.StorageDriver)
	assert.Equal(t, "/tmp/from-flag", cfg.StoragePath)
}
