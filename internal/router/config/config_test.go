package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senyabanana/capital-schemes/internal/router/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, config.StoragePostgres, cfg.Storage)
	assert.Equal(t, "Europe/London", cfg.Timezone)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.ReportingDemoWindow)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "STORAGE=memory\nLOG_LEVEL=debug\nREQUEST_TIMEOUT=10s\nREPORTING_DEMO_WINDOW=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := config.LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.Storage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.ReportingDemoWindow)
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("SERVER_ADDRESS=localhost:9000\n"), 0o600))
	t.Setenv("SERVER_ADDRESS", "localhost:9100")

	cfg, err := config.LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "localhost:9100", cfg.ServerAddress)
}

func TestLoadConfigRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "redis")

	_, err := config.LoadConfig(t.TempDir())

	assert.Error(t, err)
}
