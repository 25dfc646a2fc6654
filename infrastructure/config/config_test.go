package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, 1024, cfg.EventQueueCapacity)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableCircuitBreaker)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("EVENT_QUEUE_CAPACITY", "64")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, 64, cfg.EventQueueCapacity)
	assert.False(t, cfg.EnableMetrics)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateProductionRequiresPassword(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("POSTGRES_PASSWORD", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	pg := PostgresConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "catalog",
		Password: "secret",
		Database: "catalog",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=catalog password=secret dbname=catalog sslmode=require",
		pg.DSN())
}

func writeDynamicConfig(t *testing.T, cfg *DynamicConfig) string {
	t.Helper()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "overrides.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestConfigWatcherLoadsInitialFile(t *testing.T) {
	initial := DefaultDynamicConfig()
	initial.Limits.ListingPageSize = 25
	path := writeDynamicConfig(t, initial)

	watcher, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer watcher.watcher.Close()

	assert.Equal(t, 25, watcher.GetLimits().ListingPageSize)
	assert.Equal(t, 25, watcher.ListingPageSize())
}

func TestConfigWatcherReloadNotifiesHandlers(t *testing.T) {
	path := writeDynamicConfig(t, DefaultDynamicConfig())

	watcher, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer watcher.watcher.Close()

	notified := make(chan *DynamicConfig, 1)
	watcher.OnChange(func(cfg *DynamicConfig) {
		notified <- cfg
	})

	updated := DefaultDynamicConfig()
	updated.Limits.ListingPageSize = 10
	updated.Limits.EventQueueCapacity = 2048
	data, err := json.Marshal(updated)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	// Drive the reload directly instead of waiting on fsnotify delivery.
	watcher.handleConfigChange()

	select {
	case cfg := <-notified:
		assert.Equal(t, 10, cfg.Limits.ListingPageSize)
		assert.Equal(t, 2048, cfg.Limits.EventQueueCapacity)
	case <-time.After(2 * time.Second):
		t.Fatal("change handler was not notified")
	}
	assert.Equal(t, 10, watcher.ListingPageSize())
}

func TestConfigWatcherReloadKeepsCurrentOnBadLimits(t *testing.T) {
	initial := DefaultDynamicConfig()
	initial.Limits.ListingPageSize = 25
	path := writeDynamicConfig(t, initial)

	watcher, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer watcher.watcher.Close()

	bad := DefaultDynamicConfig()
	bad.Limits.ListingPageSize = 0
	data, err := json.Marshal(bad)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	watcher.handleConfigChange()

	assert.Equal(t, 25, watcher.ListingPageSize())
}

func TestConfigWatcherSaveRoundTrip(t *testing.T) {
	path := writeDynamicConfig(t, DefaultDynamicConfig())

	watcher, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer watcher.watcher.Close()

	updated := DefaultDynamicConfig()
	updated.Limits.EventQueueCapacity = 2048
	require.NoError(t, watcher.SaveConfig(updated))

	reloaded, err := loadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, reloaded.Limits.EventQueueCapacity)
	assert.False(t, reloaded.Metadata.UpdatedAt.IsZero())
}

func TestValidateConfigRejectsBadLimits(t *testing.T) {
	path := writeDynamicConfig(t, DefaultDynamicConfig())

	watcher, err := NewConfigWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer watcher.watcher.Close()

	bad := DefaultDynamicConfig()
	bad.Limits.ListingPageSize = 0
	assert.Error(t, watcher.validateConfig(bad))

	bad = DefaultDynamicConfig()
	bad.Limits.EventQueueCapacity = -1
	assert.Error(t, watcher.validateConfig(bad))
}
