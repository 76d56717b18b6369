package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/padmeamd/uroom/internal/infra/setup"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := configFromEnv(envOf(nil))

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, setup.DriverMemory, cfg.StorageDriver)
	assert.Equal(t, setup.DriverMemory, cfg.DB.Driver)
	assert.Equal(t, "uroom:", cfg.KeyPrefix)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 100.0, cfg.SwipeThreshold)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, time.Second, cfg.RateLimitWindow)
	assert.Empty(t, cfg.RedisAddr)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	cfg := configFromEnv(envOf(map[string]string{
		"SERVER_PORT":         "9000",
		"LOG_LEVEL":           "debug",
		"STORAGE_DRIVER":      "Postgres",
		"DB_HOST":             "db",
		"REDIS_ADDR":          "redis:6379",
		"REDIS_DB":            "2",
		"SESSION_TTL_MINUTES": "30",
		"SWIPE_THRESHOLD":     "80.5",
		"RATE_LIMIT_MAX":      "5",
	}))

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, setup.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 80.5, cfg.SwipeThreshold)
	assert.Equal(t, 5, cfg.RateLimitMax)
}

func TestConfigFromEnv_InvalidValuesFallBack(t *testing.T) {
	cfg := configFromEnv(envOf(map[string]string{
		"LOG_LEVEL":           "loud",
		"STORAGE_DRIVER":      "sqlite",
		"REDIS_DB":            "-1",
		"SESSION_TTL_MINUTES": "0",
		"SWIPE_THRESHOLD":     "-3",
		"RATE_LIMIT_MAX":      "many",
	}))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, setup.DriverMemory, cfg.StorageDriver)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 100.0, cfg.SwipeThreshold)
	assert.Equal(t, 100, cfg.RateLimitMax)
}
