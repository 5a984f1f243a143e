package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.False(t, cfg.ClickHouse.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, int64(42), cfg.Generator.DefaultSeed)
	assert.Equal(t, 1000000, cfg.Generator.MaxCount)
	assert.Equal(t, 14, cfg.Generator.TrendDays)
	assert.Equal(t, 5000, cfg.ClickHouse.BatchSize)
	assert.Equal(t, time.Hour, cfg.Redis.CacheDuration())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ENDPOINT", "cache:6380")
	t.Setenv("EVENT_BATCH_SIZE", "250")
	t.Setenv("GENERATOR_MAX_COUNT", "5000")
	t.Setenv("GA4_LATENCY_MS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6380", cfg.Redis.GetRedisAddr())
	assert.Equal(t, 250, cfg.ClickHouse.BatchSize)
	assert.Equal(t, 5000, cfg.Generator.MaxCount)
	assert.Equal(t, 25*time.Millisecond, cfg.GA4.GA4Latency())
}

func TestLoad_RejectsInconsistentBounds(t *testing.T) {
	t.Setenv("EVENT_BATCH_SIZE", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestGetClickHouseDSN(t *testing.T) {
	c := ClickHouseConfig{
		Host: "ch", Port: "9000", Database: "events", User: "app", Password: "secret",
		AsyncInsertEnabled: true, AsyncInsertWait: 1, AsyncInsertMaxDataSize: 1024, AsyncInsertBusyTimeout: 200,
	}
	assert.Equal(t,
		"clickhouse://app:secret@ch:9000/events?wait_for_async_insert=1&async_insert_max_data_size=1024&async_insert_busy_timeout_ms=200",
		c.GetClickHouseDSN())

	c.AsyncInsertEnabled = false
	assert.Equal(t, "clickhouse://app:secret@ch:9000/events", c.GetClickHouseDSN())

	c.DSN = "clickhouse://override"
	assert.Equal(t, "clickhouse://override", c.GetClickHouseDSN())
}

func TestGetRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: "6379"}
	assert.Equal(t, "localhost:6379", r.GetRedisAddr())
	assert.Zero(t, (&RedisConfig{}).CacheDuration())
}
