package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Port       string
	LogLevel   string
	ClickHouse ClickHouseConfig
	Redis      RedisConfig
	Generator  GeneratorConfig
	GA4        GA4Config
}

// ClickHouseConfig holds ClickHouse connection settings
type ClickHouseConfig struct {
	Enabled                bool
	Host                   string
	Port                   string
	Database               string
	User                   string
	Password               string
	DSN                    string
	AsyncInsertEnabled     bool  // whether to use async inserts
	AsyncInsertWait        int   // wait_for_async_insert (0 or 1)
	AsyncInsertMaxDataSize int64 // async_insert_max_data_size in bytes
	AsyncInsertBusyTimeout int   // async_insert_busy_timeout_ms in milliseconds
	BufferChannelCapacity  int   // capacity of the publish buffer channel
	BatchSize              int   // number of events to batch before flushing
	FlushIntervalSeconds   int   // time interval in seconds to flush batches
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	Endpoint string
	// CacheDurationMS is how long KPI summaries and publish marks are kept.
	CacheDurationMS int64
}

// GeneratorConfig bounds generation requests and sets their defaults.
type GeneratorConfig struct {
	DefaultSeed  int64
	DefaultDays  int
	DefaultCount int
	MinSeed      int64
	MaxSeed      int64
	MaxDays      int
	MaxCount     int
	TrendDays    int // window of the dashboard trend series
	TopCountries int // entries kept in the dashboard country breakdown
}

// GA4Config configures the mock GA4 source.
type GA4Config struct {
	PropertyID  string
	ClientEmail string
	ProjectID   string
	LatencyMS   int
}

// Load reads configuration from defaults, an optional config file and
// environment variables, in increasing precedence. Environment keys are the
// upper-cased setting names, e.g. CLICKHOUSE_HOST or EVENT_BATCH_SIZE.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/eventlab")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("log_level", "info")

	v.SetDefault("clickhouse_enabled", false)
	v.SetDefault("clickhouse_host", "127.0.0.1")
	v.SetDefault("clickhouse_port", "9000")
	v.SetDefault("clickhouse_database", "default")
	v.SetDefault("clickhouse_user", "app")
	v.SetDefault("clickhouse_password", "clickhouse_app_password")
	v.SetDefault("clickhouse_dsn", "")
	v.SetDefault("clickhouse_async_insert_enabled", true)
	v.SetDefault("clickhouse_async_insert_wait", 1)
	v.SetDefault("clickhouse_async_insert_max_data_size", 10485760)
	v.SetDefault("clickhouse_async_insert_busy_timeout", 200)
	v.SetDefault("event_buffer_capacity", 50000)
	v.SetDefault("event_batch_size", 5000)
	v.SetDefault("event_flush_interval_seconds", 1)

	v.SetDefault("redis_enabled", false)
	v.SetDefault("redis_host", "127.0.0.1")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_endpoint", "")
	v.SetDefault("redis_cache_duration_ms", 60*60*1000)

	v.SetDefault("generator_default_seed", 42)
	v.SetDefault("generator_default_days", 30)
	v.SetDefault("generator_default_count", 1000)
	v.SetDefault("generator_min_seed", 1)
	v.SetDefault("generator_max_seed", 999999)
	v.SetDefault("generator_max_days", 365)
	v.SetDefault("generator_max_count", 1000000)
	v.SetDefault("generator_trend_days", 14)
	v.SetDefault("generator_top_countries", 5)

	v.SetDefault("ga4_property_id", "properties/123456789")
	v.SetDefault("ga4_client_email", "mock-reporter@eventlab-demo.iam.gserviceaccount.com")
	v.SetDefault("ga4_project_id", "eventlab-demo")
	v.SetDefault("ga4_latency_ms", 0)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log_level"),
		ClickHouse: ClickHouseConfig{
			Enabled:                v.GetBool("clickhouse_enabled"),
			Host:                   v.GetString("clickhouse_host"),
			Port:                   v.GetString("clickhouse_port"),
			Database:               v.GetString("clickhouse_database"),
			User:                   v.GetString("clickhouse_user"),
			Password:               v.GetString("clickhouse_password"),
			DSN:                    v.GetString("clickhouse_dsn"),
			AsyncInsertEnabled:     v.GetBool("clickhouse_async_insert_enabled"),
			AsyncInsertWait:        v.GetInt("clickhouse_async_insert_wait"),
			AsyncInsertMaxDataSize: v.GetInt64("clickhouse_async_insert_max_data_size"),
			AsyncInsertBusyTimeout: v.GetInt("clickhouse_async_insert_busy_timeout"),
			BufferChannelCapacity:  v.GetInt("event_buffer_capacity"),
			BatchSize:              v.GetInt("event_batch_size"),
			FlushIntervalSeconds:   v.GetInt("event_flush_interval_seconds"),
		},
		Redis: RedisConfig{
			Enabled:         v.GetBool("redis_enabled"),
			Host:            v.GetString("redis_host"),
			Port:            v.GetString("redis_port"),
			Password:        v.GetString("redis_password"),
			Endpoint:        v.GetString("redis_endpoint"),
			CacheDurationMS: v.GetInt64("redis_cache_duration_ms"),
		},
		Generator: GeneratorConfig{
			DefaultSeed:  v.GetInt64("generator_default_seed"),
			DefaultDays:  v.GetInt("generator_default_days"),
			DefaultCount: v.GetInt("generator_default_count"),
			MinSeed:      v.GetInt64("generator_min_seed"),
			MaxSeed:      v.GetInt64("generator_max_seed"),
			MaxDays:      v.GetInt("generator_max_days"),
			MaxCount:     v.GetInt("generator_max_count"),
			TrendDays:    v.GetInt("generator_trend_days"),
			TopCountries: v.GetInt("generator_top_countries"),
		},
		GA4: GA4Config{
			PropertyID:  v.GetString("ga4_property_id"),
			ClientEmail: v.GetString("ga4_client_email"),
			ProjectID:   v.GetString("ga4_project_id"),
			LatencyMS:   v.GetInt("ga4_latency_ms"),
		},
	}

	if cfg.ClickHouse.BatchSize <= 0 || cfg.ClickHouse.BufferChannelCapacity <= 0 || cfg.ClickHouse.FlushIntervalSeconds <= 0 {
		return nil, fmt.Errorf("event buffer capacity, batch size and flush interval must be positive")
	}
	if cfg.Generator.MaxDays < 1 || cfg.Generator.MaxCount < 0 || cfg.Generator.MinSeed > cfg.Generator.MaxSeed {
		return nil, fmt.Errorf("generator bounds are inconsistent")
	}
	if cfg.Generator.TrendDays < 1 {
		return nil, fmt.Errorf("generator trend days must be >= 1")
	}
	return cfg, nil
}

// GA4Latency is the simulated GA4 request latency.
func (g GA4Config) GA4Latency() time.Duration {
	return time.Duration(g.LatencyMS) * time.Millisecond
}

func (c *ClickHouseConfig) GetClickHouseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}

	dsn := "clickhouse://"
	if c.User != "" {
		dsn += c.User
		if c.Password != "" {
			dsn += ":" + c.Password
		}
		dsn += "@"
	}
	dsn += c.Host + ":" + c.Port + "/" + c.Database

	if c.AsyncInsertEnabled {
		// Async insert settings apply to every query on the connection.
		dsn += fmt.Sprintf("?wait_for_async_insert=%d&async_insert_max_data_size=%d&async_insert_busy_timeout_ms=%d",
			c.AsyncInsertWait, c.AsyncInsertMaxDataSize, c.AsyncInsertBusyTimeout)
	}
	return dsn
}

func (r *RedisConfig) GetRedisAddr() string {
	if r.Endpoint != "" {
		return r.Endpoint
	}
	return r.Host + ":" + r.Port
}

// CacheDuration is the TTL for Redis keys; zero means no expiry.
func (r *RedisConfig) CacheDuration() time.Duration {
	if r.CacheDurationMS <= 0 {
		return 0
	}
	return time.Duration(r.CacheDurationMS) * time.Millisecond
}
