package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/logger"
)

const (
	PublishedKeyPrefix = "eventlab:published:"
	SummaryKeyPrefix   = "eventlab:kpis:"
)

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, cfg *config.RedisConfig, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Password,
		DB:       0, // default DB
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Redis connection established", zap.String("addr", cfg.GetRedisAddr()))
	return client, nil
}

// RedisHealthCheck verifies that the Redis connection is alive
func RedisHealthCheck(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return fmt.Errorf("Redis connection is not initialized")
	}
	return client.Ping(ctx).Err()
}

// PublishLedger remembers which event IDs already reached the warehouse.
type PublishLedger struct {
	*redis.Client
	expiration time.Duration
}

func NewPublishLedger(client *redis.Client, expiration time.Duration) PublishLedger {
	return PublishLedger{client, expiration}
}

// MarkPublished records ids in a single pipeline round trip.
func (r PublishLedger) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.Pipeline()
	for _, id := range ids {
		pipe.SetEx(ctx, PublishedKeyPrefix+id, "1", r.expiration)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// ArePublished reports, per id, whether it was marked published.
func (r PublishLedger) ArePublished(ctx context.Context, ids []string) (map[string]bool, error) {
	published := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return published, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = PublishedKeyPrefix + id
	}

	results, err := r.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, result := range results {
		str, ok := result.(string)
		published[ids[i]] = ok && str == "1"
	}
	return published, nil
}

// RedisSummaryCache stores KPI summaries as JSON keyed by dataset fingerprint.
type RedisSummaryCache struct {
	*redis.Client
	expiration time.Duration
}

func NewRedisSummaryCache(client *redis.Client, expiration time.Duration) RedisSummaryCache {
	return RedisSummaryCache{client, expiration}
}

func (r RedisSummaryCache) GetSummary(ctx context.Context, fingerprint string) (*domain.KPISummary, bool, error) {
	raw, err := r.Get(ctx, SummaryKeyPrefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var summary domain.KPISummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("corrupt cached summary %s: %w", fingerprint, err)
	}
	return &summary, true, nil
}

func (r RedisSummaryCache) SetSummary(ctx context.Context, fingerprint string, summary domain.KPISummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return r.Set(ctx, SummaryKeyPrefix+fingerprint, raw, r.expiration).Err()
}
