package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/logger"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestNewRedisConnects(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.RedisConfig{Endpoint: mr.Addr()}

	client, err := NewRedis(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, RedisHealthCheck(context.Background(), client))
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedis(context.Background(), &config.RedisConfig{Endpoint: addr}, logger.NewNop())
	assert.Error(t, err)
}

func TestRedisHealthCheckNil(t *testing.T) {
	assert.Error(t, RedisHealthCheck(context.Background(), nil))
}

func TestPublishLedger(t *testing.T) {
	mr, client := newTestRedis(t)
	ledger := NewPublishLedger(client, time.Minute)
	ctx := context.Background()

	published, err := ledger.ArePublished(ctx, []string{"evt_1", "evt_2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"evt_1": false, "evt_2": false}, published)

	require.NoError(t, ledger.MarkPublished(ctx, []string{"evt_1"}))
	assert.True(t, mr.Exists(PublishedKeyPrefix+"evt_1"))
	assert.Equal(t, time.Minute, mr.TTL(PublishedKeyPrefix+"evt_1"))

	published, err = ledger.ArePublished(ctx, []string{"evt_1", "evt_2"})
	require.NoError(t, err)
	assert.True(t, published["evt_1"])
	assert.False(t, published["evt_2"])

	mr.FastForward(2 * time.Minute)
	published, err = ledger.ArePublished(ctx, []string{"evt_1"})
	require.NoError(t, err)
	assert.False(t, published["evt_1"])
}

func TestPublishLedgerEmpty(t *testing.T) {
	_, client := newTestRedis(t)
	ledger := NewPublishLedger(client, time.Minute)

	require.NoError(t, ledger.MarkPublished(context.Background(), nil))
	published, err := ledger.ArePublished(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, published)
}

func TestRedisSummaryCache(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisSummaryCache(client, time.Hour)
	ctx := context.Background()

	_, ok, err := cache.GetSummary(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	from, to := int64(1000), int64(2000)
	want := domain.KPISummary{
		UniqueUsers:    3,
		UniqueSessions: 4,
		ConversionRate: 1.0 / 3,
		TotalRevenue:   150,
		DateFrom:       &from,
		DateTo:         &to,
	}
	require.NoError(t, cache.SetSummary(ctx, "abc", want))

	got, ok, err := cache.GetSummary(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, *got)
	assert.Equal(t, time.Hour, mr.TTL(SummaryKeyPrefix+"abc"))
}

func TestRedisSummaryCacheCorrupt(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisSummaryCache(client, 0)
	require.NoError(t, mr.Set(SummaryKeyPrefix+"bad", "{not json"))

	_, ok, err := cache.GetSummary(context.Background(), "bad")
	assert.Error(t, err)
	assert.False(t, ok)
}
