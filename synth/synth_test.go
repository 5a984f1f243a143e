package synth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kucukaslan/eventlab/domain"
)

var fixedNow = time.Date(2025, 11, 22, 12, 0, 0, 0, time.UTC)

func newFixed() *Synthesizer {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func TestGenerate_Seed42Scenario(t *testing.T) {
	s := newFixed()
	ctx := context.Background()

	first, err := s.Generate(ctx, 42, 30, 5)
	require.NoError(t, err)
	require.Len(t, first, 5)

	now := fixedNow.UnixMilli()
	for i, e := range first {
		assert.GreaterOrEqual(t, e.Timestamp, now-30*dayMs)
		assert.LessOrEqual(t, e.Timestamp, now)
		if i > 0 {
			assert.GreaterOrEqual(t, first[i-1].Timestamp, e.Timestamp, "not sorted newest first")
		}
	}

	again, err := s.Generate(ctx, 42, 30, 5)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

// The exact output for fixed inputs. Any change to the draw order, the
// reference tables or the revenue formula shows up here.
func TestGenerateAt_KnownOutput(t *testing.T) {
	now := fixedNow.UnixMilli()
	s := New()

	got, err := s.GenerateAt(context.Background(), 42, 30, 5, now)
	require.NoError(t, err)
	assert.Equal(t, []domain.Event{
		{ID: "evt_1_1762840138142", UserID: "u_4998", SessionID: "s_52923", Timestamp: 1762840138142, EventType: domain.EventPageView, URL: "/docs", Device: domain.DeviceTablet, Country: "Germany"},
		{ID: "evt_0_1762778860924", UserID: "u_13394", SessionID: "s_10488", Timestamp: 1762778860924, EventType: domain.EventClick, URL: "/contact", Device: domain.DeviceMobile, Country: "Germany"},
		{ID: "evt_4_1762595429891", UserID: "u_16853", SessionID: "s_29264", Timestamp: 1762595429891, EventType: domain.EventPageView, URL: "/home", Device: domain.DeviceTablet, Country: "Germany"},
		{ID: "evt_2_1761732081947", UserID: "u_12212", SessionID: "s_230", Timestamp: 1761732081947, EventType: domain.EventPageView, URL: "/blog", Device: domain.DeviceMobile, Country: "Spain"},
		{ID: "evt_3_1761353534418", UserID: "u_5339", SessionID: "s_3706", Timestamp: 1761353534418, EventType: domain.EventPageView, URL: "/blog", Device: domain.DeviceDesktop, Country: "Mexico"},
	}, got)

	// A purchase consumes the revenue draw before the next event starts.
	got, err = s.GenerateAt(context.Background(), 1, 7, 3, now)
	require.NoError(t, err)
	assert.Equal(t, []domain.Event{
		{ID: "evt_1_1763643905451", UserID: "u_9105", SessionID: "s_29327", Timestamp: 1763643905451, EventType: domain.EventPurchase, URL: "/contact", Device: domain.DeviceDesktop, Country: "France", Revenue: domain.Float(131)},
		{ID: "evt_0_1763587254319", UserID: "u_19621", SessionID: "s_58102", Timestamp: 1763587254319, EventType: domain.EventPageView, URL: "/home", Device: domain.DeviceDesktop, Country: "Brazil"},
		{ID: "evt_2_1763301437448", UserID: "u_7892", SessionID: "s_46026", Timestamp: 1763301437448, EventType: domain.EventPageView, URL: "/contact", Device: domain.DeviceDesktop, Country: "Canada"},
	}, got)
}

func TestGenerate_IndependentSynthesizersAgree(t *testing.T) {
	a, err := newFixed().Generate(context.Background(), 1234, 14, 2500)
	require.NoError(t, err)
	b, err := newFixed().Generate(context.Background(), 1234, 14, 2500)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	s := newFixed()
	a, err := s.Generate(context.Background(), 1, 30, 50)
	require.NoError(t, err)
	b, err := s.Generate(context.Background(), 2, 30, 50)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_InvalidArguments(t *testing.T) {
	s := newFixed()
	tests := []struct {
		name       string
		windowDays int
		count      int
	}{
		{"zero window", 0, 10},
		{"negative window", -3, 10},
		{"negative count", 30, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := s.Generate(context.Background(), 42, tt.windowDays, tt.count)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "got %v", err)
			assert.Nil(t, events)
		})
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	events, err := newFixed().Generate(context.Background(), 42, 30, 0)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestGenerate_IDsUniqueAndPoolsBounded(t *testing.T) {
	events, err := newFixed().Generate(context.Background(), 9, 30, 20000)
	require.NoError(t, err)

	ids := make(map[string]struct{}, len(events))
	users := make(map[string]struct{})
	sessions := make(map[string]struct{})
	for _, e := range events {
		ids[e.ID] = struct{}{}
		users[e.UserID] = struct{}{}
		sessions[e.SessionID] = struct{}{}
		require.NoError(t, e.Validate())
	}
	assert.Len(t, ids, len(events))
	assert.LessOrEqual(t, len(users), UserPoolSize)
	assert.LessOrEqual(t, len(sessions), SessionPoolSize)
}

func TestGenerate_WeightedEventMix(t *testing.T) {
	events, err := newFixed().Generate(context.Background(), 2024, 30, 100000)
	require.NoError(t, err)

	counts := make(map[domain.EventType]int)
	for _, e := range events {
		counts[e.EventType]++
	}
	n := float64(len(events))
	assert.InDelta(t, 0.70, float64(counts[domain.EventPageView])/n, 0.02)
	assert.InDelta(t, 0.20, float64(counts[domain.EventClick])/n, 0.02)
	assert.InDelta(t, 0.07, float64(counts[domain.EventSignup])/n, 0.01)
	assert.InDelta(t, 0.03, float64(counts[domain.EventPurchase])/n, 0.01)
}

func TestGenerate_CustomWeights(t *testing.T) {
	s := New(
		WithClock(func() time.Time { return fixedNow }),
		WithEventWeights([]EventWeight{{Type: domain.EventPurchase, Weight: 1}}),
	)
	events, err := s.Generate(context.Background(), 5, 7, 200)
	require.NoError(t, err)
	for _, e := range events {
		require.Equal(t, domain.EventPurchase, e.EventType)
		require.NotNil(t, e.Revenue)
		assert.GreaterOrEqual(t, *e.Revenue, float64(MinRevenue))
		assert.Less(t, *e.Revenue, float64(MaxRevenue))
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	events, err := newFixed().Generate(ctx, 42, 30, 5000)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, events)
}

func TestProperty_GeneratedEventInvariants(t *testing.T) {
	s := newFixed()
	now := fixedNow.UnixMilli()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("count, window and revenue invariants hold", prop.ForAll(
		func(seed int64, windowDays, count int) bool {
			events, err := s.GenerateAt(context.Background(), seed, windowDays, count, now)
			if err != nil || len(events) != count {
				return false
			}
			start := now - int64(windowDays)*dayMs
			for i, e := range events {
				if e.Timestamp < start || e.Timestamp > now {
					return false
				}
				hasRevenue := e.Revenue != nil && *e.Revenue > 0
				if (e.EventType == domain.EventPurchase) != hasRevenue {
					return false
				}
				if i > 0 && events[i-1].Timestamp < e.Timestamp {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 365),
		gen.IntRange(0, 3000),
	))

	properties.Property("same inputs reproduce the same batch", prop.ForAll(
		func(seed int64, count int) bool {
			a, errA := s.GenerateAt(context.Background(), seed, 30, count, now)
			b, errB := s.GenerateAt(context.Background(), seed, 30, count, now)
			if errA != nil || errB != nil || len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i].ID != b[i].ID || a[i].UserID != b[i].UserID || a[i].Timestamp != b[i].Timestamp {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(0, 1500),
	))

	properties.TestingRun(t)
}

func BenchmarkGenerate100k(b *testing.B) {
	s := newFixed()
	for i := 0; i < b.N; i++ {
		if _, err := s.Generate(context.Background(), int64(i), 30, 100_000); err != nil {
			b.Fatal(err)
		}
	}
}
