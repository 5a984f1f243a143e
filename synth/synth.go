// Package synth produces reproducible synthetic event batches.
//
// For a given (seed, windowDays, count, now) the output is identical on every
// run. Each event consumes draws from the seeded source in this fixed order:
//
//  1. timestamp, uniform in [now-windowDays*24h, now)
//  2. url
//  3. event type, by cumulative weight thresholds
//  4. user id
//  5. session id
//  6. device
//  7. country
//  8. revenue, purchases only, floor(r*(MaxRevenue-MinRevenue)) + MinRevenue
//
// Changing this order changes every event after the first.
package synth

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/rng"
)

// Synthesizer holds the immutable reference pools shared by every call.
// It is safe for concurrent use.
type Synthesizer struct {
	users      []string
	sessions   []string
	thresholds []float64
	types      []domain.EventType
	now        func() time.Time
}

// Option customizes a Synthesizer at construction.
type Option func(*Synthesizer)

// WithClock replaces the wall clock used to anchor the generation window.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// WithEventWeights replaces DefaultEventWeights. Weights are normalized, so
// they need not sum to one. Non-positive weights are ignored.
func WithEventWeights(weights []EventWeight) Option {
	return func(s *Synthesizer) { s.setWeights(weights) }
}

// New builds the user and session pools once.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		users:    buildPool("u_", UserPoolSize),
		sessions: buildPool("s_", SessionPoolSize),
		now:      time.Now,
	}
	s.setWeights(DefaultEventWeights)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func buildPool(prefix string, size int) []string {
	pool := make([]string, size)
	for i := range pool {
		pool[i] = prefix + strconv.Itoa(i)
	}
	return pool
}

func (s *Synthesizer) setWeights(weights []EventWeight) {
	total := 0.0
	for _, w := range weights {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total == 0 {
		return
	}

	s.thresholds = s.thresholds[:0]
	s.types = s.types[:0]
	cumulative := 0.0
	for _, w := range weights {
		if w.Weight <= 0 {
			continue
		}
		cumulative += w.Weight / total
		s.thresholds = append(s.thresholds, cumulative)
		s.types = append(s.types, w.Type)
	}
	// Guard against rounding leaving the last threshold just below 1.
	s.thresholds[len(s.thresholds)-1] = 1
}

// Generate produces count events over the trailing windowDays, anchored at
// the current clock time.
func (s *Synthesizer) Generate(ctx context.Context, seed int64, windowDays, count int) ([]domain.Event, error) {
	return s.GenerateAt(ctx, seed, windowDays, count, s.now().UnixMilli())
}

// GenerateAt is Generate with an explicit anchor, in epoch milliseconds.
// The result is sorted newest first. Cancelling ctx aborts between batches
// and returns ctx.Err() with no events.
func (s *Synthesizer) GenerateAt(ctx context.Context, seed int64, windowDays, count int, now int64) ([]domain.Event, error) {
	if windowDays < 1 {
		return nil, fmt.Errorf("%w: windowDays must be >= 1, got %d", domain.ErrInvalidArgument, windowDays)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count must be >= 0, got %d", domain.ErrInvalidArgument, count)
	}

	events := make([]domain.Event, 0, count)
	if count == 0 {
		return events, nil
	}

	src := rng.New(seed)
	start := now - int64(windowDays)*dayMs
	span := float64(now - start)

	for batchStart := 0; batchStart < count; batchStart += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batchEnd := min(batchStart+batchSize, count)
		for i := batchStart; i < batchEnd; i++ {
			events = append(events, s.next(src, i, start, span))
		}
	}

	slices.SortStableFunc(events, func(a, b domain.Event) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})
	return events, nil
}

func (s *Synthesizer) next(src *rng.Source, index int, start int64, span float64) domain.Event {
	ts := start + int64(math.Floor(src.Float64()*span))
	url := rng.Pick(src, URLs)
	eventType := s.pickType(src.Float64())

	e := domain.Event{
		ID:        "evt_" + strconv.Itoa(index) + "_" + strconv.FormatInt(ts, 10),
		UserID:    rng.Pick(src, s.users),
		SessionID: rng.Pick(src, s.sessions),
		Timestamp: ts,
		EventType: eventType,
		URL:       url,
		Device:    rng.Pick(src, domain.Devices),
		Country:   rng.Pick(src, Countries),
	}
	if eventType == domain.EventPurchase {
		e.Revenue = domain.Float(math.Floor(src.Float64()*(MaxRevenue-MinRevenue)) + MinRevenue)
	}
	return e
}

func (s *Synthesizer) pickType(r float64) domain.EventType {
	for i, threshold := range s.thresholds {
		if r < threshold {
			return s.types[i]
		}
	}
	return s.types[len(s.types)-1]
}
