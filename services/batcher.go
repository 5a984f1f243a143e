package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/logger"
)

var (
	// ErrBufferFull is returned when the event buffer channel is full
	ErrBufferFull = errors.New("event buffer is full")
)

// EventSink persists a batch of events.
type EventSink interface {
	SaveEvents(ctx context.Context, events []domain.Event, source domain.DataSource) error
}

// PublishLedger remembers which event IDs were already persisted.
type PublishLedger interface {
	ArePublished(ctx context.Context, ids []string) (map[string]bool, error)
	MarkPublished(ctx context.Context, ids []string) error
}

// BatcherConfig sizes an EventBatcher.
type BatcherConfig struct {
	Capacity      int
	BatchSize     int
	FlushInterval time.Duration
	Source        domain.DataSource
}

// EventBatcher batches events and flushes them to the sink
type EventBatcher struct {
	eventChan     chan domain.Event
	batchSize     int
	flushInterval time.Duration
	source        domain.DataSource
	sink          EventSink
	ledger        PublishLedger // nil disables deduplication
	log           *logger.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	mu            sync.Mutex
	isRunning     bool
	currentBatch  []domain.Event
	flushed       int
}

// NewEventBatcher creates a new EventBatcher instance
func NewEventBatcher(cfg BatcherConfig, sink EventSink, ledger PublishLedger, log *logger.Logger) *EventBatcher {
	ctx, cancel := context.WithCancel(context.Background())
	if cfg.Source == "" {
		cfg.Source = domain.SourceSimulated
	}
	return &EventBatcher{
		eventChan:     make(chan domain.Event, cfg.Capacity),
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
		source:        cfg.Source,
		sink:          sink,
		ledger:        ledger,
		log:           log.Named("batcher"),
		ctx:           ctx,
		cancel:        cancel,
		currentBatch:  make([]domain.Event, 0, cfg.BatchSize),
	}
}

// Start launches the background worker goroutine that processes events
func (b *EventBatcher) Start() {
	b.mu.Lock()
	if b.isRunning {
		b.mu.Unlock()
		return
	}
	b.isRunning = true
	b.mu.Unlock()

	b.wg.Add(1)
	go b.worker()
	b.log.Info("EventBatcher started",
		zap.Int("batchSize", b.batchSize),
		zap.Duration("flushInterval", b.flushInterval))
}

// Enqueue adds an event to the buffer channel (non-blocking)
// Returns ErrBufferFull if the channel is full
func (b *EventBatcher) Enqueue(event domain.Event) error {
	select {
	case b.eventChan <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

// worker is the background goroutine that collects events and flushes them
func (b *EventBatcher) worker() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			b.flushRemaining()
			return

		case event := <-b.eventChan:
			b.mu.Lock()
			b.currentBatch = append(b.currentBatch, event)
			shouldFlush := len(b.currentBatch) >= b.batchSize
			b.mu.Unlock()

			if shouldFlush {
				b.flushBatch()
			}

		case <-ticker.C:
			b.mu.Lock()
			hasEvents := len(b.currentBatch) > 0
			b.mu.Unlock()

			if hasEvents {
				b.flushBatch()
			}
		}
	}
}

// flushBatch flushes the current batch to the sink
func (b *EventBatcher) flushBatch() {
	b.mu.Lock()
	if len(b.currentBatch) == 0 {
		b.mu.Unlock()
		return
	}

	batch := make([]domain.Event, len(b.currentBatch))
	copy(batch, b.currentBatch)
	b.currentBatch = b.currentBatch[:0]
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pending := b.filterPublished(ctx, batch)
	if len(pending) == 0 {
		b.log.Debug("all events in batch were already published", zap.Int("batch", len(batch)))
		return
	}

	if err := b.sink.SaveEvents(ctx, pending, b.source); err != nil {
		b.log.Error("failed to flush batch", zap.Int("events", len(pending)), zap.Error(err))
		return
	}

	b.mu.Lock()
	b.flushed += len(pending)
	b.mu.Unlock()
	b.log.Info("flushed batch", zap.Int("events", len(pending)), zap.Int("batch", len(batch)))

	if b.ledger == nil {
		return
	}
	ids := make([]string, len(pending))
	for i, e := range pending {
		ids[i] = e.ID
	}
	if err := b.ledger.MarkPublished(ctx, ids); err != nil {
		b.log.Warn("failed to mark events as published", zap.Error(err))
	}
}

// flushRemaining flushes any remaining events in the buffer during shutdown
func (b *EventBatcher) flushRemaining() {
	b.mu.Lock()
	remaining := len(b.currentBatch)
	b.mu.Unlock()

	if remaining > 0 {
		b.log.Info("flushing remaining events during shutdown", zap.Int("events", remaining))
		b.flushBatch()
	}

	drained := 0
	for {
		select {
		case event := <-b.eventChan:
			b.mu.Lock()
			b.currentBatch = append(b.currentBatch, event)
			full := len(b.currentBatch) >= b.batchSize
			b.mu.Unlock()
			drained++
			if full {
				b.flushBatch()
			}
		default:
			if drained > 0 {
				b.log.Info("drained events from channel during shutdown", zap.Int("events", drained))
				b.flushBatch()
			}
			return
		}
	}
}

// filterPublished drops events the ledger has already seen. A ledger
// failure lets the whole batch through; the table deduplicates on merge.
func (b *EventBatcher) filterPublished(ctx context.Context, events []domain.Event) []domain.Event {
	if b.ledger == nil {
		return events
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	published, err := b.ledger.ArePublished(ctx, ids)
	if err != nil {
		b.log.Warn("publish ledger check failed, assuming all events are new", zap.Error(err))
		return events
	}

	pending := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if !published[e.ID] {
			pending = append(pending, e)
		}
	}
	return pending
}

// Shutdown gracefully shuts down the batcher, flushing remaining events
func (b *EventBatcher) Shutdown() error {
	b.mu.Lock()
	if !b.isRunning {
		b.mu.Unlock()
		return nil
	}
	b.isRunning = false
	b.mu.Unlock()

	b.log.Info("initiating graceful shutdown")
	b.cancel()
	b.wg.Wait()
	b.log.Info("shutdown complete")
	return nil
}

// GetBufferSize returns the current number of events in the buffer channel.
// It and GetBatchSize are point-in-time readings for logs and tests.
func (b *EventBatcher) GetBufferSize() int {
	return len(b.eventChan)
}

// GetBatchSize returns the current number of events in the pending batch
func (b *EventBatcher) GetBatchSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.currentBatch)
}

// Flushed returns how many events the sink has accepted so far.
func (b *EventBatcher) Flushed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushed
}
