package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"kucukaslan/eventlab/database"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/logger"
	"kucukaslan/eventlab/metrics"
	"kucukaslan/eventlab/synth"
)

// ErrWarehouseDisabled is returned by warehouse operations when ClickHouse
// is not configured.
var ErrWarehouseDisabled = errors.New("warehouse is disabled")

// WarehouseStore is the ClickHouse side of the warehouse.
type WarehouseStore interface {
	EventSink
	LoadEvents(ctx context.Context, criteria domain.FilterCriteria, limit int) ([]domain.Event, error)
	DailyRollup(ctx context.Context, request domain.WarehouseRollupRequest) ([]database.RollupRow, error)
}

var _ domain.WarehouseService = &warehouseService{}

type warehouseService struct {
	store   WarehouseStore
	synth   *synth.Synthesizer
	batcher *EventBatcher
	log     *logger.Logger
}

// NewWarehouseService starts a batcher writing into store. A nil store
// yields a service whose operations fail with ErrWarehouseDisabled.
func NewWarehouseService(
	store WarehouseStore,
	ledger PublishLedger,
	synthesizer *synth.Synthesizer,
	cfg BatcherConfig,
	log *logger.Logger,
) (domain.WarehouseService, error) {
	log = log.Named("warehouse")
	if store == nil {
		log.Info("ClickHouse disabled, warehouse endpoints will answer 503")
		return &warehouseService{log: log}, nil
	}
	if synthesizer == nil {
		return nil, fmt.Errorf("synthesizer cannot be nil")
	}
	if cfg.Capacity <= 0 || cfg.BatchSize <= 0 || cfg.FlushInterval <= 0 {
		return nil, fmt.Errorf("batcher capacity, batch size and flush interval must be positive")
	}

	batcher := NewEventBatcher(cfg, store, ledger, log)
	batcher.Start()

	return &warehouseService{
		store:   store,
		synth:   synthesizer,
		batcher: batcher,
		log:     log,
	}, nil
}

// Publish synthesizes the requested batch and queues it for the warehouse.
// When the buffer fills up the events queued so far stay queued.
func (w *warehouseService) Publish(ctx context.Context, req *domain.GenerationRequest) (*domain.PublishResponse, error) {
	if w.store == nil {
		return &domain.PublishResponse{Success: false, Message: ErrWarehouseDisabled.Error()}, ErrWarehouseDisabled
	}

	events, err := w.synth.Generate(ctx, req.Seed, req.WindowDays, req.Count)
	if err != nil {
		return &domain.PublishResponse{
			Success: false,
			Message: "Failed to generate events: " + err.Error(),
		}, err
	}
	token := metrics.Token(metrics.Fingerprint(events))

	for i, event := range events {
		if err := w.batcher.Enqueue(event); err != nil {
			w.log.Warn("publish buffer full",
				zap.Int("enqueued", i),
				zap.Int("requested", len(events)),
				zap.Int("buffered", w.batcher.GetBufferSize()),
				zap.Int("pending", w.batcher.GetBatchSize()))
			return &domain.PublishResponse{
				Success:  false,
				Message:  "Event buffer is full, please try again later",
				Token:    token,
				Enqueued: i,
			}, err
		}
	}

	return &domain.PublishResponse{
		Success:  true,
		Message:  "Events queued for publishing",
		Token:    token,
		Enqueued: len(events),
	}, nil
}

// Events reads published events back, filtered inside the warehouse.
func (w *warehouseService) Events(ctx context.Context, req *domain.WarehouseEventsRequest) (*domain.EventsResponse, error) {
	if w.store == nil {
		return &domain.EventsResponse{Success: false, Message: ErrWarehouseDisabled.Error()}, ErrWarehouseDisabled
	}
	if req.Limit < 1 {
		return &domain.EventsResponse{Success: false, Message: "limit must be positive"},
			fmt.Errorf("%w: limit must be >= 1, got %d", domain.ErrInvalidArgument, req.Limit)
	}

	events, err := w.store.LoadEvents(ctx, req.Criteria, req.Limit)
	if err != nil {
		return &domain.EventsResponse{
			Success: false,
			Message: "Failed to load events: " + err.Error(),
		}, err
	}
	return &domain.EventsResponse{
		Success: true,
		Message: "Events retrieved successfully",
		Token:   metrics.Token(metrics.Fingerprint(events)),
		Total:   len(events),
		Data:    events,
	}, nil
}

func (w *warehouseService) DailyRollup(ctx context.Context, req *domain.WarehouseRollupRequest) (*domain.WarehouseRollupResponse, error) {
	if w.store == nil {
		return &domain.WarehouseRollupResponse{Success: false, Message: ErrWarehouseDisabled.Error()}, ErrWarehouseDisabled
	}

	rows, err := w.store.DailyRollup(ctx, *req)
	if err != nil {
		return &domain.WarehouseRollupResponse{
			Success: false,
			Message: "Failed to retrieve rollup: " + err.Error(),
		}, err
	}

	buckets := make([]domain.WarehouseBucket, len(rows))
	for i, row := range rows {
		buckets[i] = domain.WarehouseBucket{
			Day:         row.Day,
			Events:      row.Events,
			Purchases:   row.Purchases,
			Revenue:     row.Revenue,
			UniqueUsers: row.UniqueUsers,
		}
	}
	return &domain.WarehouseRollupResponse{
		Success: true,
		Message: "Rollup retrieved successfully",
		Buckets: buckets,
	}, nil
}

// Shutdown gracefully shuts down the warehouse batcher
func (w *warehouseService) Shutdown() error {
	if w.batcher != nil {
		return w.batcher.Shutdown()
	}
	return nil
}

// ShutdownService gracefully shuts down a service if it supports shutdown
func ShutdownService(service any) error {
	if srv, ok := service.(interface{ Shutdown() error }); ok {
		return srv.Shutdown()
	}
	return nil
}
