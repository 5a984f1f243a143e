package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/csvio"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/ga4"
	"kucukaslan/eventlab/logger"
	"kucukaslan/eventlab/metrics"
	"kucukaslan/eventlab/synth"
)

var _ domain.EventService = &eventService{}

type eventService struct {
	synth     *synth.Synthesizer
	ga4       *ga4.Client
	cache     domain.SummaryCache
	generator config.GeneratorConfig
	property  string
	log       *logger.Logger
	now       func() time.Time
}

// EventServiceOption customizes the event service at construction.
type EventServiceOption func(*eventService)

// WithClock replaces the wall clock behind every "now" the service reads.
func WithClock(now func() time.Time) EventServiceOption {
	return func(s *eventService) { s.now = now }
}

// NewEventService returns a domain.EventService producing events with the
// given synthesizer and GA4 client and memoizing KPI summaries in cache.
func NewEventService(
	cfg *config.Config,
	synthesizer *synth.Synthesizer,
	ga4Client *ga4.Client,
	cache domain.SummaryCache,
	log *logger.Logger,
	opts ...EventServiceOption,
) (domain.EventService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if synthesizer == nil {
		return nil, fmt.Errorf("synthesizer cannot be nil")
	}
	if ga4Client == nil {
		return nil, fmt.Errorf("GA4 client cannot be nil")
	}
	if cache == nil {
		return nil, fmt.Errorf("summary cache cannot be nil")
	}
	s := &eventService{
		synth:     synthesizer,
		ga4:       ga4Client,
		cache:     cache,
		generator: cfg.Generator,
		property:  cfg.GA4.PropertyID,
		log:       log.Named("events"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// produce runs the request's data source.
func (s *eventService) produce(ctx context.Context, req *domain.DatasetRequest) ([]domain.Event, error) {
	switch req.Source {
	case "", domain.SourceSimulated:
		return s.synth.Generate(ctx, req.Seed, req.WindowDays, req.Count)
	case domain.SourceGA4:
		return s.ga4.FetchEvents(ctx, s.propertyID(req), req.Seed, ga4Range(req))
	default:
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidArgument, req.Source)
	}
}

// ga4Range defaults the start of the range to the request's window.
func ga4Range(req *domain.DatasetRequest) ga4.DateRange {
	start := req.Start
	if start == "" && req.WindowDays > 0 {
		start = strconv.Itoa(req.WindowDays) + "daysAgo"
	}
	return ga4.DateRange{Start: start, End: req.End}
}

func (s *eventService) propertyID(req *domain.DatasetRequest) string {
	if req.PropertyID != "" {
		return req.PropertyID
	}
	return s.property
}

func (s *eventService) Generate(ctx context.Context, req *domain.DatasetRequest) (*domain.EventsResponse, error) {
	events, err := s.produce(ctx, req)
	if err != nil {
		return &domain.EventsResponse{
			Success: false,
			Message: "Failed to produce events: " + err.Error(),
		}, err
	}
	events = metrics.Filter(events, req.Criteria)

	s.log.Debug("events produced",
		zap.String("source", string(req.Source)),
		zap.Int64("seed", req.Seed),
		zap.Int("events", len(events)))

	return &domain.EventsResponse{
		Success: true,
		Message: "Events generated successfully",
		Token:   metrics.Token(metrics.Fingerprint(events)),
		Total:   len(events),
		Data:    events,
	}, nil
}

func (s *eventService) Realtime(ctx context.Context, req *domain.DatasetRequest) (*domain.EventsResponse, error) {
	events, err := s.ga4.FetchRealtime(ctx, s.propertyID(req), req.Seed)
	if err != nil {
		return &domain.EventsResponse{
			Success: false,
			Message: "Failed to fetch realtime events: " + err.Error(),
		}, err
	}
	return &domain.EventsResponse{
		Success: true,
		Message: "Realtime events fetched successfully",
		Total:   len(events),
		Data:    events,
	}, nil
}

func (s *eventService) TrafficSeries(ctx context.Context, req *domain.DatasetRequest) (*domain.TrafficSeriesResponse, error) {
	property := s.propertyID(req)
	days, err := s.ga4.DailySeries(ctx, property, req.Seed, ga4Range(req))
	if err != nil {
		return &domain.TrafficSeriesResponse{
			Success: false,
			Message: "Failed to fetch traffic series: " + err.Error(),
		}, err
	}
	return &domain.TrafficSeriesResponse{
		Success:    true,
		Message:    "Traffic series fetched successfully",
		PropertyID: property,
		Days:       days,
	}, nil
}

func (s *eventService) Filter(_ context.Context, req *domain.FilterRequest) (*domain.EventsResponse, error) {
	events := metrics.Filter(req.Events, req.Criteria)
	return &domain.EventsResponse{
		Success: true,
		Message: "Events filtered successfully",
		Token:   metrics.Token(metrics.Fingerprint(events)),
		Total:   len(events),
		Data:    events,
	}, nil
}

func (s *eventService) KPIs(ctx context.Context, req *domain.KPIRequest) (*domain.KPIResponse, error) {
	summary, cached := s.summary(ctx, metrics.Filter(req.Events, req.Criteria))
	return &domain.KPIResponse{
		Success: true,
		Message: "KPIs computed successfully",
		KPIs:    summary,
		Cached:  cached,
	}, nil
}

// summary computes the KPIs of events through the cache. Cache failures
// are logged and never fail the request.
func (s *eventService) summary(ctx context.Context, events []domain.Event) (domain.KPISummary, bool) {
	fingerprint := metrics.Fingerprint(events)

	hit, ok, err := s.cache.GetSummary(ctx, fingerprint)
	if err != nil {
		s.log.Warn("summary cache read failed", zap.String("fingerprint", fingerprint), zap.Error(err))
	}
	if ok {
		return *hit, true
	}

	summary := metrics.ComputeKPIs(events)
	if err := s.cache.SetSummary(ctx, fingerprint, summary); err != nil {
		s.log.Warn("summary cache write failed", zap.String("fingerprint", fingerprint), zap.Error(err))
	}
	return summary, false
}

func (s *eventService) Rollup(_ context.Context, req *domain.RollupRequest) (*domain.RollupResponse, error) {
	ref := s.now().UnixMilli()
	if req.ReferenceTime != nil {
		ref = *req.ReferenceTime
	}
	return &domain.RollupResponse{
		Success: true,
		Message: "Rollup computed successfully",
		Buckets: metrics.RollupByDay(req.Events, req.WindowDays, ref),
	}, nil
}

func (s *eventService) Breakdown(_ context.Context, req *domain.BreakdownRequest) (*domain.BreakdownResponse, error) {
	entries, err := metrics.BreakdownBy(req.Events, req.Field, req.TopN)
	if err != nil {
		return &domain.BreakdownResponse{
			Success: false,
			Message: err.Error(),
			Field:   req.Field,
		}, err
	}
	return &domain.BreakdownResponse{
		Success: true,
		Message: "Breakdown computed successfully",
		Field:   req.Field,
		Entries: entries,
	}, nil
}

// Dashboard runs the whole pipeline for one dataset: produce, filter, then
// the KPI summary, the trend series and the categorical breakdowns.
func (s *eventService) Dashboard(ctx context.Context, req *domain.DatasetRequest) (*domain.DashboardResponse, error) {
	source := req.Source
	if source == "" {
		source = domain.SourceSimulated
	}

	events, err := s.produce(ctx, req)
	if err != nil {
		return &domain.DashboardResponse{
			Success: false,
			Message: "Failed to produce events: " + err.Error(),
			Source:  source,
		}, err
	}
	filtered := metrics.Filter(events, req.Criteria)
	summary, _ := s.summary(ctx, filtered)

	resp := &domain.DashboardResponse{
		Success:  true,
		Message:  "Dashboard computed successfully",
		Source:   source,
		Token:    metrics.Token(metrics.Fingerprint(events)),
		Total:    len(events),
		Filtered: len(filtered),
		KPIs:     summary,
		Trend:    metrics.RollupByDay(filtered, s.generator.TrendDays, s.now().UnixMilli()),
	}

	// Dimensions are fixed here, so errors are impossible.
	resp.Devices, _ = metrics.BreakdownBy(filtered, domain.DimensionDevice, 0)
	resp.Countries, _ = metrics.BreakdownBy(filtered, domain.DimensionCountry, s.generator.TopCountries)
	resp.EventTypes, _ = metrics.BreakdownBy(filtered, domain.DimensionEventType, 0)
	return resp, nil
}

func (s *eventService) Import(_ context.Context, r io.Reader) (*domain.ImportResponse, error) {
	events, report, err := csvio.Import(r, s.now())
	if err != nil {
		if !errors.Is(err, domain.ErrImportValidation) {
			s.log.Error("csv import failed", zap.Error(err))
		}
		return &domain.ImportResponse{
			Success: false,
			Message: "Import failed: " + err.Error(),
			Dropped: report.Dropped,
		}, err
	}

	s.log.Info("csv imported", zap.Int("accepted", report.Accepted), zap.Int("dropped", report.Dropped))
	return &domain.ImportResponse{
		Success:  true,
		Message:  "Events imported successfully",
		Accepted: report.Accepted,
		Dropped:  report.Dropped,
		Data:     events,
	}, nil
}

func (s *eventService) Export(ctx context.Context, w io.Writer, req *domain.DatasetRequest) (int, error) {
	events, err := s.produce(ctx, req)
	if err != nil {
		return 0, err
	}
	events = metrics.Filter(events, req.Criteria)
	if err := csvio.Export(w, events); err != nil {
		return 0, fmt.Errorf("failed to export events: %w", err)
	}
	return len(events), nil
}
