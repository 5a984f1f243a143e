package domain

import (
	"context"
	"io"
)

// EventService produces event collections and derives analytics from them.
type EventService interface {
	Generate(ctx context.Context, req *DatasetRequest) (*EventsResponse, error)
	Realtime(ctx context.Context, req *DatasetRequest) (*EventsResponse, error)
	TrafficSeries(ctx context.Context, req *DatasetRequest) (*TrafficSeriesResponse, error)
	Filter(ctx context.Context, req *FilterRequest) (*EventsResponse, error)
	KPIs(ctx context.Context, req *KPIRequest) (*KPIResponse, error)
	Rollup(ctx context.Context, req *RollupRequest) (*RollupResponse, error)
	Breakdown(ctx context.Context, req *BreakdownRequest) (*BreakdownResponse, error)
	Dashboard(ctx context.Context, req *DatasetRequest) (*DashboardResponse, error)
	Import(ctx context.Context, r io.Reader) (*ImportResponse, error)
	Export(ctx context.Context, w io.Writer, req *DatasetRequest) (int, error)
}

// WarehouseService publishes synthetic events to the warehouse and reads
// stored events and rollups computed there.
type WarehouseService interface {
	Publish(ctx context.Context, req *GenerationRequest) (*PublishResponse, error)
	Events(ctx context.Context, req *WarehouseEventsRequest) (*EventsResponse, error)
	DailyRollup(ctx context.Context, req *WarehouseRollupRequest) (*WarehouseRollupResponse, error)
}

// SummaryCache memoizes KPI summaries by content fingerprint. It is owned
// by the caller of the aggregation functions, never by the functions.
type SummaryCache interface {
	GetSummary(ctx context.Context, fingerprint string) (*KPISummary, bool, error)
	SetSummary(ctx context.Context, fingerprint string, summary KPISummary) error
}
