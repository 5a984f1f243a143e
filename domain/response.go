package domain

import (
	"time"

	"kucukaslan/eventlab/buildinfo"
)

// HealthResponse represents the health status of the service
type HealthResponse struct {
	Status    string              `json:"status" example:"healthy"`
	Timestamp time.Time           `json:"timestamp" example:"2025-11-22T10:00:00Z"`
	BuildInfo buildinfo.Info      `json:"buildInfo"`
	Services  ServiceHealthStatus `json:"services"`
}

// ServiceHealthStatus represents the health status of dependent services
type ServiceHealthStatus struct {
	ClickHouse ServiceStatus `json:"clickhouse"`
	Redis      ServiceStatus `json:"redis"`
}

// ServiceStatus represents the status of a single service
type ServiceStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:""`
}

// EventsResponse carries an event collection. Token identifies the
// collection's content and can be used as a cache key by callers.
type EventsResponse struct {
	Success bool    `json:"success" example:"true"`
	Message string  `json:"message" example:"Events generated successfully"`
	Token   string  `json:"token,omitempty" example:"5b1c5f2e-8f57-5b55-9a39-1c1f0b0e7a11"`
	Total   int     `json:"total" example:"1000"`
	Data    []Event `json:"data"`
}

// TrafficSeriesResponse carries the GA4 daily traffic report, oldest first.
type TrafficSeriesResponse struct {
	Success    bool         `json:"success" example:"true"`
	Message    string       `json:"message" example:"Traffic series fetched successfully"`
	PropertyID string       `json:"propertyId,omitempty" example:"properties/123456789"`
	Days       []TrafficDay `json:"days"`
}

type KPIResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"KPIs computed successfully"`
	KPIs    KPISummary `json:"kpis"`
	Cached  bool       `json:"cached" example:"false"`
}

type RollupResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Rollup computed successfully"`
	Buckets []DayBucket `json:"buckets"`
}

type BreakdownResponse struct {
	Success bool             `json:"success" example:"true"`
	Message string           `json:"message" example:"Breakdown computed successfully"`
	Field   Dimension        `json:"field" example:"device"`
	Entries []BreakdownEntry `json:"entries"`
}

// DashboardResponse bundles everything the dashboard renders for one dataset.
type DashboardResponse struct {
	Success    bool             `json:"success" example:"true"`
	Message    string           `json:"message" example:"Dashboard computed successfully"`
	Source     DataSource       `json:"source" example:"simulated"`
	Token      string           `json:"token" example:"5b1c5f2e-8f57-5b55-9a39-1c1f0b0e7a11"`
	Total      int              `json:"total" example:"1000"`
	Filtered   int              `json:"filtered" example:"812"`
	KPIs       KPISummary       `json:"kpis"`
	Trend      []DayBucket      `json:"trend"`
	Devices    []BreakdownEntry `json:"devices"`
	Countries  []BreakdownEntry `json:"countries"`
	EventTypes []BreakdownEntry `json:"eventTypes"`
}

// ImportResponse reports the outcome of a CSV import.
type ImportResponse struct {
	Success  bool    `json:"success" example:"true"`
	Message  string  `json:"message" example:"Events imported successfully"`
	Accepted int     `json:"accepted" example:"998"`
	Dropped  int     `json:"dropped" example:"2"`
	Data     []Event `json:"data"`
}

// PublishResponse reports how many events were queued for the warehouse.
type PublishResponse struct {
	Success  bool   `json:"success" example:"true"`
	Message  string `json:"message" example:"Events queued for publishing"`
	Token    string `json:"token,omitempty" example:"5b1c5f2e-8f57-5b55-9a39-1c1f0b0e7a11"`
	Enqueued int    `json:"enqueued" example:"1000"`
}

// WarehouseBucket is one day of a rollup computed inside the warehouse.
type WarehouseBucket struct {
	Day         string  `json:"day" example:"2025-11-21 00:00:00"`
	Events      uint64  `json:"events" example:"73"`
	Purchases   uint64  `json:"purchases" example:"2"`
	Revenue     float64 `json:"revenue" example:"412"`
	UniqueUsers uint64  `json:"uniqueUsers" example:"61"`
}

type WarehouseRollupResponse struct {
	Success bool              `json:"success" example:"true"`
	Message string            `json:"message" example:"Rollup retrieved successfully"`
	Buckets []WarehouseBucket `json:"buckets"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Validation failed: windowDays must be >= 1"`
}
