package domain

// FilterCriteria narrows an event collection before aggregation.
// Every supplied predicate must hold; empty or nil predicates are ignored.
type FilterCriteria struct {
	DateFrom      *int64      `json:"dateFrom,omitempty" example:"1732147200000"` // inclusive, epoch ms
	DateTo        *int64      `json:"dateTo,omitempty" example:"1732233600000"`   // inclusive, epoch ms
	Countries     []string    `json:"country,omitempty"`
	Devices       []Device    `json:"device,omitempty"`
	EventTypes    []EventType `json:"event,omitempty"`
	PurchasesOnly bool        `json:"purchasesOnly,omitempty"`
}

// IsEmpty reports whether the criteria impose no constraint at all.
func (c FilterCriteria) IsEmpty() bool {
	return c.DateFrom == nil && c.DateTo == nil &&
		len(c.Countries) == 0 && len(c.Devices) == 0 && len(c.EventTypes) == 0 &&
		!c.PurchasesOnly
}

// KPISummary holds the headline statistics of an event collection.
// DateFrom and DateTo are nil for an empty collection.
type KPISummary struct {
	UniqueUsers    int     `json:"uniqueUsers" example:"1840"`
	UniqueSessions int     `json:"uniqueSessions" example:"2410"`
	ConversionRate float64 `json:"conversionRate" example:"0.12"`
	TotalRevenue   float64 `json:"totalRevenue" example:"7340"`
	DateFrom       *int64  `json:"dateFrom,omitempty" example:"1729641600000"`
	DateTo         *int64  `json:"dateTo,omitempty" example:"1732233600000"`
}

// DayBucket is one 24h slot of a rollup series.
type DayBucket struct {
	Date      string  `json:"date" example:"Nov 21"`
	Start     int64   `json:"start" example:"1732147200000"` // inclusive, epoch ms
	End       int64   `json:"end" example:"1732233600000"`   // exclusive, epoch ms
	Events    int     `json:"events" example:"73"`
	Purchases int     `json:"purchases" example:"2"`
	Revenue   float64 `json:"revenue" example:"412"`
}

// Dimension names an Event field a breakdown can group by.
type Dimension string

const (
	DimensionDevice    Dimension = "device"
	DimensionCountry   Dimension = "country"
	DimensionEventType Dimension = "eventType"
	DimensionURL       Dimension = "url"
)

// BreakdownEntry is the share of one category value in a collection.
type BreakdownEntry struct {
	Value      string  `json:"value" example:"desktop"`
	Count      int     `json:"count" example:"5"`
	Percentage float64 `json:"percentage" example:"55.56"`
}

// DataSource selects the event producer behind a request.
type DataSource string

const (
	SourceSimulated DataSource = "simulated"
	SourceGA4       DataSource = "ga4"
)

// TrafficDay is one day of the GA4 traffic report.
type TrafficDay struct {
	Date               string  `json:"date" example:"2025-11-21"`
	Sessions           int     `json:"sessions" example:"612"`
	Users              int     `json:"users" example:"488"`
	PageViews          int     `json:"pageViews" example:"2140"`
	BounceRate         float64 `json:"bounceRate" example:"0.42"`
	AvgSessionDuration int     `json:"avgSessionDuration" example:"245"` // seconds
	Conversions        int     `json:"conversions" example:"17"`
	Revenue            float64 `json:"revenue" example:"2950"`
}
