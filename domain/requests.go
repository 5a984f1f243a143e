package domain

// GenerationRequest asks the synthesizer for a reproducible event batch.
type GenerationRequest struct {
	Seed       int64 `json:"seed" example:"42"`
	WindowDays int   `json:"windowDays" example:"30" minimum:"1"`
	Count      int   `json:"count" example:"1000" minimum:"0"`
}

// DatasetRequest selects a data source, its parameters and the filter
// applied to the produced events.
type DatasetRequest struct {
	Source DataSource `json:"source" example:"simulated"`
	GenerationRequest
	// GA4 source only.
	PropertyID string `json:"propertyId,omitempty" example:"properties/123456"`
	Start      string `json:"start,omitempty" example:"30daysAgo"`
	End        string `json:"end,omitempty" example:"today"`

	Criteria FilterCriteria `json:"criteria"`
}

// FilterRequest applies criteria to a caller-supplied collection.
type FilterRequest struct {
	Events   []Event        `json:"events"`
	Criteria FilterCriteria `json:"criteria"`
}

// KPIRequest computes the KPI summary of a collection, optionally filtered first.
type KPIRequest struct {
	Events   []Event        `json:"events"`
	Criteria FilterCriteria `json:"criteria"`
}

// RollupRequest buckets a collection into windowDays days ending at
// ReferenceTime. A nil ReferenceTime means "now".
type RollupRequest struct {
	Events        []Event `json:"events"`
	WindowDays    int     `json:"windowDays" example:"14"`
	ReferenceTime *int64  `json:"referenceTime,omitempty" example:"1732233600000"`
}

// BreakdownRequest groups a collection by one dimension. TopN <= 0 keeps
// every distinct value.
type BreakdownRequest struct {
	Events []Event   `json:"events"`
	Field  Dimension `json:"field" example:"device"`
	TopN   int       `json:"topN,omitempty" example:"5"`
}

// WarehouseEventsRequest reads stored events back from the warehouse,
// newest first, at most Limit rows.
type WarehouseEventsRequest struct {
	Criteria FilterCriteria `json:"criteria"`
	Limit    int            `json:"limit" example:"100"`
}

// WarehouseRollupRequest queries daily rollups stored in the warehouse.
// Bounds are epoch milliseconds.
type WarehouseRollupRequest struct {
	EventType *string `json:"eventType" example:"purchase"`
	From      *int64  `json:"from" example:"1732147200000"`
	To        *int64  `json:"to" example:"1732233600000"`
}
