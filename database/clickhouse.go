package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/go-clickhouse/ch"
	"go.uber.org/zap"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/logger"
)

// ClickHouseDB is the event warehouse.
type ClickHouseDB struct {
	*ch.DB
}

// Event represents the events table structure for ClickHouse ORM.
// Revenue is 0 for non-purchase rows; timestamp_ms keeps the exact
// millisecond the DateTime column rounds away.
type Event struct {
	ch.CHModel  `ch:"table:events,partition:toYYYYMMDD(timestamp)"`
	ID          string    `ch:"id"`
	UserID      string    `ch:"user_id"`
	SessionID   string    `ch:"session_id"`
	Timestamp   time.Time `ch:"timestamp"`
	TimestampMs int64     `ch:"timestamp_ms"`
	EventType   string    `ch:"event_type,lc"`
	URL         string    `ch:"url,lc"`
	Device      string    `ch:"device,lc"`
	Country     string    `ch:"country,lc"`
	Revenue     float64   `ch:"revenue"`
	Source      string    `ch:"source,lc"`

	IngestedAt time.Time `ch:"ingested_at,default:now()"`
}

// EventColumnar: events in columnar format for batch inserts
type EventColumnar struct {
	ch.CHModel  `ch:"table:events,partition:toYYYYMMDD(timestamp),columnar"`
	ID          []string    `ch:"id"`
	UserID      []string    `ch:"user_id"`
	SessionID   []string    `ch:"session_id"`
	Timestamp   []time.Time `ch:"timestamp"`
	TimestampMs []int64     `ch:"timestamp_ms"`
	EventType   []string    `ch:"event_type,lc"`
	URL         []string    `ch:"url,lc"`
	Device      []string    `ch:"device,lc"`
	Country     []string    `ch:"country,lc"`
	Revenue     []float64   `ch:"revenue"`
	Source      []string    `ch:"source,lc"`

	IngestedAt []time.Time `ch:"ingested_at,default:now()"`
}

// RollupRow is one day of a warehouse rollup.
type RollupRow struct {
	Day         string  `ch:"day"`
	Events      uint64  `ch:"events"`
	Purchases   uint64  `ch:"purchases"`
	Revenue     float64 `ch:"revenue"`
	UniqueUsers uint64  `ch:"unique_users"`
}

// NewClickHouse connects to ClickHouse and creates the events table.
func NewClickHouse(ctx context.Context, cfg *config.ClickHouseConfig, log *logger.Logger) (ClickHouseDB, error) {
	// The native protocol doesn't use TLS by default.
	db := ch.Connect(
		ch.WithDSN(cfg.GetClickHouseDSN()),
		ch.WithInsecure(true),
	)

	if err := InitEventsTable(ctx, db); err != nil {
		_ = db.Close()
		return ClickHouseDB{}, fmt.Errorf("failed to initialize events table: %w", err)
	}

	log.Info("ClickHouse connection established", zap.String("host", cfg.Host), zap.String("database", cfg.Database))
	return ClickHouseDB{db}, nil
}

// InitEventsTable creates the events table if it doesn't exist
func InitEventsTable(ctx context.Context, db *ch.DB) error {
	_, err := db.NewCreateTable().
		Model((*Event)(nil)).
		Engine("ReplacingMergeTree(ingested_at)").
		Order("timestamp, event_type, id").
		IfNotExists().
		Exec(ctx)

	return err
}

// HealthCheck verifies that the ClickHouse connection is alive
func (c ClickHouseDB) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("ClickHouse connection is not initialized")
	}
	return c.Ping(ctx)
}

// SaveEvents inserts events with ClickHouse's columnar insert format: data
// is sent column by column, matching the storage engine's layout.
func (c ClickHouseDB) SaveEvents(ctx context.Context, events []domain.Event, source domain.DataSource) error {
	if c.DB == nil {
		return fmt.Errorf("database connection is nil")
	}
	if len(events) == 0 {
		return fmt.Errorf("no events to insert")
	}

	_, err := c.NewInsert().
		Model(toColumnar(events, source, time.Now())).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to columnar insert events: %w", err)
	}
	return nil
}

func toColumnar(events []domain.Event, source domain.DataSource, now time.Time) *EventColumnar {
	n := len(events)
	cols := &EventColumnar{
		ID:          make([]string, 0, n),
		UserID:      make([]string, 0, n),
		SessionID:   make([]string, 0, n),
		Timestamp:   make([]time.Time, 0, n),
		TimestampMs: make([]int64, 0, n),
		EventType:   make([]string, 0, n),
		URL:         make([]string, 0, n),
		Device:      make([]string, 0, n),
		Country:     make([]string, 0, n),
		Revenue:     make([]float64, 0, n),
		Source:      make([]string, 0, n),
		IngestedAt:  make([]time.Time, 0, n),
	}
	for _, e := range events {
		cols.ID = append(cols.ID, e.ID)
		cols.UserID = append(cols.UserID, e.UserID)
		cols.SessionID = append(cols.SessionID, e.SessionID)
		cols.Timestamp = append(cols.Timestamp, time.UnixMilli(e.Timestamp).UTC())
		cols.TimestampMs = append(cols.TimestampMs, e.Timestamp)
		cols.EventType = append(cols.EventType, string(e.EventType))
		cols.URL = append(cols.URL, e.URL)
		cols.Device = append(cols.Device, string(e.Device))
		cols.Country = append(cols.Country, e.Country)
		cols.Revenue = append(cols.Revenue, e.RevenueValue())
		cols.Source = append(cols.Source, string(source))
		cols.IngestedAt = append(cols.IngestedAt, now)
	}
	return cols
}

// LoadEvents reads events matching criteria, newest first, at most limit rows.
func (c ClickHouseDB) LoadEvents(ctx context.Context, criteria domain.FilterCriteria, limit int) ([]domain.Event, error) {
	var rows []Event
	query := c.NewSelect().Model(&rows)
	query = applyCriteria(query, criteria)
	err := query.
		OrderExpr("timestamp_ms DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	events := make([]domain.Event, len(rows))
	for i, row := range rows {
		events[i] = fromRow(row)
	}
	return events, nil
}

func fromRow(row Event) domain.Event {
	e := domain.Event{
		ID:        row.ID,
		UserID:    row.UserID,
		SessionID: row.SessionID,
		Timestamp: row.TimestampMs,
		EventType: domain.EventType(row.EventType),
		URL:       row.URL,
		Device:    domain.Device(row.Device),
		Country:   row.Country,
	}
	if e.EventType == domain.EventPurchase && row.Revenue > 0 {
		e.Revenue = domain.Float(row.Revenue)
	}
	return e
}

// DailyRollup groups stored events by day inside ClickHouse.
func (c ClickHouseDB) DailyRollup(ctx context.Context, request domain.WarehouseRollupRequest) ([]RollupRow, error) {
	var results []RollupRow

	// FINAL forces ClickHouse to deduplicate rows before counting.
	query := c.NewSelect().
		TableExpr("events FINAL").
		ColumnExpr("toString(toStartOfDay(timestamp)) AS day").
		ColumnExpr("count() AS events").
		ColumnExpr("countIf(event_type = 'purchase') AS purchases").
		ColumnExpr("sum(revenue) AS revenue").
		ColumnExpr("uniqExact(user_id) AS unique_users")

	if request.EventType != nil && *request.EventType != "" {
		query = query.Where("event_type = ?", *request.EventType)
	}
	if request.From != nil {
		query = query.Where("timestamp_ms >= ?", *request.From)
	}
	if request.To != nil {
		query = query.Where("timestamp_ms <= ?", *request.To)
	}

	err := query.
		GroupExpr("day").
		OrderExpr("day ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily rollup: %w", err)
	}
	return results, nil
}

func applyCriteria(query *ch.SelectQuery, c domain.FilterCriteria) *ch.SelectQuery {
	if c.DateFrom != nil {
		query = query.Where("timestamp_ms >= ?", *c.DateFrom)
	}
	if c.DateTo != nil {
		query = query.Where("timestamp_ms <= ?", *c.DateTo)
	}
	query = whereIn(query, "country", c.Countries)
	query = whereIn(query, "device", c.Devices)
	query = whereIn(query, "event_type", c.EventTypes)
	if c.PurchasesOnly {
		query = query.Where("event_type = ?", string(domain.EventPurchase))
	}
	return query
}

// whereIn adds "column IN (?, ?, ...)" with one placeholder per value.
func whereIn[T ~string](query *ch.SelectQuery, column string, values []T) *ch.SelectQuery {
	if len(values) == 0 {
		return query
	}
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = string(v)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return query.Where(column+" IN ("+placeholders+")", args...)
}
