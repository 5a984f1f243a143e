// Package csvio reads and writes event collections as CSV.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"kucukaslan/eventlab/domain"
)

// Header is the column order Export writes.
var Header = []string{"id", "userId", "sessionId", "timestamp", "eventType", "url", "device", "country", "revenue"}

// columnAliases maps accepted header spellings to canonical column names.
var columnAliases = map[string]string{
	"event":      "eventType",
	"event_type": "eventType",
	"type":       "eventType",
	"user_id":    "userId",
	"session_id": "sessionId",
}

var requiredColumns = []string{"id", "userId", "sessionId", "timestamp", "eventType", "url", "device", "country"}

// timestampLayouts are tried in order for the timestamp column.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// ImportReport counts the rows an import kept and dropped.
type ImportReport struct {
	Accepted int
	Dropped  int
}

// Export writes events with a header row. Timestamps are RFC 3339 in UTC
// with millisecond precision; absent revenue is an empty cell.
func Export(w io.Writer, events []domain.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	row := make([]string, len(Header))
	for _, e := range events {
		row[0] = e.ID
		row[1] = e.UserID
		row[2] = e.SessionID
		row[3] = FormatTimestamp(e.Timestamp)
		row[4] = string(e.EventType)
		row[5] = e.URL
		row[6] = string(e.Device)
		row[7] = e.Country
		row[8] = ""
		if e.Revenue != nil {
			row[8] = strconv.FormatFloat(*e.Revenue, 'f', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write event %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Import parses events from CSV with a header row; column order is free.
//
// Rows missing a required field, naming an unknown event type or device,
// or recording a purchase without positive revenue are dropped. Revenue on
// non-purchase rows is discarded. Unparseable timestamps become now and
// unparseable revenue is unset. A dataset with no valid rows fails with
// domain.ErrImportValidation.
func Import(r io.Reader, now time.Time) ([]domain.Event, ImportReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ImportReport{}, fmt.Errorf("%w: empty input", domain.ErrImportValidation)
	}
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("%w: unreadable csv header: %v", domain.ErrImportValidation, err)
	}
	columns := indexColumns(header)

	var (
		events []domain.Event
		report ImportReport
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("%w: csv parsing error: %v", domain.ErrImportValidation, err)
		}
		if isBlank(record) {
			continue
		}

		e, ok := parseRow(record, columns, now)
		if !ok {
			report.Dropped++
			continue
		}
		events = append(events, e)
		report.Accepted++
	}

	if len(events) == 0 {
		return nil, report, fmt.Errorf("%w: %d rows dropped", domain.ErrImportValidation, report.Dropped)
	}
	return events, report, nil
}

// FormatTimestamp renders epoch milliseconds as RFC 3339 UTC.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ParseTimestamp accepts RFC 3339 variants, plain dates and epoch
// milliseconds.
func ParseTimestamp(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ms, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

func parseRow(record []string, columns map[string]int, now time.Time) (domain.Event, bool) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for _, name := range requiredColumns {
		if field(name) == "" {
			return domain.Event{}, false
		}
	}

	ts, ok := ParseTimestamp(field("timestamp"))
	if !ok {
		ts = now.UnixMilli()
	}
	e := domain.Event{
		ID:        field("id"),
		UserID:    field("userId"),
		SessionID: field("sessionId"),
		Timestamp: ts,
		EventType: domain.EventType(field("eventType")),
		URL:       field("url"),
		Device:    domain.Device(field("device")),
		Country:   field("country"),
	}
	if !e.EventType.Valid() || !e.Device.Valid() {
		return domain.Event{}, false
	}

	if e.EventType == domain.EventPurchase {
		revenue, err := strconv.ParseFloat(field("revenue"), 64)
		if err != nil || revenue <= 0 || math.IsInf(revenue, 0) || math.IsNaN(revenue) {
			return domain.Event{}, false
		}
		e.Revenue = domain.Float(revenue)
	}
	return e, true
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
