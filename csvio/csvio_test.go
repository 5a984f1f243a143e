package csvio

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/synth"
)

var importTime = time.Date(2025, 11, 22, 9, 0, 0, 0, time.UTC)

func TestExportThenImportPreservesEvents(t *testing.T) {
	s := synth.New(synth.WithClock(func() time.Time { return importTime }))
	events, err := s.Generate(context.Background(), 42, 30, 300)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, events))

	imported, report, err := Import(&buf, importTime)
	require.NoError(t, err)
	assert.Equal(t, ImportReport{Accepted: 300}, report)
	assert.Equal(t, events, imported)
}

func TestExport_Format(t *testing.T) {
	events := []domain.Event{{
		ID: "evt_1", UserID: "u_1", SessionID: "s_1",
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 6_000_000, time.UTC).UnixMilli(),
		EventType: domain.EventPurchase, URL: "/checkout", Device: domain.DeviceMobile,
		Country: "Germany", Revenue: domain.Float(129.5),
	}, {
		ID: "evt_2", UserID: "u_2", SessionID: "s_2", Timestamp: 0,
		EventType: domain.EventClick, URL: "/home", Device: domain.DeviceDesktop, Country: "Japan",
	}}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, events))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,userId,sessionId,timestamp,eventType,url,device,country,revenue", lines[0])
	assert.Equal(t, "evt_1,u_1,s_1,2025-01-02T03:04:05.006Z,purchase,/checkout,mobile,Germany,129.5", lines[1])
	assert.Equal(t, "evt_2,u_2,s_2,1970-01-01T00:00:00.000Z,click,/home,desktop,Japan,", lines[2])
}

func TestImport_DropsInvalidRows(t *testing.T) {
	input := strings.Join([]string{
		"event,id,userId,sessionId,timestamp,url,device,country,revenue",
		"page_view,e1,u1,s1,2025-11-20T10:00:00Z,/home,desktop,US,",
		"click,e2,,s2,2025-11-20T10:00:00Z,/home,desktop,US,",    // missing userId
		"purchase,e3,u3,s3,2025-11-20,/checkout,mobile,US,abc",   // purchase without revenue
		"purchase,e4,u4,s4,2025-11-20 08:30:00,/checkout,tablet,US,42",
		"hover,e5,u5,s5,2025-11-20,/home,desktop,US,",            // unknown type
		"click,e6,u6,s6,2025-11-20,/home,watch,US,",              // unknown device
		"signup,e7,u7,s7,not-a-date,/signup,mobile,US,99",        // revenue discarded, ts defaults
		",,,,,,,,",
	}, "\n")

	events, report, err := Import(strings.NewReader(input), importTime)
	require.NoError(t, err)
	assert.Equal(t, ImportReport{Accepted: 3, Dropped: 4}, report)
	require.Len(t, events, 3)

	assert.Equal(t, "e1", events[0].ID)
	assert.Nil(t, events[0].Revenue)

	assert.Equal(t, "e4", events[1].ID)
	require.NotNil(t, events[1].Revenue)
	assert.Equal(t, 42.0, *events[1].Revenue)
	assert.Equal(t, time.Date(2025, 11, 20, 8, 30, 0, 0, time.UTC).UnixMilli(), events[1].Timestamp)

	assert.Equal(t, "e7", events[2].ID)
	assert.Nil(t, events[2].Revenue)
	assert.Equal(t, importTime.UnixMilli(), events[2].Timestamp)

	for _, e := range events {
		assert.NoError(t, e.Validate())
	}
}

func TestImport_NoValidRows(t *testing.T) {
	_, report, err := Import(strings.NewReader("id,userId\n1,u1\n"), importTime)
	assert.True(t, errors.Is(err, domain.ErrImportValidation))
	assert.Equal(t, 1, report.Dropped)

	_, _, err = Import(strings.NewReader(""), importTime)
	assert.True(t, errors.Is(err, domain.ErrImportValidation))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1732233600000", 1732233600000, true},
		{"2024-11-22T00:00:00Z", 1732233600000, true},
		{"2024-11-22T00:00:00.000Z", 1732233600000, true},
		{"2024-11-22T03:00:00+03:00", 1732233600000, true},
		{"2024-11-22", 1732233600000, true},
		{"2024-11-22 00:00:00", 1732233600000, true},
		{"yesterday", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTimestamp(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
