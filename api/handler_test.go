package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/csvio"
	"kucukaslan/eventlab/database"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/ga4"
	"kucukaslan/eventlab/logger"
	"kucukaslan/eventlab/services"
	"kucukaslan/eventlab/synth"
)

var limits = config.GeneratorConfig{
	DefaultSeed:  42,
	DefaultDays:  30,
	DefaultCount: 1000,
	MinSeed:      1,
	MaxSeed:      999999,
	MaxDays:      365,
	MaxCount:     1000000,
	TrendDays:    14,
	TopCountries: 5,
}

type stubWarehouse struct {
	err       error
	published []domain.GenerationRequest
	reads     []domain.WarehouseEventsRequest
}

func (s *stubWarehouse) Publish(_ context.Context, req *domain.GenerationRequest) (*domain.PublishResponse, error) {
	if s.err != nil {
		return &domain.PublishResponse{Success: false, Message: s.err.Error()}, s.err
	}
	s.published = append(s.published, *req)
	return &domain.PublishResponse{Success: true, Message: "Events queued for publishing", Enqueued: req.Count}, nil
}

func (s *stubWarehouse) Events(_ context.Context, req *domain.WarehouseEventsRequest) (*domain.EventsResponse, error) {
	if s.err != nil {
		return &domain.EventsResponse{Success: false, Message: s.err.Error()}, s.err
	}
	s.reads = append(s.reads, *req)
	stored := []domain.Event{{
		ID: "evt_0_1763640000000", UserID: "u_1", SessionID: "s_1", Timestamp: 1763640000000,
		EventType: domain.EventPurchase, URL: "/checkout", Device: domain.DeviceMobile, Country: "Germany", Revenue: domain.Float(42),
	}}
	return &domain.EventsResponse{Success: true, Message: "Events retrieved successfully", Total: len(stored), Data: stored}, nil
}

func (s *stubWarehouse) DailyRollup(_ context.Context, _ *domain.WarehouseRollupRequest) (*domain.WarehouseRollupResponse, error) {
	if s.err != nil {
		return &domain.WarehouseRollupResponse{Success: false, Message: s.err.Error()}, s.err
	}
	return &domain.WarehouseRollupResponse{
		Success: true,
		Buckets: []domain.WarehouseBucket{{Day: "2025-11-21 00:00:00", Events: 3}},
	}, nil
}

func newTestApp(t *testing.T, warehouse domain.WarehouseService, health fiber.Handler) *fiber.App {
	t.Helper()
	cfg := &config.Config{Generator: limits, GA4: config.GA4Config{PropertyID: "properties/123456"}}
	svc, err := services.NewEventService(
		cfg,
		synth.New(synth.WithClock(fixedTime)),
		ga4.NewClient(ga4.Credentials{ClientEmail: "reporter@example.com"}, ga4.WithClock(fixedTime)),
		database.NewMemorySummaryCache(32),
		logger.NewNop(),
		services.WithClock(fixedTime),
	)
	require.NoError(t, err)

	if warehouse == nil {
		warehouse = &stubWarehouse{}
	}
	if health == nil {
		health = NewHealthCheck(nil, nil)
	}
	return NewApp(Handlers{
		Events:    NewEventHandler(svc, limits),
		Analytics: NewAnalyticsHandler(svc, limits),
		Warehouse: NewWarehouseHandler(warehouse, limits),
		Health:    health,
	}, logger.NewNop())
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, body
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return do(t, app, req)
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func generate(t *testing.T, app *fiber.App, query string) domain.EventsResponse {
	t.Helper()
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/events?"+query, nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	return decode[domain.EventsResponse](t, body)
}

func TestGetEvents(t *testing.T) {
	app := newTestApp(t, nil, nil)

	got := generate(t, app, "seed=42&days=30&count=50")
	assert.True(t, got.Success)
	assert.Equal(t, 50, got.Total)
	assert.Len(t, got.Data, 50)

	again := generate(t, app, "seed=42&days=30&count=50")
	assert.Equal(t, got.Token, again.Token)
	assert.Equal(t, got.Data, again.Data)
	for _, e := range got.Data {
		assert.Less(t, e.Timestamp, fixedTime().UnixMilli())
	}

	other := generate(t, app, "seed=43&days=30&count=50")
	assert.NotEqual(t, got.Token, other.Token)
}

func TestGetEventsDefaults(t *testing.T) {
	app := newTestApp(t, nil, nil)
	got := generate(t, app, "")
	assert.Equal(t, 1000, got.Total)
}

func TestGetEventsFilters(t *testing.T) {
	app := newTestApp(t, nil, nil)

	got := generate(t, app, "count=300&device=mobile,tablet&event=page_view")
	require.NotEmpty(t, got.Data)
	for _, e := range got.Data {
		assert.Contains(t, []domain.Device{domain.DeviceMobile, domain.DeviceTablet}, e.Device)
		assert.Equal(t, domain.EventPageView, e.EventType)
	}

	got = generate(t, app, "count=300&purchasesOnly=true")
	for _, e := range got.Data {
		assert.Equal(t, domain.EventPurchase, e.EventType)
		assert.NotNil(t, e.Revenue)
	}
}

func TestGetEventsRejectsBadQueries(t *testing.T) {
	app := newTestApp(t, nil, nil)
	for _, query := range []string{
		"seed=abc",
		"seed=0",
		"days=0",
		"days=400",
		"count=-1",
		"device=watch",
		"event=hover",
		"purchasesOnly=maybe",
		"dateFrom=10&dateTo=5",
	} {
		t.Run(query, func(t *testing.T) {
			resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/events?"+query, nil))
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			errResp := decode[domain.ErrorResponse](t, body)
			assert.False(t, errResp.Success)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestFilterEvents(t *testing.T) {
	app := newTestApp(t, nil, nil)
	events := generate(t, app, "count=200").Data

	resp, body := postJSON(t, app, "/api/events/filter", domain.FilterRequest{
		Events:   events,
		Criteria: domain.FilterCriteria{Countries: []string{"Germany"}},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	got := decode[domain.EventsResponse](t, body)
	for _, e := range got.Data {
		assert.Equal(t, "Germany", e.Country)
	}

	bad := events[0]
	bad.EventType = "hover"
	resp, _ = postJSON(t, app, "/api/events/filter", domain.FilterRequest{Events: []domain.Event{bad}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMalformedBody(t *testing.T) {
	app := newTestApp(t, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/kpis", strings.NewReader("{"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, _ := do(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostKPIs(t *testing.T) {
	app := newTestApp(t, nil, nil)
	events := generate(t, app, "seed=7&count=400").Data

	resp, body := postJSON(t, app, "/api/analytics/kpis", domain.KPIRequest{Events: events})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	first := decode[domain.KPIResponse](t, body)
	assert.False(t, first.Cached)
	assert.Greater(t, first.KPIs.UniqueUsers, 0)
	assert.LessOrEqual(t, first.KPIs.ConversionRate, 1.0)

	_, body = postJSON(t, app, "/api/analytics/kpis", domain.KPIRequest{Events: events})
	second := decode[domain.KPIResponse](t, body)
	assert.True(t, second.Cached)
	assert.Equal(t, first.KPIs, second.KPIs)

	resp, body = postJSON(t, app, "/api/analytics/kpis", domain.KPIRequest{})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.KPISummary{}, decode[domain.KPIResponse](t, body).KPIs)
}

func TestPostRollup(t *testing.T) {
	app := newTestApp(t, nil, nil)
	events := generate(t, app, "days=14&count=300").Data

	resp, body := postJSON(t, app, "/api/analytics/rollup", domain.RollupRequest{Events: events, WindowDays: 14})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	buckets := decode[domain.RollupResponse](t, body).Buckets
	require.Len(t, buckets, 14)
	assert.Equal(t, fixedTime().UnixMilli(), buckets[13].End)
	total := 0
	for _, b := range buckets {
		total += b.Events
	}
	assert.Equal(t, 300, total)

	resp, _ = postJSON(t, app, "/api/analytics/rollup", domain.RollupRequest{Events: events, WindowDays: 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostBreakdown(t *testing.T) {
	app := newTestApp(t, nil, nil)
	events := generate(t, app, "count=300").Data

	resp, body := postJSON(t, app, "/api/analytics/breakdown", domain.BreakdownRequest{Events: events, Field: domain.DimensionDevice})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	got := decode[domain.BreakdownResponse](t, body)
	assert.Len(t, got.Entries, 3)
	for i := 1; i < len(got.Entries); i++ {
		assert.GreaterOrEqual(t, got.Entries[i-1].Count, got.Entries[i].Count)
	}

	resp, _ = postJSON(t, app, "/api/analytics/breakdown", domain.BreakdownRequest{Events: events, Field: "browser"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

const sampleCSV = "id,userId,sessionId,timestamp,eventType,url,device,country,revenue\n" +
	"e1,u1,s1,2025-11-20T10:00:00.000Z,purchase,/checkout,desktop,Germany,42\n" +
	"e2,u2,s2,2025-11-20T11:00:00.000Z,click,/home,mobile,Japan,\n"

func TestImportRawBody(t *testing.T) {
	app := newTestApp(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/events/import", strings.NewReader(sampleCSV))
	req.Header.Set(fiber.HeaderContentType, "text/csv")
	resp, body := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	got := decode[domain.ImportResponse](t, body)
	assert.Equal(t, 2, got.Accepted)
	assert.Equal(t, 0, got.Dropped)
}

func TestImportMultipart(t *testing.T) {
	app := newTestApp(t, nil, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "events.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/events/import", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, body := do(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 2, decode[domain.ImportResponse](t, body).Accepted)
}

func TestImportFailures(t *testing.T) {
	app := newTestApp(t, nil, nil)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/api/events/import", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	invalid := "id,userId\nx,\n"
	req := httptest.NewRequest(http.MethodPost, "/api/events/import", strings.NewReader(invalid))
	req.Header.Set(fiber.HeaderContentType, "text/csv")
	resp, body := do(t, app, req)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, decode[domain.ErrorResponse](t, body).Success)
}

func TestExportEvents(t *testing.T) {
	app := newTestApp(t, nil, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/events/export?count=20", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Equal(t, "20", resp.Header.Get("X-Total-Count"))

	events, report, err := csvio.Import(bytes.NewReader(body), fixedTime())
	require.NoError(t, err)
	assert.Len(t, events, 20)
	assert.Equal(t, 0, report.Dropped)
}

func TestGetDashboard(t *testing.T) {
	app := newTestApp(t, nil, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard?seed=42&count=800&country=Germany,France", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	got := decode[domain.DashboardResponse](t, body)
	assert.Equal(t, domain.SourceSimulated, got.Source)
	assert.Equal(t, 800, got.Total)
	assert.Len(t, got.Trend, 14)
	assert.LessOrEqual(t, len(got.Countries), 2)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard?source=ga4&start=7daysAgo", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, domain.SourceGA4, decode[domain.DashboardResponse](t, body).Source)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard?source=segment", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGA4Endpoints(t *testing.T) {
	app := newTestApp(t, nil, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/ga4/events?start=3daysAgo&seed=9", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	got := decode[domain.EventsResponse](t, body)
	require.NotEmpty(t, got.Data)
	for _, e := range got.Data {
		require.NoError(t, e.Validate())
	}

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/ga4/events?start=yesterday", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/ga4/series?start=3daysAgo&seed=9", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	series := decode[domain.TrafficSeriesResponse](t, body)
	require.Len(t, series.Days, 3)
	sessions := 0
	for _, day := range series.Days {
		sessions += day.Sessions
	}
	assert.Equal(t, got.Total, sessions)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/ga4/series?start=yesterday", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/ga4/realtime", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.GreaterOrEqual(t, decode[domain.EventsResponse](t, body).Total, 2)
}

func TestWarehouseEndpoints(t *testing.T) {
	wh := &stubWarehouse{}
	app := newTestApp(t, wh, nil)

	resp, body := postJSON(t, app, "/api/warehouse/publish", domain.GenerationRequest{Seed: 5, WindowDays: 7, Count: 100})
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode, string(body))
	assert.Equal(t, 100, decode[domain.PublishResponse](t, body).Enqueued)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodPost, "/api/warehouse/publish", nil))
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	require.Len(t, wh.published, 2)
	assert.Equal(t, domain.GenerationRequest{Seed: 42, WindowDays: 30, Count: 1000}, wh.published[1])

	resp, _ = postJSON(t, app, "/api/warehouse/publish", domain.GenerationRequest{Seed: 5, WindowDays: 0, Count: 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/warehouse/rollup?eventType=purchase&from=1", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Len(t, decode[domain.WarehouseRollupResponse](t, body).Buckets, 1)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/warehouse/rollup?from=abc", nil))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWarehouseEvents(t *testing.T) {
	wh := &stubWarehouse{}
	app := newTestApp(t, wh, nil)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/warehouse/events?limit=5&device=mobile&purchasesOnly=true", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	got := decode[domain.EventsResponse](t, body)
	assert.Equal(t, 1, got.Total)
	require.Len(t, wh.reads, 1)
	assert.Equal(t, 5, wh.reads[0].Limit)
	assert.Equal(t, []domain.Device{domain.DeviceMobile}, wh.reads[0].Criteria.Devices)
	assert.True(t, wh.reads[0].Criteria.PurchasesOnly)

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/warehouse/events", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, defaultWarehouseLimit, wh.reads[1].Limit)

	for _, query := range []string{"limit=0", "limit=abc", "limit=2000000", "device=watch"} {
		resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/warehouse/events?"+query, nil))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, query)
	}
	assert.Len(t, wh.reads, 2)

	app = newTestApp(t, &stubWarehouse{err: services.ErrWarehouseDisabled}, nil)
	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/warehouse/events", nil))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestWarehouseUnavailable(t *testing.T) {
	for _, err := range []error{services.ErrWarehouseDisabled, services.ErrBufferFull} {
		app := newTestApp(t, &stubWarehouse{err: err}, nil)

		resp, _ := postJSON(t, app, "/api/warehouse/publish", domain.GenerationRequest{Seed: 5, WindowDays: 7, Count: 10})
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	}

	app := newTestApp(t, &stubWarehouse{err: errors.New("connection refused")}, nil)
	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/warehouse/rollup", nil))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, nil, nil)
	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, decode[domain.ErrorResponse](t, body).Success)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
