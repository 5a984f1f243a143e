package api

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/validations"
)

var (
	_ EventHandler     = &eventHandler{}
	_ AnalyticsHandler = &eventHandler{}
)

type eventHandler struct {
	eventService domain.EventService
	limits       config.GeneratorConfig
}

// GetEvents generates a reproducible event collection
// @Summary Generate events
// @Description Generate a deterministic synthetic event collection for a seed, optionally filtered
// @Tags Events
// @Produce json
// @Param seed query int false "Generator seed" default(42)
// @Param days query int false "Window in days ending now" default(30)
// @Param count query int false "Number of events" default(1000)
// @Param dateFrom query int false "Inclusive lower bound (epoch ms)"
// @Param dateTo query int false "Inclusive upper bound (epoch ms)"
// @Param country query string false "Comma-separated countries"
// @Param device query string false "Comma-separated devices"
// @Param event query string false "Comma-separated event types"
// @Param purchasesOnly query bool false "Keep purchases only"
// @Success 200 {object} domain.EventsResponse "Events generated successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /api/events [get]
func (e eventHandler) GetEvents(ctx *fiber.Ctx) error {
	req, err := parseDatasetQuery(ctx, e.limits)
	if err != nil {
		return fail(ctx, "", err)
	}
	req.Source = domain.SourceSimulated
	return e.generate(ctx, req)
}

func (e eventHandler) generate(ctx *fiber.Ctx, req *domain.DatasetRequest) error {
	if err := validations.ValidateDatasetRequest(req, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}
	resp, err := e.eventService.Generate(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// FilterEvents applies filter criteria to a supplied collection
// @Summary Filter events
// @Description Keep the events matching every supplied criterion
// @Tags Events
// @Accept json
// @Produce json
// @Param request body domain.FilterRequest true "Events and criteria"
// @Success 200 {object} domain.EventsResponse "Events filtered successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Router /api/events/filter [post]
func (e eventHandler) FilterEvents(ctx *fiber.Ctx) error {
	var req domain.FilterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx, err)
	}
	if err := validations.ValidateFilterCriteria(&req.Criteria); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}
	if err := validations.ValidateEvents(req.Events, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := e.eventService.Filter(ctx.UserContext(), &req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// ImportEvents parses an uploaded CSV file
// @Summary Import events from CSV
// @Description Parse a CSV upload (multipart field "file" or a raw text/csv body). Invalid rows are dropped; a file without valid rows is rejected.
// @Tags Events
// @Accept mpfd
// @Accept text/csv
// @Produce json
// @Param file formData file false "CSV file"
// @Success 200 {object} domain.ImportResponse "Events imported successfully"
// @Failure 400 {object} domain.ErrorResponse "No file supplied"
// @Failure 422 {object} domain.ErrorResponse "No valid rows"
// @Router /api/events/import [post]
func (e eventHandler) ImportEvents(ctx *fiber.Ctx) error {
	var reader io.Reader
	if header, err := ctx.FormFile("file"); err == nil {
		file, err := header.Open()
		if err != nil {
			return fail(ctx, "Failed to open upload: ", err)
		}
		defer file.Close()
		reader = file
	} else {
		body := ctx.Body()
		if len(body) == 0 {
			return fail(ctx, "", fiber.NewError(fiber.StatusBadRequest, "csv file is required"))
		}
		reader = bytes.NewReader(body)
	}

	resp, err := e.eventService.Import(ctx.UserContext(), reader)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// ExportEvents downloads a generated collection as CSV
// @Summary Export events as CSV
// @Description Generate (and filter) a collection and return it as a CSV attachment
// @Tags Events
// @Produce text/csv
// @Param seed query int false "Generator seed" default(42)
// @Param days query int false "Window in days ending now" default(30)
// @Param count query int false "Number of events" default(1000)
// @Param source query string false "simulated or ga4" default(simulated)
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Router /api/events/export [get]
func (e eventHandler) ExportEvents(ctx *fiber.Ctx) error {
	req, err := parseDatasetQuery(ctx, e.limits)
	if err != nil {
		return fail(ctx, "", err)
	}
	if err := validations.ValidateDatasetRequest(req, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	var buf bytes.Buffer
	n, err := e.eventService.Export(ctx.UserContext(), &buf, req)
	if err != nil {
		return fail(ctx, "", err)
	}

	ctx.Attachment("events-" + time.Now().UTC().Format(time.DateOnly) + ".csv")
	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set("X-Total-Count", strconv.Itoa(n))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// GetDashboard computes the dashboard for one dataset
// @Summary Dashboard
// @Description Produce a dataset, filter it, and return its KPIs, daily trend and breakdowns
// @Tags Analytics
// @Produce json
// @Param source query string false "simulated or ga4" default(simulated)
// @Param seed query int false "Generator seed" default(42)
// @Param days query int false "Window in days ending now" default(30)
// @Param count query int false "Number of events" default(1000)
// @Param propertyId query string false "GA4 property (ga4 source)"
// @Param start query string false "GA4 start date (ga4 source)"
// @Param end query string false "GA4 end date (ga4 source)"
// @Param dateFrom query int false "Inclusive lower bound (epoch ms)"
// @Param dateTo query int false "Inclusive upper bound (epoch ms)"
// @Param country query string false "Comma-separated countries"
// @Param device query string false "Comma-separated devices"
// @Param event query string false "Comma-separated event types"
// @Param purchasesOnly query bool false "Keep purchases only"
// @Success 200 {object} domain.DashboardResponse "Dashboard computed successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 401 {object} domain.ErrorResponse "GA4 authentication failed"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /api/dashboard [get]
func (e eventHandler) GetDashboard(ctx *fiber.Ctx) error {
	req, err := parseDatasetQuery(ctx, e.limits)
	if err != nil {
		return fail(ctx, "", err)
	}
	if err := validations.ValidateDatasetRequest(req, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := e.eventService.Dashboard(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// GetGA4Events fetches events from the mock GA4 property
// @Summary Fetch GA4 events
// @Description Simulated GA4 Data API report expanded into events
// @Tags GA4
// @Produce json
// @Param propertyId query string false "GA4 property, defaults to the configured one"
// @Param start query string false "NdaysAgo, today or YYYY-MM-DD" default(30daysAgo)
// @Param end query string false "today or YYYY-MM-DD" default(today)
// @Param seed query int false "Simulation seed" default(42)
// @Success 200 {object} domain.EventsResponse "Events generated successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 401 {object} domain.ErrorResponse "GA4 authentication failed"
// @Router /api/ga4/events [get]
func (e eventHandler) GetGA4Events(ctx *fiber.Ctx) error {
	req, err := parseDatasetQuery(ctx, e.limits)
	if err != nil {
		return fail(ctx, "", err)
	}
	req.Source = domain.SourceGA4
	if req.Start == "" {
		req.Start = strconv.Itoa(req.WindowDays) + "daysAgo"
	}
	return e.generate(ctx, req)
}

// GetGA4Series fetches the mock GA4 daily traffic report
// @Summary Fetch GA4 traffic series
// @Description Daily sessions, users, page views, bounce rate, conversions and revenue behind /api/ga4/events
// @Tags GA4
// @Produce json
// @Param propertyId query string false "GA4 property, defaults to the configured one"
// @Param start query string false "NdaysAgo, today or YYYY-MM-DD" default(30daysAgo)
// @Param end query string false "today or YYYY-MM-DD" default(today)
// @Param seed query int false "Simulation seed" default(42)
// @Success 200 {object} domain.TrafficSeriesResponse "Traffic series fetched successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 401 {object} domain.ErrorResponse "GA4 authentication failed"
// @Router /api/ga4/series [get]
func (e eventHandler) GetGA4Series(ctx *fiber.Ctx) error {
	req, err := parseDatasetQuery(ctx, e.limits)
	if err != nil {
		return fail(ctx, "", err)
	}
	req.Source = domain.SourceGA4
	if err := validations.ValidateDatasetRequest(req, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := e.eventService.TrafficSeries(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// GetGA4Realtime fetches the last 30 minutes of mock GA4 events
// @Summary Fetch GA4 realtime events
// @Tags GA4
// @Produce json
// @Param propertyId query string false "GA4 property, defaults to the configured one"
// @Param seed query int false "Simulation seed" default(42)
// @Success 200 {object} domain.EventsResponse "Realtime events fetched successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Router /api/ga4/realtime [get]
func (e eventHandler) GetGA4Realtime(ctx *fiber.Ctx) error {
	seed, err := queryInt64(ctx, "seed", e.limits.DefaultSeed)
	if err != nil {
		return fail(ctx, "", err)
	}
	req := &domain.DatasetRequest{
		Source:            domain.SourceGA4,
		GenerationRequest: domain.GenerationRequest{Seed: seed},
		PropertyID:        ctx.Query("propertyId"),
	}

	resp, err := e.eventService.Realtime(ctx.UserContext(), req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// PostKPIs computes the KPI summary of a collection
// @Summary KPI summary
// @Description Unique users and sessions, conversion rate, revenue and date span of the (filtered) collection
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body domain.KPIRequest true "Events and optional criteria"
// @Success 200 {object} domain.KPIResponse "KPIs computed successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Router /api/analytics/kpis [post]
func (e eventHandler) PostKPIs(ctx *fiber.Ctx) error {
	var req domain.KPIRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx, err)
	}
	if err := validations.ValidateFilterCriteria(&req.Criteria); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}
	if err := validations.ValidateEvents(req.Events, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := e.eventService.KPIs(ctx.UserContext(), &req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// PostRollup buckets a collection by day
// @Summary Daily rollup
// @Description Per-day event, purchase and revenue totals for the windowDays days before referenceTime (0 = now)
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body domain.RollupRequest true "Events and window"
// @Success 200 {object} domain.RollupResponse "Rollup computed successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Router /api/analytics/rollup [post]
func (e eventHandler) PostRollup(ctx *fiber.Ctx) error {
	var req domain.RollupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx, err)
	}
	if err := validations.ValidateRollupRequest(&req, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := e.eventService.Rollup(ctx.UserContext(), &req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// PostBreakdown groups a collection by one dimension
// @Summary Categorical breakdown
// @Description Counts and percentages per value of device, country, eventType or url, most frequent first
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body domain.BreakdownRequest true "Events, field and optional topN"
// @Success 200 {object} domain.BreakdownResponse "Breakdown computed successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Router /api/analytics/breakdown [post]
func (e eventHandler) PostBreakdown(ctx *fiber.Ctx) error {
	var req domain.BreakdownRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx, err)
	}
	if err := validations.ValidateBreakdownRequest(&req, e.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := e.eventService.Breakdown(ctx.UserContext(), &req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

func badBody(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(domain.ErrorResponse{
		Success: false,
		Message: "Invalid request body: " + err.Error(),
	})
}

func NewEventHandler(eventService domain.EventService, limits config.GeneratorConfig) EventHandler {
	return &eventHandler{eventService: eventService, limits: limits}
}

func NewAnalyticsHandler(eventService domain.EventService, limits config.GeneratorConfig) AnalyticsHandler {
	return &eventHandler{eventService: eventService, limits: limits}
}
