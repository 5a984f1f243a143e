package api

import (
	"github.com/gofiber/fiber/v2"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/validations"
)

var _ WarehouseHandler = &warehouseHandler{}

const defaultWarehouseLimit = 100

type warehouseHandler struct {
	warehouseService domain.WarehouseService
	limits           config.GeneratorConfig
}

// PostPublish queues a generated collection for the ClickHouse warehouse
// @Summary Publish events to the warehouse
// @Description Generate a collection and queue it for batched columnar insertion. Events already published are skipped.
// @Tags Warehouse
// @Accept json
// @Produce json
// @Param request body domain.GenerationRequest true "Generation parameters"
// @Success 202 {object} domain.PublishResponse "Events queued for publishing"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 503 {object} domain.ErrorResponse "Buffer full or warehouse disabled"
// @Router /api/warehouse/publish [post]
func (w warehouseHandler) PostPublish(ctx *fiber.Ctx) error {
	req := domain.GenerationRequest{
		Seed:       w.limits.DefaultSeed,
		WindowDays: w.limits.DefaultDays,
		Count:      w.limits.DefaultCount,
	}
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return badBody(ctx, err)
		}
	}
	if err := validations.ValidateGenerationRequest(&req, w.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := w.warehouseService.Publish(ctx.UserContext(), &req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(resp)
}

// GetEvents reads published events back from ClickHouse
// @Summary Read warehouse events
// @Description Stored events matching the filter, newest first. Filters use the same query encoding as /api/events.
// @Tags Warehouse
// @Produce json
// @Param limit query int false "Maximum rows returned" default(100)
// @Param dateFrom query int false "Start timestamp (epoch ms)"
// @Param dateTo query int false "End timestamp (epoch ms)"
// @Param country query string false "Comma-separated countries"
// @Param device query string false "Comma-separated devices"
// @Param event query string false "Comma-separated event types"
// @Param purchasesOnly query bool false "Only purchases"
// @Success 200 {object} domain.EventsResponse "Events retrieved successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 503 {object} domain.ErrorResponse "Warehouse disabled"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /api/warehouse/events [get]
func (w warehouseHandler) GetEvents(ctx *fiber.Ctx) error {
	limit, err := queryInt64(ctx, "limit", defaultWarehouseLimit)
	if err != nil {
		return fail(ctx, "", err)
	}
	criteria, err := parseCriteria(ctx)
	if err != nil {
		return fail(ctx, "", err)
	}
	req := domain.WarehouseEventsRequest{Criteria: criteria, Limit: int(limit)}
	if err := validations.ValidateWarehouseEventsRequest(&req, w.limits); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := w.warehouseService.Events(ctx.UserContext(), &req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// GetRollup retrieves daily rollups computed by ClickHouse
// @Summary Warehouse daily rollup
// @Description Per-day events, purchases, revenue and unique users over the published events
// @Tags Warehouse
// @Produce json
// @Param eventType query string false "Event type filter"
// @Param from query int false "Start timestamp (epoch ms)"
// @Param to query int false "End timestamp (epoch ms)"
// @Success 200 {object} domain.WarehouseRollupResponse "Rollup retrieved successfully"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 503 {object} domain.ErrorResponse "Warehouse disabled"
// @Failure 500 {object} domain.ErrorResponse "Internal server error"
// @Router /api/warehouse/rollup [get]
func (w warehouseHandler) GetRollup(ctx *fiber.Ctx) error {
	var req domain.WarehouseRollupRequest
	var err error

	if eventType := ctx.Query("eventType"); eventType != "" {
		req.EventType = &eventType
	}
	if req.From, err = queryOptionalInt64(ctx, "from"); err != nil {
		return fail(ctx, "", err)
	}
	if req.To, err = queryOptionalInt64(ctx, "to"); err != nil {
		return fail(ctx, "", err)
	}
	if err := validations.ValidateWarehouseRollupRequest(&req); err != nil {
		return fail(ctx, "Validation failed: ", err)
	}

	resp, err := w.warehouseService.DailyRollup(ctx.UserContext(), &req)
	if err != nil {
		return fail(ctx, "", err)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

func NewWarehouseHandler(warehouseService domain.WarehouseService, limits config.GeneratorConfig) WarehouseHandler {
	return &warehouseHandler{warehouseService: warehouseService, limits: limits}
}
