package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"kucukaslan/eventlab/logger"
)

const (
	idleTimeout = 5 * time.Second
	// Analytics endpoints take whole event collections in the body.
	bodyLimit = 64 << 20
)

// Handlers groups everything NewApp routes to.
type Handlers struct {
	Events    EventHandler
	Analytics AnalyticsHandler
	Warehouse WarehouseHandler
	Health    fiber.Handler
}

// NewApp builds the fiber application with middleware and routes.
func NewApp(h Handlers, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:  idleTimeout,
		BodyLimit:    bodyLimit,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(RequestLogger(log))

	// redirect to swagger docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/", fiber.StatusMovedPermanently)
	})

	app.Get("/health", h.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	apiGroup.Get("/events", h.Events.GetEvents)
	apiGroup.Post("/events/filter", h.Events.FilterEvents)
	apiGroup.Post("/events/import", h.Events.ImportEvents)
	apiGroup.Get("/events/export", h.Events.ExportEvents)
	apiGroup.Get("/dashboard", h.Events.GetDashboard)
	apiGroup.Get("/ga4/events", h.Events.GetGA4Events)
	apiGroup.Get("/ga4/realtime", h.Events.GetGA4Realtime)
	apiGroup.Get("/ga4/series", h.Events.GetGA4Series)

	apiGroup.Post("/analytics/kpis", h.Analytics.PostKPIs)
	apiGroup.Post("/analytics/rollup", h.Analytics.PostRollup)
	apiGroup.Post("/analytics/breakdown", h.Analytics.PostBreakdown)

	apiGroup.Post("/warehouse/publish", h.Warehouse.PostPublish)
	apiGroup.Get("/warehouse/events", h.Warehouse.GetEvents)
	apiGroup.Get("/warehouse/rollup", h.Warehouse.GetRollup)

	return app
}
