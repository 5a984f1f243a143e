package api

import (
	"github.com/gofiber/fiber/v2"
)

type EventHandler interface {
	GetEvents(ctx *fiber.Ctx) error
	FilterEvents(ctx *fiber.Ctx) error
	ImportEvents(ctx *fiber.Ctx) error
	ExportEvents(ctx *fiber.Ctx) error
	GetDashboard(ctx *fiber.Ctx) error
	GetGA4Events(ctx *fiber.Ctx) error
	GetGA4Realtime(ctx *fiber.Ctx) error
	GetGA4Series(ctx *fiber.Ctx) error
}

type AnalyticsHandler interface {
	PostKPIs(ctx *fiber.Ctx) error
	PostRollup(ctx *fiber.Ctx) error
	PostBreakdown(ctx *fiber.Ctx) error
}

type WarehouseHandler interface {
	PostPublish(ctx *fiber.Ctx) error
	GetEvents(ctx *fiber.Ctx) error
	GetRollup(ctx *fiber.Ctx) error
}
