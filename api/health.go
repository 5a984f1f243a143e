package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"kucukaslan/eventlab/buildinfo"
	"kucukaslan/eventlab/domain"
)

// Checker probes one dependency. A nil Checker marks the dependency as
// disabled, which does not make the service unhealthy.
type Checker func(ctx context.Context) error

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

// NewHealthCheck returns the /health handler
// @Summary Health check endpoint
// @Description Check the health status of the service and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse "Service is healthy"
// @Success 503 {object} domain.HealthResponse "Service is unhealthy"
// @Router /health [get]
func NewHealthCheck(clickhouse, redis Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		response := domain.HealthResponse{
			Timestamp: time.Now(),
			BuildInfo: buildinfo.GetInfo(),
		}

		clickhouseHealthy := probe(ctx, clickhouse, &response.Services.ClickHouse)
		redisHealthy := probe(ctx, redis, &response.Services.Redis)

		if clickhouseHealthy && redisHealthy {
			response.Status = statusHealthy
			return c.Status(fiber.StatusOK).JSON(response)
		}

		response.Status = statusUnhealthy
		return c.Status(fiber.StatusServiceUnavailable).JSON(response)
	}
}

func probe(ctx context.Context, check Checker, status *domain.ServiceStatus) bool {
	if check == nil {
		status.Status = statusDisabled
		return true
	}
	if err := check(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Message = err.Error()
		return false
	}
	status.Status = statusHealthy
	return true
}
