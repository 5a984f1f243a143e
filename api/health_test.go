package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"kucukaslan/eventlab/domain"
)

func fixedTime() time.Time {
	return time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
}

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name       string
		clickhouse Checker
		redis      Checker
		code       int
		status     string
		chStatus   string
		redisState string
	}{
		{"all disabled", nil, nil, fiber.StatusOK, "healthy", "disabled", "disabled"},
		{"all healthy", ok, ok, fiber.StatusOK, "healthy", "healthy", "healthy"},
		{"redis down", ok, down, fiber.StatusServiceUnavailable, "unhealthy", "healthy", "unhealthy"},
		{"clickhouse down", down, nil, fiber.StatusServiceUnavailable, "unhealthy", "unhealthy", "disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil, NewHealthCheck(tt.clickhouse, tt.redis))
			resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, resp.StatusCode)
			got := decode[domain.HealthResponse](t, body)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.chStatus, got.Services.ClickHouse.Status)
			assert.Equal(t, tt.redisState, got.Services.Redis.Status)
			assert.NotEmpty(t, got.BuildInfo.GoVersion)
		})
	}
}
