package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/domain"
)

// parseDatasetQuery reads a dataset request from the query string. Filter
// parameters use the share-URL encoding: dateFrom and dateTo in epoch ms,
// comma-separated country, device and event lists, and purchasesOnly.
func parseDatasetQuery(ctx *fiber.Ctx, defaults config.GeneratorConfig) (*domain.DatasetRequest, error) {
	req := &domain.DatasetRequest{
		Source:     domain.DataSource(ctx.Query("source")),
		PropertyID: ctx.Query("propertyId"),
		Start:      ctx.Query("start"),
		End:        ctx.Query("end"),
	}

	var err error
	if req.Seed, err = queryInt64(ctx, "seed", defaults.DefaultSeed); err != nil {
		return nil, err
	}
	days, err := queryInt64(ctx, "days", int64(defaults.DefaultDays))
	if err != nil {
		return nil, err
	}
	count, err := queryInt64(ctx, "count", int64(defaults.DefaultCount))
	if err != nil {
		return nil, err
	}
	req.WindowDays, req.Count = int(days), int(count)

	req.Criteria, err = parseCriteria(ctx)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func parseCriteria(ctx *fiber.Ctx) (domain.FilterCriteria, error) {
	var c domain.FilterCriteria
	var err error
	if c.DateFrom, err = queryOptionalInt64(ctx, "dateFrom"); err != nil {
		return c, err
	}
	if c.DateTo, err = queryOptionalInt64(ctx, "dateTo"); err != nil {
		return c, err
	}

	c.Countries = splitList(ctx.Query("country"))
	for _, d := range splitList(ctx.Query("device")) {
		c.Devices = append(c.Devices, domain.Device(d))
	}
	for _, t := range splitList(ctx.Query("event")) {
		c.EventTypes = append(c.EventTypes, domain.EventType(t))
	}

	if raw := ctx.Query("purchasesOnly"); raw != "" {
		c.PurchasesOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return c, fiber.NewError(fiber.StatusBadRequest, "Invalid 'purchasesOnly' parameter: "+err.Error())
		}
	}
	return c, nil
}

func queryInt64(ctx *fiber.Ctx, key string, fallback int64) (int64, error) {
	v, err := queryOptionalInt64(ctx, key)
	if err != nil || v == nil {
		return fallback, err
	}
	return *v, nil
}

func queryOptionalInt64(ctx *fiber.Ctx, key string) (*int64, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid '"+key+"' parameter: "+err.Error())
	}
	return &v, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
