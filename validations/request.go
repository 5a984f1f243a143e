package validations

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"kucukaslan/eventlab/config"
	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/metrics"
)

func ValidateGenerationRequest(request *domain.GenerationRequest, limits config.GeneratorConfig) error {
	if request == nil {
		return fiber.NewError(fiber.StatusBadRequest, "generation request is required")
	}
	if request.Seed < limits.MinSeed || request.Seed > limits.MaxSeed {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("seed must be between %d and %d", limits.MinSeed, limits.MaxSeed))
	}
	if request.WindowDays < 1 || request.WindowDays > limits.MaxDays {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("days must be between 1 and %d", limits.MaxDays))
	}
	if request.Count < 0 || request.Count > limits.MaxCount {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("count must be between 0 and %d", limits.MaxCount))
	}
	return nil
}

func ValidateDatasetRequest(request *domain.DatasetRequest, limits config.GeneratorConfig) error {
	if request == nil {
		return fiber.NewError(fiber.StatusBadRequest, "dataset request is required")
	}
	switch request.Source {
	case "", domain.SourceSimulated:
		if err := ValidateGenerationRequest(&request.GenerationRequest, limits); err != nil {
			return err
		}
	case domain.SourceGA4:
		if request.Start == "" && (request.WindowDays < 1 || request.WindowDays > limits.MaxDays) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("days must be between 1 and %d", limits.MaxDays))
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest, "source must be one of simulated, ga4")
	}
	return ValidateFilterCriteria(&request.Criteria)
}

func ValidateFilterCriteria(criteria *domain.FilterCriteria) error {
	if criteria.DateFrom != nil && *criteria.DateFrom < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "dateFrom must not be negative")
	}
	if criteria.DateTo != nil && *criteria.DateTo < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "dateTo must not be negative")
	}
	if criteria.DateFrom != nil && criteria.DateTo != nil && *criteria.DateFrom > *criteria.DateTo {
		return fiber.NewError(fiber.StatusBadRequest, "dateFrom cannot be greater than dateTo")
	}
	for _, country := range criteria.Countries {
		if strings.TrimSpace(country) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "country values cannot be empty")
		}
	}
	for _, device := range criteria.Devices {
		if !device.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown device %q", device))
		}
	}
	for _, eventType := range criteria.EventTypes {
		if !eventType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown event type %q", eventType))
		}
	}
	return nil
}

// ValidateEvents checks a caller-supplied collection. Every event must hold
// the event invariants; the first offender is reported by index.
func ValidateEvents(events []domain.Event, limits config.GeneratorConfig) error {
	if len(events) > limits.MaxCount {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("events array exceeds maximum allowed size of %d", limits.MaxCount))
	}
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("validation failed for event at index %d: %v", i, err))
		}
	}
	return nil
}

func ValidateRollupRequest(request *domain.RollupRequest, limits config.GeneratorConfig) error {
	if request.WindowDays < 1 || request.WindowDays > limits.MaxDays {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("windowDays must be between 1 and %d", limits.MaxDays))
	}
	if request.ReferenceTime != nil && *request.ReferenceTime < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "referenceTime must not be negative")
	}
	return ValidateEvents(request.Events, limits)
}

func ValidateBreakdownRequest(request *domain.BreakdownRequest, limits config.GeneratorConfig) error {
	if !metrics.ValidDimension(request.Field) {
		return fiber.NewError(fiber.StatusBadRequest, "field must be one of device, country, eventType, url")
	}
	if request.TopN < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "topN must not be negative")
	}
	return ValidateEvents(request.Events, limits)
}

func ValidateWarehouseEventsRequest(request *domain.WarehouseEventsRequest, limits config.GeneratorConfig) error {
	if request.Limit < 1 || request.Limit > limits.MaxCount {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("limit must be between 1 and %d", limits.MaxCount))
	}
	return ValidateFilterCriteria(&request.Criteria)
}

func ValidateWarehouseRollupRequest(request *domain.WarehouseRollupRequest) error {
	now := time.Now().UTC().UnixMilli()
	if request.From != nil {
		if *request.From <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "from must be a positive integer")
		}
		if *request.From > now {
			return fiber.NewError(fiber.StatusBadRequest, "from cannot be in the future")
		}
	}
	if request.To != nil && *request.To <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "to must be a positive integer")
	}
	if request.From != nil && request.To != nil && *request.From > *request.To {
		return fiber.NewError(fiber.StatusBadRequest, "from cannot be greater than to")
	}
	if request.EventType != nil && !domain.EventType(*request.EventType).Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "eventType must be a known event type")
	}
	return nil
}
