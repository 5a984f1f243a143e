package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kucukaslan/eventlab/domain"
	"kucukaslan/eventlab/ga4"
	"kucukaslan/eventlab/services"
)

// statusFor maps service and validation errors onto HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrImportValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ga4.ErrAuthentication):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrBufferFull), errors.Is(err, services.ErrWarehouseDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(ctx *fiber.Ctx, prefix string, err error) error {
	status := statusFor(err)
	message := prefix + err.Error()
	if status == fiber.StatusServiceUnavailable {
		message = "Service temporarily unavailable, please try again later: " + err.Error()
	}
	return ctx.Status(status).JSON(domain.ErrorResponse{
		Success: false,
		Message: message,
	})
}

// ErrorHandler renders errors escaping the handlers, including fiber's own
// 404 and 405 errors, in the common envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	return fail(ctx, "", err)
}
