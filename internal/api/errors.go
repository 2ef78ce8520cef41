package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/services"
)

const internalErrorMessage = "server error"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses. Anything that is
// not a known kind is logged and answered with a generic 500.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body := fiber.Map{"error": validationErr.Message}
		if validationErr.Field != "" {
			body["field"] = validationErr.Field
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, services.ErrConflict):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNoContent):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		handler.logger.Error("request failed",
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return apiError(c, fiber.StatusInternalServerError, internalErrorMessage)
	}
}

// ErrorHandler renders errors that escape handlers, including fiber's own, as JSON.
func (handler *Handler) ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= fiber.StatusInternalServerError {
			handler.logger.Error("request failed", "request_id", requestID(c), "path", c.Path(), "error", err)
			return apiError(c, fiberErr.Code, internalErrorMessage)
		}
		return apiError(c, fiberErr.Code, fiberErr.Message)
	}
	return handler.respondServiceError(c, err)
}
