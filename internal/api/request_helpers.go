package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/services"
)

func (handler *Handler) parseDayParam(c *fiber.Ctx, name string) (time.Time, error) {
	return services.ParseDay(c.Params(name), handler.location)
}

// parseOptionalDay returns nil for a blank value.
func (handler *Handler) parseOptionalDay(raw string, field string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	day, err := services.ParseDay(raw, handler.location)
	if err != nil {
		return nil, &services.ValidationError{Field: field, Message: field + " must be a valid ISO-8601 date"}
	}
	return &day, nil
}

func parseIntQuery(c *fiber.Ctx, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &services.ValidationError{Field: name, Message: name + " must be an integer"}
	}
	return value, nil
}

func parseJSONBody(c *fiber.Ctx, payload any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(payload); err != nil {
		return &services.ValidationError{Message: "invalid input"}
	}
	return nil
}
