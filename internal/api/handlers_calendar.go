package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/services"
)

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := handler.now()
	month := services.DateAtLocation(now, handler.location)
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		parsed, err := services.ParseMonth(raw)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		month = parsed
	}

	overview, err := handler.calendarService.MonthOverview(user.ID, month, now, handler.location)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(overview)
}
