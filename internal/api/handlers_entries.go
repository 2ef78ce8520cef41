package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/services"
)

type entryPayload struct {
	Date          string `json:"date"`
	Gratitude     string `json:"gratitude"`
	Manifestation string `json:"manifestation"`
	Reflection    string `json:"reflection"`
}

func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.entryService.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c, "date")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	entry, err := handler.entryService.GetByDate(user.ID, day)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := entryPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return handler.respondServiceError(c, err)
	}
	day, err := services.ParseDay(payload.Date, handler.location)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	entry, created, err := handler.entryService.Upsert(user.ID, day, services.EntryInput{
		Gratitude:     payload.Gratitude,
		Manifestation: payload.Manifestation,
		Reflection:    payload.Reflection,
	}, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c, "date")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.entryService.Delete(user.ID, day); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "entry deleted successfully"})
}
