package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/services"
)

type completeAffirmationPayload struct {
	Rating           *int    `json:"rating"`
	PersonalizedText *string `json:"personalizedText"`
}

func (handler *Handler) GetDailyAffirmation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	assignment, err := handler.affirmationService.GetDaily(user.ID, handler.now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(assignment)
}

func (handler *Handler) CompleteAffirmation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := completeAffirmationPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return handler.respondServiceError(c, err)
	}

	assignment, err := handler.affirmationService.Complete(user.ID, services.CompleteAffirmationInput{
		Rating:           payload.Rating,
		PersonalizedText: payload.PersonalizedText,
	}, handler.now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(assignment)
}

func (handler *Handler) GetAffirmationHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	page, err := parseIntQuery(c, "page", 1)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	limit, err := parseIntQuery(c, "limit", services.DefaultHistoryPageLimit)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	history, err := handler.affirmationService.History(user.ID, page, limit)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(history)
}

func (handler *Handler) GetAffirmationCategories(c *fiber.Ctx) error {
	categories, err := handler.affirmationService.Categories()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(categories)
}
