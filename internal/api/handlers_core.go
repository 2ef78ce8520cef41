package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Joy Dairy API",
		"version": handler.version,
		"endpoints": fiber.Map{
			"auth":         "/api/auth",
			"entries":      "/api/entries",
			"moods":        "/api/moods",
			"affirmations": "/api/affirmations",
			"dashboard":    "/api/dashboard",
		},
	})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "route not found")
}
