package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Index)
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	entries := api.Group("/entries", handler.AuthRequired)
	entries.Get("", handler.GetEntries)
	entries.Post("", handler.UpsertEntry)
	entries.Get("/:date", handler.GetEntry)
	entries.Delete("/:date", handler.DeleteEntry)

	moods := api.Group("/moods", handler.AuthRequired)
	moods.Get("", handler.GetMoods)
	moods.Post("", handler.UpsertMood)
	moods.Get("/analytics/trends", handler.GetMoodTrends)
	moods.Get("/:date", handler.GetMood)
	moods.Delete("/:date", handler.DeleteMood)

	affirmations := api.Group("/affirmations", handler.AuthRequired)
	affirmations.Get("/daily", handler.GetDailyAffirmation)
	affirmations.Post("/complete", handler.CompleteAffirmation)
	affirmations.Get("/history", handler.GetAffirmationHistory)
	affirmations.Get("/categories", handler.GetAffirmationCategories)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/calendar", handler.GetCalendar)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
