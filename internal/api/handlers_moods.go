package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/services"
)

type moodPayload struct {
	Date         string   `json:"date"`
	Mood         string   `json:"mood"`
	MoodScore    int      `json:"moodScore"`
	Intensity    int      `json:"intensity"`
	Emotions     []string `json:"emotions"`
	Triggers     []string `json:"triggers"`
	Notes        string   `json:"notes"`
	EnergyLevel  *int     `json:"energyLevel"`
	StressLevel  *int     `json:"stressLevel"`
	SleepQuality *int     `json:"sleepQuality"`
	TimeOfDay    string   `json:"timeOfDay"`
}

func (handler *Handler) UpsertMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := moodPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return handler.respondServiceError(c, err)
	}

	now := handler.now()
	day := services.DateAtLocation(now, handler.location)
	if payload.Date != "" {
		parsed, err := services.ParseDay(payload.Date, handler.location)
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		day = parsed
	}

	mood, created, err := handler.moodService.Upsert(user.ID, day, services.MoodInput{
		Mood:         payload.Mood,
		MoodScore:    payload.MoodScore,
		Intensity:    payload.Intensity,
		Emotions:     payload.Emotions,
		Triggers:     payload.Triggers,
		Notes:        payload.Notes,
		EnergyLevel:  payload.EnergyLevel,
		StressLevel:  payload.StressLevel,
		SleepQuality: payload.SleepQuality,
		TimeOfDay:    payload.TimeOfDay,
	}, now)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(mood)
}

func (handler *Handler) GetMoods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	page, err := parseIntQuery(c, "page", 1)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	limit, err := parseIntQuery(c, "limit", services.DefaultMoodPageLimit)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	startDate, err := handler.parseOptionalDay(c.Query("startDate"), "startDate")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	endDate, err := handler.parseOptionalDay(c.Query("endDate"), "endDate")
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	result, err := handler.moodService.List(user.ID, services.MoodListParams{
		Page:      page,
		Limit:     limit,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(result)
}

func (handler *Handler) GetMoodTrends(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	period, err := parseIntQuery(c, "period", services.DefaultTrendPeriodDays)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	trends, err := handler.moodService.Trends(user.ID, period, handler.now(), handler.location)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(trends)
}

func (handler *Handler) GetMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c, "date")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	mood, err := handler.moodService.GetByDate(user.ID, day)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(mood)
}

func (handler *Handler) DeleteMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDayParam(c, "date")
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	if err := handler.moodService.Delete(user.ID, day); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "mood entry deleted successfully"})
}
