package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/models"
	"github.com/terraincognita07/joydairy/internal/services"
)

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	payload := registerPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return handler.respondServiceError(c, err)
	}

	user, err := handler.authService.Register(services.RegistrationInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	}, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return handler.respondWithToken(c, fiber.StatusCreated, user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts, try again later")
	}

	payload := loginPayload{}
	if err := parseJSONBody(c, &payload); err != nil {
		return handler.respondServiceError(c, err)
	}

	user, err := handler.authService.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		}
		return handler.respondServiceError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)

	return handler.respondWithToken(c, fiber.StatusOK, user)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) respondWithToken(c *fiber.Ctx, status int, user models.User) error {
	token, err := handler.tokens.Issue(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(status).JSON(authResponse{Token: token, User: user})
}
