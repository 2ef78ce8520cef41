package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/services"
)

var errMissingToken = errors.New("missing token")

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	tokenValue, err := bearerToken(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "no token, authorization denied")
	}

	userID, err := handler.tokens.Parse(tokenValue)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "token is not valid")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			return apiError(c, fiber.StatusUnauthorized, "token is not valid")
		}
		return handler.respondServiceError(c, err)
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// bearerToken reads the Authorization bearer value, falling back to x-auth-token.
func bearerToken(c *fiber.Ctx) (string, error) {
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authorization != "" {
		scheme, value, found := strings.Cut(authorization, " ")
		if found && strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), nil
		}
	}

	if legacy := strings.TrimSpace(c.Get(authTokenHeader)); legacy != "" {
		return legacy, nil
	}
	return "", errMissingToken
}
