package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/joydairy/internal/models"
)

const (
	contextUserKey    = "current_user"
	authTokenHeader   = "x-auth-token"
	requestIDLocalKey = "requestid"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func requestID(c *fiber.Ctx) string {
	value, _ := c.Locals(requestIDLocalKey).(string)
	return value
}
