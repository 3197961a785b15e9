package middleware

import (
	"strings"

	"arabyprompts/internal/models"
	"arabyprompts/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the c.Locals key holding the signed-in *models.User.
const UserKey = "user"

// SessionResolver maps a bearer token to the signed-in user, or nil.
type SessionResolver interface {
	Resolve(token string) *models.User
}

// Session resolves the bearer token on every request. Requests without a
// token, or whose token does not name the current user, continue anonymously.
func Session(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if user := sessions.Resolve(parts[1]); user != nil {
				c.Locals(UserKey, user)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the user stored by Session, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}

// AuthRequired rejects anonymous requests with 401.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Sign in required",
			})
		}
		return c.Next()
	}
}

// AdminRequired evaluates the admin policy for the request's user and sends
// everyone else to publicEntry. Nothing from the admin surface is rendered.
func AdminRequired(publicEntry string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !services.CanAccessAdmin(CurrentUser(c)) {
			return c.Redirect(publicEntry, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
