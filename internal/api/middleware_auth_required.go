package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates everything behind the passphrase session. API routes
// answer 401 so fetch callers can react; pages bounce to the login form.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	if err := handler.authenticateRequest(c); err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}
