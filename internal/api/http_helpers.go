package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// redirectOrJSON finishes a successful form submission: API clients get a
// small JSON ack, browsers get a see-other redirect.
func redirectOrJSON(c *fiber.Ctx, path string) error {
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get(fiber.HeaderAccept)), fiber.MIMEApplicationJSON)
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}

func localizedPageTitle(messages map[string]string, key string, fallback string) string {
	if title := translateMessage(messages, key); title != key && strings.TrimSpace(title) != "" {
		return title
	}
	return fallback
}
