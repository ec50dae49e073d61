package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NotFound answers unknown API paths with 404 JSON and sends stray page
// requests back to the dashboard.
func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}
