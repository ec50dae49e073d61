package api

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// render executes a page template through the shared base layout. Pages are
// rendered into a buffer first so a template error never sends a half page.
func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	page, ok := handler.templates[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}

	var output bytes.Buffer
	if err := page.ExecuteTemplate(&output, "base", handler.withTemplateDefaults(c, data)); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}
