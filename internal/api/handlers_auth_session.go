package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
)

type loginInput struct {
	Passphrase string `json:"passphrase" form:"passphrase"`
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	messages := currentMessages(c)
	flash := popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":     localizedPageTitle(messages, "meta.title.login", "Login"),
		"HideNav":   true,
		"AuthError": translateFlashMessage(messages, flash.AuthError),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	handler.ensureDependencies()
	if err := handler.authService.VerifyPassphrase(strings.TrimSpace(input.Passphrase)); err != nil {
		if errors.Is(err, services.ErrInvalidPassphrase) {
			return handler.respondAuthError(c, fiber.StatusUnauthorized, "error.invalid_passphrase")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to verify passphrase")
	}

	if err := handler.setAuthCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	handler.setLanguageCookie(c, c.Params("lang"))
	referer := strings.TrimSpace(c.Get("Referer"))
	if referer == "" || !strings.HasPrefix(referer, "/") {
		referer = "/dashboard"
	}
	return c.Redirect(referer, fiber.StatusSeeOther)
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, messageKey string) error {
	if acceptsJSON(c) {
		return apiError(c, status, messageKey)
	}
	setFlashCookie(c, FlashPayload{AuthError: messageKey})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// translateFlashMessage resolves a flash value that may hold a locale key.
func translateFlashMessage(messages map[string]string, value string) string {
	if value == "" {
		return ""
	}
	return translateMessage(messages, value)
}
