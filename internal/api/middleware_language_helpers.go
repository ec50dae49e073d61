package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// LanguageMiddleware resolves the UI language for the request. An explicit
// cookie wins over Accept-Language; the cookie is refreshed whenever the
// resolved value differs from what the client sent.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.resolveRequestLanguage(c)

	if c.Cookies(languageCookieName) != language {
		handler.setLanguageCookie(c, language)
	}

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.Next()
}

func (handler *Handler) resolveRequestLanguage(c *fiber.Ctx) string {
	if fromCookie := c.Cookies(languageCookieName); fromCookie != "" {
		return handler.i18n.NormalizeLanguage(fromCookie)
	}
	return handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().AddDate(1, 0, 0),
	})
}
