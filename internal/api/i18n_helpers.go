package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// translateMessage returns the localized value for key, or the key itself
// when the catalog has no usable translation.
func translateMessage(messages map[string]string, key string) string {
	value, ok := messages[key]
	if !ok || strings.TrimSpace(value) == "" {
		return key
	}
	return value
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return strings.TrimSpace(language)
}

func currentMessages(c *fiber.Ctx) map[string]string {
	if messages, ok := c.Locals(contextMessagesKey).(map[string]string); ok && messages != nil {
		return messages
	}
	return map[string]string{}
}

// withTemplateDefaults fills the keys every page template expects, without
// clobbering anything the handler already set.
func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	messages := currentMessages(c)
	setDefault(data, "Messages", func() any { return messages })
	setDefault(data, "Lang", func() any {
		if language := currentLanguage(c); language != "" {
			return language
		}
		return handler.i18n.DefaultLanguage()
	})
	setDefault(data, "CurrentPath", func() any { return currentPathWithQuery(c) })
	setDefault(data, "CSRFToken", func() any { return csrfToken(c) })
	setDefault(data, "NoDataLabel", func() any {
		if label := translateMessage(messages, "common.not_available"); label != "common.not_available" {
			return label
		}
		return "--"
	})

	return data
}

func setDefault(data fiber.Map, key string, value func() any) {
	if _, ok := data[key]; !ok {
		data[key] = value()
	}
}

func currentPathWithQuery(c *fiber.Ctx) string {
	if path := string(c.Request().URI().RequestURI()); path != "" {
		return path
	}
	return c.Path()
}
