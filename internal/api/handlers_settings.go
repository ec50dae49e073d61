package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
)

type settingsInput struct {
	WeightGoalKg  float64 `json:"weight_goal_kg" form:"weight_goal_kg"`
	CalorieGoal   int     `json:"calorie_goal" form:"calorie_goal"`
	NewPassphrase string  `json:"new_passphrase" form:"new_passphrase"`
}

func (handler *Handler) ShowSettings(c *fiber.Ctx) error {
	handler.ensureDependencies()

	settings, err := handler.settingsService.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load settings")
	}

	messages := currentMessages(c)
	flash := popFlashCookie(c)
	return handler.render(c, "settings", fiber.Map{
		"Title":           localizedPageTitle(messages, "meta.title.settings", "Settings"),
		"Settings":        settings,
		"SettingsError":   translateFlashMessage(messages, flash.SettingsError),
		"SettingsSuccess": translateFlashMessage(messages, flash.SettingsSuccess),
	})
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	input := settingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondSettingsError(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.Save(input.WeightGoalKg, input.CalorieGoal, input.NewPassphrase); err != nil {
		if key := settingsErrorKey(err); key != "" {
			return handler.respondSettingsError(c, fiber.StatusBadRequest, key)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{SettingsSuccess: "settings.saved"})
	return c.Redirect("/settings", fiber.StatusSeeOther)
}

func settingsErrorKey(err error) string {
	switch {
	case errors.Is(err, services.ErrWeightGoalOutOfRange):
		return "error.weight_goal_range"
	case errors.Is(err, services.ErrCalorieGoalOutOfRange):
		return "error.calorie_goal_range"
	default:
		return ""
	}
}

func (handler *Handler) respondSettingsError(c *fiber.Ctx, status int, messageKey string) error {
	if acceptsJSON(c) {
		return apiError(c, status, messageKey)
	}
	setFlashCookie(c, FlashPayload{SettingsError: messageKey})
	return c.Redirect("/settings", fiber.StatusSeeOther)
}
