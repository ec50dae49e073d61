package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
)

type dayRecordInput struct {
	WeightKg float64 `json:"weight_kg" form:"weight_kg"`
	Gym      bool    `json:"gym" form:"gym"`
	Calories int     `json:"calories" form:"calories"`
}

func (handler *Handler) ShowInputPage(c *fiber.Ctx) error {
	handler.ensureDependencies()

	now := time.Now().In(handler.location)
	dayStart, dayEnd := services.DayRange(now, handler.location)

	input := dayRecordInput{}
	hasWeight := false

	if record, found, err := handler.repositories.Weights.FindByDayRange(dayStart, dayEnd); err == nil && found {
		input.WeightKg = record.WeightKg
		hasWeight = true
	}
	if record, found, err := handler.repositories.Gym.FindByDayRange(dayStart, dayEnd); err == nil && found {
		input.Gym = record.Attended
	}
	if record, found, err := handler.repositories.Calories.FindByDayRange(dayStart, dayEnd); err == nil && found {
		input.Calories = record.Calories
	}

	messages := currentMessages(c)
	flash := popFlashCookie(c)
	return handler.render(c, "input", fiber.Map{
		"Title":        localizedPageTitle(messages, "meta.title.input", "Daily Input"),
		"Today":        dayStart,
		"Input":        input,
		"HasWeight":    hasWeight,
		"InputError":   translateFlashMessage(messages, flash.InputError),
		"InputSuccess": translateFlashMessage(messages, flash.InputSuccess),
	})
}

func (handler *Handler) SaveTodayRecords(c *fiber.Ctx) error {
	input := dayRecordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondInputError(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)

	err := handler.recordService.SaveForDate(now, now, services.DayInput{
		WeightKg: input.WeightKg,
		Attended: input.Gym,
		Calories: input.Calories,
	})
	if err != nil {
		if key := recordErrorKey(err); key != "" {
			return handler.respondInputError(c, fiber.StatusBadRequest, key)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save records")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{InputSuccess: "input.saved"})
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func recordErrorKey(err error) string {
	switch {
	case errors.Is(err, services.ErrWeightRequired):
		return "error.weight_required"
	case errors.Is(err, services.ErrWeightOutOfRange):
		return "error.weight_range"
	case errors.Is(err, services.ErrCaloriesOutOfRange):
		return "error.calories_range"
	case errors.Is(err, services.ErrNotToday):
		return "error.not_today"
	default:
		return ""
	}
}

func (handler *Handler) respondInputError(c *fiber.Ctx, status int, messageKey string) error {
	if acceptsJSON(c) {
		return apiError(c, status, messageKey)
	}
	setFlashCookie(c, FlashPayload{InputError: messageKey})
	return c.Redirect("/input", fiber.StatusSeeOther)
}
