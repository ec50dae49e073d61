package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	handler.ensureDependencies()

	period := services.ParsePeriod(c.Query("period"))
	now := time.Now().In(handler.location)

	view, err := handler.buildDashboardView(c, period, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load dashboard")
	}

	messages := currentMessages(c)
	flash := popFlashCookie(c)
	return handler.render(c, "dashboard", fiber.Map{
		"Title":        localizedPageTitle(messages, "meta.title.dashboard", "Dashboard"),
		"View":         view,
		"InputSuccess": translateFlashMessage(messages, flash.InputSuccess),
	})
}

func (handler *Handler) GetRecords(c *fiber.Ctx) error {
	handler.ensureDependencies()

	period := services.ParsePeriod(c.Query("period"))
	now := time.Now().In(handler.location)
	today := services.DateAtLocation(now, handler.location)

	rows, err := handler.loadDayRows(period, today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load records")
	}

	payload := make([]recordRowPayload, 0, len(rows))
	for _, row := range rows {
		payload = append(payload, recordRowPayload{
			Date:     row.Date.Format("2006-01-02"),
			WeightKg: row.WeightKg,
			Gym:      row.Attended,
			Calories: row.Calories,
		})
	}
	return c.JSON(fiber.Map{"period": string(period), "records": payload})
}

type recordRowPayload struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	Gym      bool    `json:"gym"`
	Calories int     `json:"calories"`
}

func (handler *Handler) GetAdvice(c *fiber.Ctx) error {
	handler.ensureDependencies()

	advice, err := handler.adviceService.DailyAdvice(c.Context(), time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build advice")
	}

	if !advice.Ready {
		return c.JSON(fiber.Map{
			"ready":            false,
			"days_until_ready": advice.DaysUntilReady,
		})
	}
	return c.JSON(fiber.Map{
		"ready":           true,
		"advice":          advice.Text,
		"recipe_category": advice.RecipeCategory,
		"recipes":         advice.Recipes,
	})
}
