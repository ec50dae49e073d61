package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
)

const projectionDays = 7

// DashboardView carries everything the dashboard template renders for one
// display period.
type DashboardView struct {
	Period    services.Period
	HasData   bool
	Metrics   services.DashboardMetrics
	GymStreak int
	GymTitle  string
	Advice    services.Advice
	Chart     ChartPayload
	Rows      []services.DayRow
}

// ChartPayload is serialized into the page for the weight chart. Projection
// arrays stay empty until enough history exists for the trend line.
type ChartPayload struct {
	Labels            []string  `json:"labels"`
	Weights           []float64 `json:"weights"`
	GymDays           []bool    `json:"gym_days"`
	ProjectionLabels  []string  `json:"projection_labels"`
	ProjectionWeights []float64 `json:"projection_weights"`
	GoalWeight        float64   `json:"goal_weight"`
}

func (handler *Handler) buildDashboardView(c *fiber.Ctx, period services.Period, now time.Time) (DashboardView, error) {
	today := services.DateAtLocation(now, handler.location)

	weightRecords, err := handler.repositories.Weights.ListAscending()
	if err != nil {
		return DashboardView{}, err
	}
	dense, err := services.Densify(weightRecords, today)
	if err != nil {
		return DashboardView{}, err
	}

	windowStart := period.Start(today)
	windowEnd := today.AddDate(0, 0, 1)
	windowDense := services.FilterPointsFrom(dense, windowStart)

	gymWindow, err := handler.repositories.Gym.ListRange(&windowStart, &windowEnd)
	if err != nil {
		return DashboardView{}, err
	}
	calorieWindow, err := handler.repositories.Calories.ListRange(&windowStart, &windowEnd)
	if err != nil {
		return DashboardView{}, err
	}

	settings, err := handler.settingsService.Get()
	if err != nil {
		return DashboardView{}, err
	}

	gymAll, err := handler.repositories.Gym.ListAscending()
	if err != nil {
		return DashboardView{}, err
	}
	streak := services.ConsecutiveGymStreak(gymAll, today)

	advice, err := handler.adviceService.DailyAdvice(c.Context(), now)
	if err != nil {
		return DashboardView{}, err
	}

	return DashboardView{
		Period:    period,
		HasData:   len(dense) > 0,
		Metrics:   services.BuildDashboardMetrics(windowDense, gymWindow, calorieWindow, settings),
		GymStreak: streak,
		GymTitle:  services.GymTitle(streak),
		Advice:    advice,
		Chart:     buildChartPayload(windowDense, gymWindow, services.ProjectWeight(dense, projectionDays), settings.WeightGoalKg),
		Rows:      services.BuildDayRows(windowDense, gymWindow, calorieWindow),
	}, nil
}

func (handler *Handler) loadDayRows(period services.Period, today time.Time) ([]services.DayRow, error) {
	weightRecords, err := handler.repositories.Weights.ListAscending()
	if err != nil {
		return nil, err
	}
	dense, err := services.Densify(weightRecords, today)
	if err != nil {
		return nil, err
	}

	windowStart := period.Start(today)
	windowEnd := today.AddDate(0, 0, 1)
	windowDense := services.FilterPointsFrom(dense, windowStart)

	gymWindow, err := handler.repositories.Gym.ListRange(&windowStart, &windowEnd)
	if err != nil {
		return nil, err
	}
	calorieWindow, err := handler.repositories.Calories.ListRange(&windowStart, &windowEnd)
	if err != nil {
		return nil, err
	}

	return services.BuildDayRows(windowDense, gymWindow, calorieWindow), nil
}

const chartDateLayout = "01/02"

func buildChartPayload(window []services.DensePoint, gymWindow []models.GymRecord, projection []services.DensePoint, goalWeightKg float64) ChartPayload {
	attendedDays := make(map[string]struct{}, len(gymWindow))
	for _, record := range gymWindow {
		if record.Attended {
			attendedDays[record.Date.Format("2006-01-02")] = struct{}{}
		}
	}

	payload := ChartPayload{
		Labels:            make([]string, 0, len(window)),
		Weights:           make([]float64, 0, len(window)),
		GymDays:           make([]bool, 0, len(window)),
		ProjectionLabels:  make([]string, 0, len(projection)),
		ProjectionWeights: make([]float64, 0, len(projection)),
		GoalWeight:        goalWeightKg,
	}
	for _, point := range window {
		_, attended := attendedDays[point.Date.Format("2006-01-02")]
		payload.Labels = append(payload.Labels, point.Date.Format(chartDateLayout))
		payload.Weights = append(payload.Weights, point.WeightKg)
		payload.GymDays = append(payload.GymDays, attended)
	}
	for _, point := range projection {
		payload.ProjectionLabels = append(payload.ProjectionLabels, point.Date.Format(chartDateLayout))
		payload.ProjectionWeights = append(payload.ProjectionWeights, point.WeightKg)
	}
	return payload
}
