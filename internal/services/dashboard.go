package services

import (
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodMonth:
		return PeriodMonth
	case PeriodYear:
		return PeriodYear
	default:
		return PeriodWeek
	}
}

func (period Period) Days() int {
	switch period {
	case PeriodMonth:
		return 30
	case PeriodYear:
		return 365
	default:
		return 7
	}
}

// Start returns the first day of the display window ending today.
func (period Period) Start(today time.Time) time.Time {
	return today.AddDate(0, 0, -period.Days())
}

// DashboardMetrics are the four headline numbers above the chart.
type DashboardMetrics struct {
	HasWeight       bool
	CurrentWeightKg float64
	WeightChangeKg  float64
	WeightGoalKg    float64
	GoalDiffKg      float64
	GymVisits       int
	AvgCalories     float64
	CalorieGoal     int
}

func BuildDashboardMetrics(dense []DensePoint, gym []models.GymRecord, calories []models.CalorieRecord, settings models.Settings) DashboardMetrics {
	metrics := DashboardMetrics{
		WeightGoalKg: settings.WeightGoalKg,
		CalorieGoal:  settings.CalorieGoal,
	}

	if len(dense) > 0 {
		metrics.HasWeight = true
		metrics.CurrentWeightKg = dense[len(dense)-1].WeightKg
		metrics.WeightChangeKg = metrics.CurrentWeightKg - dense[0].WeightKg
		metrics.GoalDiffKg = metrics.CurrentWeightKg - settings.WeightGoalKg
	}

	for _, record := range gym {
		if record.Attended {
			metrics.GymVisits++
		}
	}

	metrics.AvgCalories = averageAllCalories(calories)
	return metrics
}

func averageAllCalories(records []models.CalorieRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, record := range records {
		total += record.Calories
	}
	return float64(total) / float64(len(records))
}

// DayRow is one line of the detail table, merged across the three series for
// a single date. Rows render newest first.
type DayRow struct {
	Date     time.Time
	WeightKg float64
	Attended bool
	Calories int
}

func BuildDayRows(dense []DensePoint, gym []models.GymRecord, calories []models.CalorieRecord) []DayRow {
	attendedByDay := make(map[string]bool, len(gym))
	for _, record := range gym {
		attendedByDay[record.Date.Format("2006-01-02")] = record.Attended
	}
	caloriesByDay := make(map[string]int, len(calories))
	for _, record := range calories {
		caloriesByDay[record.Date.Format("2006-01-02")] = record.Calories
	}

	rows := make([]DayRow, 0, len(dense))
	for index := len(dense) - 1; index >= 0; index-- {
		point := dense[index]
		key := point.Date.Format("2006-01-02")
		rows = append(rows, DayRow{
			Date:     point.Date,
			WeightKg: point.WeightKg,
			Attended: attendedByDay[key],
			Calories: caloriesByDay[key],
		})
	}
	return rows
}
