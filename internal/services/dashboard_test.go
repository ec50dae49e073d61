package services

import (
	"testing"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	cases := map[string]Period{
		"week":    PeriodWeek,
		"month":   PeriodMonth,
		"year":    PeriodYear,
		"":        PeriodWeek,
		"bogus":   PeriodWeek,
		"quarter": PeriodWeek,
	}
	for raw, want := range cases {
		if got := ParsePeriod(raw); got != want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestPeriodDays(t *testing.T) {
	t.Parallel()

	if PeriodWeek.Days() != 7 || PeriodMonth.Days() != 30 || PeriodYear.Days() != 365 {
		t.Fatalf("unexpected period lengths: %d %d %d", PeriodWeek.Days(), PeriodMonth.Days(), PeriodYear.Days())
	}
}

func TestBuildDashboardMetrics(t *testing.T) {
	t.Parallel()

	dense := []DensePoint{
		{Date: day(t, "2026-08-30"), WeightKg: 72.0},
		{Date: day(t, "2026-08-31"), WeightKg: 71.0},
		{Date: day(t, "2026-09-01"), WeightKg: 70.5},
	}
	gym := []models.GymRecord{
		gymRecord(t, "2026-08-30", true),
		gymRecord(t, "2026-08-31", false),
		gymRecord(t, "2026-09-01", true),
	}
	calories := []models.CalorieRecord{
		calorieRecord(t, "2026-08-31", 200),
		calorieRecord(t, "2026-09-01", 400),
	}
	settings := models.Settings{WeightGoalKg: 68.0, CalorieGoal: 2000}

	metrics := BuildDashboardMetrics(dense, gym, calories, settings)
	if !metrics.HasWeight {
		t.Fatal("expected HasWeight")
	}
	if metrics.CurrentWeightKg != 70.5 {
		t.Fatalf("CurrentWeightKg = %v, want 70.5", metrics.CurrentWeightKg)
	}
	if !almostEqual(metrics.WeightChangeKg, -1.5) {
		t.Fatalf("WeightChangeKg = %v, want -1.5", metrics.WeightChangeKg)
	}
	if !almostEqual(metrics.GoalDiffKg, 2.5) {
		t.Fatalf("GoalDiffKg = %v, want 2.5", metrics.GoalDiffKg)
	}
	if metrics.GymVisits != 2 {
		t.Fatalf("GymVisits = %d, want 2", metrics.GymVisits)
	}
	if !almostEqual(metrics.AvgCalories, 300) {
		t.Fatalf("AvgCalories = %v, want 300", metrics.AvgCalories)
	}
	if metrics.CalorieGoal != 2000 {
		t.Fatalf("CalorieGoal = %d, want 2000", metrics.CalorieGoal)
	}
}

func TestBuildDashboardMetricsWithoutWeights(t *testing.T) {
	t.Parallel()

	metrics := BuildDashboardMetrics(nil, nil, nil, models.Settings{WeightGoalKg: 70, CalorieGoal: 2000})
	if metrics.HasWeight {
		t.Fatal("expected HasWeight=false without dense points")
	}
	if metrics.CurrentWeightKg != 0 || metrics.GymVisits != 0 || metrics.AvgCalories != 0 {
		t.Fatalf("expected zero metrics, got %+v", metrics)
	}
}

func TestBuildDayRowsMergesSeriesNewestFirst(t *testing.T) {
	t.Parallel()

	dense := []DensePoint{
		{Date: day(t, "2026-08-31"), WeightKg: 71.0},
		{Date: day(t, "2026-09-01"), WeightKg: 70.5},
	}
	gym := []models.GymRecord{gymRecord(t, "2026-09-01", true)}
	calories := []models.CalorieRecord{calorieRecord(t, "2026-08-31", 250)}

	rows := BuildDayRows(dense, gym, calories)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	newest := rows[0]
	if !newest.Date.Equal(day(t, "2026-09-01")) {
		t.Fatalf("expected newest row first, got %s", newest.Date.Format("2006-01-02"))
	}
	if newest.WeightKg != 70.5 || !newest.Attended || newest.Calories != 0 {
		t.Fatalf("unexpected newest row %+v", newest)
	}

	older := rows[1]
	if older.WeightKg != 71.0 || older.Attended || older.Calories != 250 {
		t.Fatalf("unexpected older row %+v", older)
	}
}
