package services

import (
	"context"
	"testing"
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"github.com/ohmyyasu0122/health-management-app/internal/recipes"
)

type fakeWeightReader struct {
	records []models.WeightRecord
}

func (reader *fakeWeightReader) ListAscending() ([]models.WeightRecord, error) {
	return reader.records, nil
}

type fakeGymReader struct {
	records []models.GymRecord
}

func (reader *fakeGymReader) ListAscending() ([]models.GymRecord, error) {
	return reader.records, nil
}

type fakeCalorieReader struct {
	records []models.CalorieRecord
}

func (reader *fakeCalorieReader) ListAscending() ([]models.CalorieRecord, error) {
	return reader.records, nil
}

type fakeSearcher struct {
	result  recipes.SearchResult
	queries []string
}

func (searcher *fakeSearcher) Search(ctx context.Context, query string, count int) recipes.SearchResult {
	searcher.queries = append(searcher.queries, query)
	return searcher.result
}

func weightHistory(t *testing.T, now time.Time, days int, weightFor func(dayIndex int) float64) []models.WeightRecord {
	t.Helper()

	start := DateAtLocation(now, time.UTC).AddDate(0, 0, -(days - 1))
	records := make([]models.WeightRecord, 0, days)
	for index := 0; index < days; index++ {
		records = append(records, models.WeightRecord{
			Date:     start.AddDate(0, 0, index),
			WeightKg: weightFor(index),
		})
	}
	return records
}

func TestDailyAdviceCountsDownBelowThreshold(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	service := NewAdviceService(
		&fakeWeightReader{records: weightHistory(t, now, 29, func(int) float64 { return 70 })},
		&fakeGymReader{},
		&fakeCalorieReader{},
		nil,
		time.UTC,
	)

	advice, err := service.DailyAdvice(context.Background(), now)
	if err != nil {
		t.Fatalf("DailyAdvice returned error: %v", err)
	}
	if advice.Ready {
		t.Fatal("expected advice not ready at 29 days")
	}
	if advice.DaysUntilReady != 1 {
		t.Fatalf("DaysUntilReady = %d, want 1", advice.DaysUntilReady)
	}
}

func TestDailyAdviceGapsCountTowardThreshold(t *testing.T) {
	t.Parallel()

	// A single record 30 days back densifies into 30 days of history.
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	oldRecord := models.WeightRecord{
		Date:     DateAtLocation(now, time.UTC).AddDate(0, 0, -29),
		WeightKg: 70,
	}
	service := NewAdviceService(
		&fakeWeightReader{records: []models.WeightRecord{oldRecord}},
		&fakeGymReader{},
		&fakeCalorieReader{},
		nil,
		time.UTC,
	)

	advice, err := service.DailyAdvice(context.Background(), now)
	if err != nil {
		t.Fatalf("DailyAdvice returned error: %v", err)
	}
	if !advice.Ready {
		t.Fatalf("expected ready advice from forward-filled history, got %+v", advice)
	}
}

func TestDailyAdvicePassesQueryToSearcher(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	searcher := &fakeSearcher{result: recipes.SearchResult{Items: []recipes.Recipe{
		{Title: "サラダチキン", URL: "https://example.com/1", Source: "クックパッド"},
	}}}

	service := NewAdviceService(
		&fakeWeightReader{records: weightHistory(t, now, 30, func(dayIndex int) float64 {
			if dayIndex < 22 {
				return 70.0
			}
			return 70.0 + 0.5*float64(dayIndex-21)
		})},
		&fakeGymReader{},
		&fakeCalorieReader{},
		searcher,
		time.UTC,
	)

	advice, err := service.DailyAdvice(context.Background(), now)
	if err != nil {
		t.Fatalf("DailyAdvice returned error: %v", err)
	}
	if !advice.Ready {
		t.Fatalf("expected ready advice, got %+v", advice)
	}
	if advice.RecipeCategory != CategoryWeightManagement {
		t.Fatalf("RecipeCategory = %q, want %q", advice.RecipeCategory, CategoryWeightManagement)
	}
	if len(searcher.queries) != 1 || searcher.queries[0] != advice.RecipeQuery {
		t.Fatalf("searcher called with %v, advice query %q", searcher.queries, advice.RecipeQuery)
	}
	if len(advice.Recipes) != 1 || advice.Recipes[0].Title != "サラダチキン" {
		t.Fatalf("unexpected recipes %v", advice.Recipes)
	}
}

func TestDailyAdviceFallsBackWhenSearcherFails(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	searcher := &fakeSearcher{result: recipes.SearchResult{Err: context.DeadlineExceeded}}

	service := NewAdviceService(
		&fakeWeightReader{records: weightHistory(t, now, 30, func(int) float64 { return 70 })},
		&fakeGymReader{},
		&fakeCalorieReader{},
		searcher,
		time.UTC,
	)

	advice, err := service.DailyAdvice(context.Background(), now)
	if err != nil {
		t.Fatalf("DailyAdvice returned error: %v", err)
	}
	if len(advice.Recipes) == 0 {
		t.Fatal("expected fallback recipes on searcher failure")
	}
}
