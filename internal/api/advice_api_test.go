package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"gorm.io/gorm"
)

func seedWeightHistory(t *testing.T, database *gorm.DB, days int, weightFor func(dayIndex int) float64) {
	t.Helper()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(days - 1))
	for index := 0; index < days; index++ {
		record := models.WeightRecord{
			Date:     start.AddDate(0, 0, index),
			WeightKg: weightFor(index),
		}
		if err := database.Create(&record).Error; err != nil {
			t.Fatalf("seed weight record %d: %v", index, err)
		}
	}
}

func TestAdviceNotReadyWithoutHistory(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authCookie := loginForAuthCookie(t, app)

	request := authedRequest(http.MethodGet, "/api/advice", nil, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("advice request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, response.StatusCode)
	}
	payload := readJSONBody(t, response.Body)
	if payload["ready"] != false {
		t.Fatalf("expected ready=false, got %v", payload["ready"])
	}
	if payload["days_until_ready"] != float64(30) {
		t.Fatalf("expected 30 days until ready, got %v", payload["days_until_ready"])
	}
}

func TestAdviceCountsDownAsHistoryGrows(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	authCookie := loginForAuthCookie(t, app)
	seedWeightHistory(t, database, 29, func(int) float64 { return 70.0 })

	request := authedRequest(http.MethodGet, "/api/advice", nil, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("advice request failed: %v", err)
	}
	defer response.Body.Close()

	payload := readJSONBody(t, response.Body)
	if payload["ready"] != false {
		t.Fatalf("expected ready=false at 29 days, got %v", payload["ready"])
	}
	if payload["days_until_ready"] != float64(1) {
		t.Fatalf("expected 1 day until ready, got %v", payload["days_until_ready"])
	}
}

func TestAdviceReadyAfterThirtyDays(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	authCookie := loginForAuthCookie(t, app)
	seedWeightHistory(t, database, 30, func(int) float64 { return 70.0 })

	request := authedRequest(http.MethodGet, "/api/advice", nil, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("advice request failed: %v", err)
	}
	defer response.Body.Close()

	payload := readJSONBody(t, response.Body)
	if payload["ready"] != true {
		t.Fatalf("expected ready=true at 30 days, got %v", payload)
	}
	advice, _ := payload["advice"].(string)
	if advice == "" {
		t.Fatal("expected non-empty advice text")
	}
	recipes, ok := payload["recipes"].([]any)
	if !ok || len(recipes) == 0 {
		t.Fatal("expected fallback recipes without a configured searcher")
	}
}

func TestAdviceRecommendsWeightManagementWhenGaining(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	authCookie := loginForAuthCookie(t, app)
	// Last 8 days rise 0.5 kg/day, so the trailing-week delta is well above
	// the +0.2 threshold.
	seedWeightHistory(t, database, 30, func(dayIndex int) float64 {
		if dayIndex < 22 {
			return 70.0
		}
		return 70.0 + 0.5*float64(dayIndex-21)
	})

	request := authedRequest(http.MethodGet, "/api/advice", nil, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("advice request failed: %v", err)
	}
	defer response.Body.Close()

	payload := readJSONBody(t, response.Body)
	if payload["ready"] != true {
		t.Fatalf("expected ready advice, got %v", payload)
	}
	if payload["recipe_category"] != "体重管理" {
		t.Fatalf("expected 体重管理 category, got %v", payload["recipe_category"])
	}
}
