package services

import (
	"context"
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"github.com/ohmyyasu0122/health-management-app/internal/recipes"
)

type AdviceWeightReader interface {
	ListAscending() ([]models.WeightRecord, error)
}

type AdviceGymReader interface {
	ListAscending() ([]models.GymRecord, error)
}

type AdviceCalorieReader interface {
	ListAscending() ([]models.CalorieRecord, error)
}

// Advice is the daily advice payload. When Ready is false only
// DaysUntilReady is meaningful: the pipeline is bypassed entirely until 30
// dense weight days exist.
type Advice struct {
	Ready          bool
	DaysUntilReady int
	Text           string
	RecipeCategory string
	RecipeQuery    string
	Recipes        []recipes.Recipe
}

type AdviceService struct {
	weights  AdviceWeightReader
	gym      AdviceGymReader
	calories AdviceCalorieReader
	searcher recipes.Searcher
	location *time.Location
}

func NewAdviceService(weights AdviceWeightReader, gym AdviceGymReader, calories AdviceCalorieReader, searcher recipes.Searcher, location *time.Location) *AdviceService {
	if location == nil {
		location = time.UTC
	}
	return &AdviceService{
		weights:  weights,
		gym:      gym,
		calories: calories,
		searcher: searcher,
		location: location,
	}
}

const recipeResultCount = 5

func (service *AdviceService) DailyAdvice(ctx context.Context, now time.Time) (Advice, error) {
	weightRecords, err := service.weights.ListAscending()
	if err != nil {
		return Advice{}, err
	}

	today := DateAtLocation(now, service.location)
	dense, err := Densify(weightRecords, today)
	if err != nil {
		return Advice{}, err
	}

	if len(dense) < MinAdviceDays {
		return Advice{DaysUntilReady: MinAdviceDays - len(dense)}, nil
	}

	gymRecords, err := service.gym.ListAscending()
	if err != nil {
		return Advice{}, err
	}
	calorieRecords, err := service.calories.ListAscending()
	if err != nil {
		return Advice{}, err
	}

	signals := ExtractSignals(dense, gymRecords, calorieRecords)
	text, category, query := SelectAdvice(signals)

	return Advice{
		Ready:          true,
		Text:           text,
		RecipeCategory: category,
		RecipeQuery:    query,
		Recipes:        recipes.Resolve(ctx, service.searcher, query, recipeResultCount),
	}, nil
}
