package api

import (
	"github.com/ohmyyasu0122/health-management-app/internal/db"
	"github.com/ohmyyasu0122/health-management-app/internal/recipes"
	"github.com/ohmyyasu0122/health-management-app/internal/services"
)

// WithRecipeSearcher plugs in the external recipe search provider. Call it
// before the first request; a nil searcher keeps the built-in fallback table.
func (handler *Handler) WithRecipeSearcher(searcher recipes.Searcher) *Handler {
	handler.recipeSearcher = searcher
	handler.adviceService = nil
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.settingsService == nil {
		handler.settingsService = services.NewSettingsService(handler.repositories.Settings)
	}
	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.settingsService)
	}
	if handler.recordService == nil {
		handler.recordService = services.NewRecordService(handler.repositories.Weights, handler.repositories.Gym, handler.repositories.Calories, handler.location)
	}
	if handler.adviceService == nil {
		handler.adviceService = services.NewAdviceService(handler.repositories.Weights, handler.repositories.Gym, handler.repositories.Calories, handler.recipeSearcher, handler.location)
	}
}
