package db

import (
	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) Find() (models.Settings, bool, error) {
	settings := models.Settings{}
	result := repo.database.Limit(1).Find(&settings, models.SettingsID)
	if result.Error != nil {
		return models.Settings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Settings{}, false, nil
	}
	return settings, true, nil
}

func (repo *SettingsRepository) Create(settings *models.Settings) error {
	settings.ID = models.SettingsID
	return repo.database.Create(settings).Error
}

// Save overwrites the whole singleton row (last write wins).
func (repo *SettingsRepository) Save(settings *models.Settings) error {
	settings.ID = models.SettingsID
	return repo.database.Save(settings).Error
}
