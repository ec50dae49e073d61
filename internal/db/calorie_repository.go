package db

import (
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"gorm.io/gorm"
)

type CalorieRepository struct {
	database *gorm.DB
}

func NewCalorieRepository(database *gorm.DB) *CalorieRepository {
	return &CalorieRepository{database: database}
}

func (repo *CalorieRepository) ListAscending() ([]models.CalorieRecord, error) {
	records := make([]models.CalorieRecord, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CalorieRepository) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.CalorieRecord, error) {
	query := repo.database.Model(&models.CalorieRecord{})
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	records := make([]models.CalorieRecord, 0)
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CalorieRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.CalorieRecord, bool, error) {
	record := models.CalorieRecord{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.CalorieRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CalorieRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *CalorieRepository) UpsertByDay(dayStart time.Time, calories int) error {
	dayEnd := dayStart.AddDate(0, 0, 1)
	return repo.database.Transaction(func(tx *gorm.DB) error {
		record := models.CalorieRecord{}
		result := tx.
			Where("date >= ? AND date < ?", dayStart, dayEnd).
			Order("date DESC, id DESC").
			Limit(1).
			Find(&record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			record = models.CalorieRecord{Date: dayStart, Calories: calories}
			return tx.Create(&record).Error
		}
		return tx.Model(&record).Update("calories", calories).Error
	})
}
