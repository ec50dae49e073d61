package db

import (
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"gorm.io/gorm"
)

type WeightRepository struct {
	database *gorm.DB
}

func NewWeightRepository(database *gorm.DB) *WeightRepository {
	return &WeightRepository{database: database}
}

func (repo *WeightRepository) ListAscending() ([]models.WeightRecord, error) {
	records := make([]models.WeightRecord, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *WeightRepository) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.WeightRecord, error) {
	query := repo.database.Model(&models.WeightRecord{})
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	records := make([]models.WeightRecord, 0)
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *WeightRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.WeightRecord, bool, error) {
	record := models.WeightRecord{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.WeightRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeightRecord{}, false, nil
	}
	return record, true, nil
}

// UpsertByDay writes the weight for the day starting at dayStart, replacing
// the value if a record for that day already exists.
func (repo *WeightRepository) UpsertByDay(dayStart time.Time, weightKg float64) error {
	dayEnd := dayStart.AddDate(0, 0, 1)
	return repo.database.Transaction(func(tx *gorm.DB) error {
		record := models.WeightRecord{}
		result := tx.
			Where("date >= ? AND date < ?", dayStart, dayEnd).
			Order("date DESC, id DESC").
			Limit(1).
			Find(&record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			record = models.WeightRecord{Date: dayStart, WeightKg: weightKg}
			return tx.Create(&record).Error
		}
		return tx.Model(&record).Update("weight_kg", weightKg).Error
	})
}
