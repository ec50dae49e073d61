package db

import (
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"gorm.io/gorm"
)

type GymRepository struct {
	database *gorm.DB
}

func NewGymRepository(database *gorm.DB) *GymRepository {
	return &GymRepository{database: database}
}

func (repo *GymRepository) ListAscending() ([]models.GymRecord, error) {
	records := make([]models.GymRecord, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *GymRepository) ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.GymRecord, error) {
	query := repo.database.Model(&models.GymRecord{})
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	records := make([]models.GymRecord, 0)
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *GymRepository) ListDescending() ([]models.GymRecord, error) {
	records := make([]models.GymRecord, 0)
	if err := repo.database.Order("date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *GymRepository) FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.GymRecord, bool, error) {
	record := models.GymRecord{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.GymRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.GymRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *GymRepository) UpsertByDay(dayStart time.Time, attended bool) error {
	dayEnd := dayStart.AddDate(0, 0, 1)
	return repo.database.Transaction(func(tx *gorm.DB) error {
		record := models.GymRecord{}
		result := tx.
			Where("date >= ? AND date < ?", dayStart, dayEnd).
			Order("date DESC, id DESC").
			Limit(1).
			Find(&record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			record = models.GymRecord{Date: dayStart, Attended: attended}
			return tx.Create(&record).Error
		}
		return tx.Model(&record).Update("attended", attended).Error
	})
}
