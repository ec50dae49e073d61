package services

import (
	"errors"
	"strings"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrWeightGoalOutOfRange  = errors.New("weight goal out of range")
	ErrCalorieGoalOutOfRange = errors.New("calorie goal out of range")
)

// defaultPassphrase seeds the settings row on first run; the settings page
// offers changing it immediately.
const defaultPassphrase = "yasu0122"

type SettingsStore interface {
	Find() (models.Settings, bool, error)
	Create(settings *models.Settings) error
	Save(settings *models.Settings) error
}

type SettingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the singleton settings row, creating it with defaults on first
// read. "No settings yet" is a first-class state, not an error.
func (service *SettingsService) Get() (models.Settings, error) {
	settings, found, err := service.store.Find()
	if err != nil {
		return models.Settings{}, err
	}
	if found {
		return settings, nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(defaultPassphrase), bcrypt.DefaultCost)
	if err != nil {
		return models.Settings{}, err
	}
	settings = models.Settings{
		WeightGoalKg: models.DefaultWeightGoalKg,
		CalorieGoal:  models.DefaultCalorieGoal,
		PasswordHash: string(passwordHash),
	}
	if err := service.store.Create(&settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// Save overwrites the settings row. An empty newPassphrase keeps the current
// hash; anything else is re-hashed.
func (service *SettingsService) Save(weightGoalKg float64, calorieGoal int, newPassphrase string) error {
	if weightGoalKg <= 0 || weightGoalKg > MaxWeightKg {
		return ErrWeightGoalOutOfRange
	}
	if calorieGoal < 0 || calorieGoal > MaxCalories {
		return ErrCalorieGoalOutOfRange
	}

	current, err := service.Get()
	if err != nil {
		return err
	}

	passwordHash := current.PasswordHash
	if passphrase := strings.TrimSpace(newPassphrase); passphrase != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		passwordHash = string(hashed)
	}

	updated := models.Settings{
		WeightGoalKg: weightGoalKg,
		CalorieGoal:  calorieGoal,
		PasswordHash: passwordHash,
	}
	return service.store.Save(&updated)
}
