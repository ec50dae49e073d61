package db

import "gorm.io/gorm"

type Repositories struct {
	Weights  *WeightRepository
	Gym      *GymRepository
	Calories *CalorieRepository
	Settings *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Weights:  NewWeightRepository(database),
		Gym:      NewGymRepository(database),
		Calories: NewCalorieRepository(database),
		Settings: NewSettingsRepository(database),
	}
}
