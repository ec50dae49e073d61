package models

import "time"

const (
	SettingsID = 1

	DefaultWeightGoalKg = 70.0
	DefaultCalorieGoal  = 2000
)

// Settings is a singleton row: the app serves exactly one user. Saving
// overwrites all top-level fields (last write wins).
type Settings struct {
	ID           uint    `gorm:"primaryKey"`
	WeightGoalKg float64 `gorm:"not null"`
	CalorieGoal  int     `gorm:"not null"`
	PasswordHash string  `gorm:"not null"`
	UpdatedAt    time.Time
}
