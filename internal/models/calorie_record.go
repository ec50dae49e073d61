package models

import "time"

type CalorieRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_calorie_date"`
	Calories  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
