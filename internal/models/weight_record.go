package models

import "time"

// WeightRecord holds one weight measurement per calendar day. The unique
// index on Date makes writes upsert-by-day.
type WeightRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weight_date"`
	WeightKg  float64   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
