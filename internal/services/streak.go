package services

import (
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
)

// ConsecutiveGymStreak counts attended days ending today, walking the records
// newest first. A missing day or attended=false breaks the run: attendance
// gaps are not forward-filled, unlike the weight series.
func ConsecutiveGymStreak(records []models.GymRecord, today time.Time) int {
	location := today.Location()
	todayStart := DateAtLocation(today, location)

	streak := 0
	for index := len(records) - 1; index >= 0; index-- {
		record := records[index]
		expected := todayStart.AddDate(0, 0, -streak)
		day := DateAtLocation(record.Date, location)
		if !day.Equal(expected) || !record.Attended {
			break
		}
		streak++
	}
	return streak
}
