package services

import (
	"time"

	"github.com/ohmyyasu0122/health-management-app/internal/models"
)

// DensePoint is one day of the derived weight series. It is never persisted.
type DensePoint struct {
	Date     time.Time
	WeightKg float64
}

// Densify forward-fills a sparse weight series into one point per calendar
// day from the earliest recorded date through today. Days without a record
// carry the most recent prior value. An empty input yields an empty output.
// A record dated after today is a data-integrity error, not something to
// silently clamp.
func Densify(records []models.WeightRecord, today time.Time) ([]DensePoint, error) {
	if len(records) == 0 {
		return []DensePoint{}, nil
	}

	location := today.Location()
	todayStart := DateAtLocation(today, location)

	known := make(map[string]float64, len(records))
	var previousKey string
	for _, record := range records {
		day := DateAtLocation(record.Date, location)
		if day.After(todayStart) {
			return nil, ErrDateBeyondToday
		}
		key := day.Format("2006-01-02")
		if key == previousKey {
			return nil, ErrDuplicateDate
		}
		previousKey = key
		known[key] = record.WeightKg
	}

	first := DateAtLocation(records[0].Date, location)
	dense := make([]DensePoint, 0, int(todayStart.Sub(first).Hours()/24)+1)
	lastValue := records[0].WeightKg
	for cursor := first; !cursor.After(todayStart); cursor = cursor.AddDate(0, 0, 1) {
		if value, ok := known[cursor.Format("2006-01-02")]; ok {
			lastValue = value
		}
		dense = append(dense, DensePoint{Date: cursor, WeightKg: lastValue})
	}
	return dense, nil
}

// TailPoints returns the trailing count entries of a dense series.
func TailPoints(points []DensePoint, count int) []DensePoint {
	if count <= 0 || len(points) <= count {
		return points
	}
	return points[len(points)-count:]
}

// FilterPointsFrom keeps points on or after the given day.
func FilterPointsFrom(points []DensePoint, fromDay time.Time) []DensePoint {
	filtered := make([]DensePoint, 0, len(points))
	for _, point := range points {
		if point.Date.Before(fromDay) {
			continue
		}
		filtered = append(filtered, point)
	}
	return filtered
}
