package services

import "github.com/ohmyyasu0122/health-management-app/internal/models"

// TrailingWindowDays is the signal window: the trailing 7 entries of each
// series feed the advice rules.
const TrailingWindowDays = 7

type TrendSignals struct {
	WeightDeltaAvg float64
	AttendanceRate float64
	AvgCalories    float64
}

// ExtractSignals reduces the three series to the scalars the advice rules
// read. The attendance rate divides by a fixed 7 even when fewer records
// exist, understating the rate early on; that matches the shipped behavior
// and stays until the product owner decides otherwise.
func ExtractSignals(dense []DensePoint, gym []models.GymRecord, calories []models.CalorieRecord) TrendSignals {
	return TrendSignals{
		WeightDeltaAvg: averageDailyDelta(TailPoints(dense, TrailingWindowDays)),
		AttendanceRate: attendanceRate(gym),
		AvgCalories:    averageCalories(calories),
	}
}

func averageDailyDelta(points []DensePoint) float64 {
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	for index := 1; index < len(points); index++ {
		total += points[index].WeightKg - points[index-1].WeightKg
	}
	return total / float64(len(points)-1)
}

func attendanceRate(records []models.GymRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	tail := records
	if len(tail) > TrailingWindowDays {
		tail = tail[len(tail)-TrailingWindowDays:]
	}
	attended := 0
	for _, record := range tail {
		if record.Attended {
			attended++
		}
	}
	return float64(attended) / float64(TrailingWindowDays)
}

func averageCalories(records []models.CalorieRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	tail := records
	if len(tail) > TrailingWindowDays {
		tail = tail[len(tail)-TrailingWindowDays:]
	}
	total := 0
	for _, record := range tail {
		total += record.Calories
	}
	return float64(total) / float64(len(tail))
}
