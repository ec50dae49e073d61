package services

import "time"

const (
	MaxWeightKg = 300.0
	MaxCalories = 10000
)

type WeightWriter interface {
	UpsertByDay(dayStart time.Time, weightKg float64) error
}

type GymWriter interface {
	UpsertByDay(dayStart time.Time, attended bool) error
}

type CalorieWriter interface {
	UpsertByDay(dayStart time.Time, calories int) error
}

// DayInput is one day's worth of form input.
type DayInput struct {
	WeightKg float64
	Attended bool
	Calories int
}

type RecordService struct {
	weights  WeightWriter
	gym      GymWriter
	calories CalorieWriter
	location *time.Location
}

func NewRecordService(weights WeightWriter, gym GymWriter, calories CalorieWriter, location *time.Location) *RecordService {
	if location == nil {
		location = time.UTC
	}
	return &RecordService{
		weights:  weights,
		gym:      gym,
		calories: calories,
		location: location,
	}
}

func ValidateDayInput(input DayInput) error {
	if input.WeightKg <= 0 {
		return ErrWeightRequired
	}
	if input.WeightKg > MaxWeightKg {
		return ErrWeightOutOfRange
	}
	if input.Calories < 0 || input.Calories > MaxCalories {
		return ErrCaloriesOutOfRange
	}
	return nil
}

// SaveForDate upserts all three series for the given day. Only today is
// writable: once the calendar date has advanced the day is immutable.
// Validation happens before any write, so a rejected input leaves no partial
// state behind.
func (service *RecordService) SaveForDate(date time.Time, now time.Time, input DayInput) error {
	today := DateAtLocation(now, service.location)
	day := DateAtLocation(date, service.location)
	if !day.Equal(today) {
		return ErrNotToday
	}

	if err := ValidateDayInput(input); err != nil {
		return err
	}

	if err := service.weights.UpsertByDay(day, input.WeightKg); err != nil {
		return err
	}
	if err := service.gym.UpsertByDay(day, input.Attended); err != nil {
		return err
	}
	return service.calories.UpsertByDay(day, input.Calories)
}
