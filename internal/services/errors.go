package services

import "errors"

// Data-integrity errors fail the computation loudly; validation errors are
// surfaced to the user as a rejected write.
var (
	ErrDateBeyondToday = errors.New("series contains a date after today")
	ErrDuplicateDate   = errors.New("duplicate date in series")

	ErrWeightRequired     = errors.New("weight is required")
	ErrWeightOutOfRange   = errors.New("weight out of range")
	ErrCaloriesOutOfRange = errors.New("calories out of range")
	ErrNotToday           = errors.New("only today can be edited")
)
