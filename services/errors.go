package services

import "errors"

// One sentinel per pipeline stage. Handlers match with errors.Is to decide
// the response code; the wrapped message carries the underlying cause.
var (
	ErrRecognitionFailure      = errors.New("recognition failure")
	ErrNoFoodDetected          = errors.New("no food detected")
	ErrNutritionServiceFailure = errors.New("nutrition service failure")
	ErrStorageFailure          = errors.New("storage failure")
	ErrPersistenceFailure      = errors.New("persistence failure")

	// ErrLoadFailure covers read-side failures, distinct from pipeline errors.
	ErrLoadFailure = errors.New("load failure")
)
