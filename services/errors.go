package services

import "errors"

var (
	// ErrNotFood: the vision service explicitly classified the image as
	// non-food. Recoverable — the user retakes the photo; never logged as a
	// server error.
	ErrNotFood = errors.New("no food detected in image")

	// ErrInference: transport, timeout or parse failure on the vision
	// boundary. Retryable. A zero-value nutrition result is never fabricated
	// in its place.
	ErrInference = errors.New("meal analysis failed")

	// ErrAggregateInconsistent: a recompute produced negative totals or ran
	// against a non-positive calorie target. The aggregate is not persisted.
	ErrAggregateInconsistent = errors.New("daily aggregate inconsistent")
)
