package weather

import "errors"

var (
	// ErrLookup is returned when a location cannot be resolved to coordinates.
	ErrLookup = errors.New("location lookup failed")

	// ErrService is returned when an upstream weather endpoint answers with a non-success status
	// or cannot be reached.
	ErrService = errors.New("weather service error")

	// ErrDataShape is returned when an upstream payload is missing fields we depend on.
	ErrDataShape = errors.New("unexpected response shape")
)
