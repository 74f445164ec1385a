package planner

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrRouteEndpoints    = errors.New("Source and destination are required")
	ErrMissingFields     = errors.New("Missing required fields")
	ErrSuggestionsFailed = errors.New("Failed to generate suggestions")
)
