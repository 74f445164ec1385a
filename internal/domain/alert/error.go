package alert

import "errors"

var (
	ErrLocationRequired = errors.New("Location is required")
	ErrProcessing       = errors.New("Failed to process location data")
)
