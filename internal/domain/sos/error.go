package sos

import "errors"

var (
	ErrNoContacts         = errors.New("No emergency contacts found. Please add emergency contacts first.")
	ErrMissingCoordinates = errors.New("Location coordinates are required")
	ErrInvalidCoordinates = errors.New("Location coordinates are out of range")
	ErrAllFailed          = errors.New("Failed to send alerts to any emergency contacts")
)
