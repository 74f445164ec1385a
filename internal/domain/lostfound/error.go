package lostfound

import "errors"

var (
	ErrNotFound      = errors.New("Lost and found item not found")
	ErrInvalidStatus = errors.New("Invalid status")
	ErrInvalidDate   = errors.New("date_found must be a date in YYYY-MM-DD format")
	ErrInvalidInput  = errors.New("invalid input")
)
