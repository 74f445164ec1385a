package lovedone

import "errors"

var (
	ErrNotFound     = errors.New("Loved one not found")
	ErrInvalidInput = errors.New("invalid input")
)
