package expense

import "errors"

var (
	ErrNotFound        = errors.New("Expense not found")
	ErrInvalidCategory = errors.New("Invalid category")
	ErrInvalidAmount   = errors.New("amount must be a positive number with at most 2 decimal places")
	ErrInvalidInput    = errors.New("invalid input")
)
