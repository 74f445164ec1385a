package user

import "errors"

var (
	ErrNotFound        = errors.New("User not found")
	ErrInvalidAuth     = errors.New("Invalid credentials")
	ErrInvalidUserType = errors.New("Invalid user type")
	ErrEmailTaken      = errors.New("User with this email already exists")
	ErrInvalidInput    = errors.New("invalid input")
)
