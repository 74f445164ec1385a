package user

import (
	"fmt"
	"strings"

	"safetrip/internal/validation"
)

// Validator checks user input before it reaches the repository.
type Validator interface {
	ValidateRegister(req RegisterRequest) error
	ValidateLogin(req LoginRequest) error
}

type RequestValidator struct{}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateRegister checks the user type first, then the field rules.
func (v *RequestValidator) ValidateRegister(req RegisterRequest) error {
	if !req.UserType.Valid() {
		return ErrInvalidUserType
	}
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (v *RequestValidator) ValidateLogin(req LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return ErrInvalidAuth
	}
	return nil
}
