package session

import (
	"context"
	"errors"
	"time"
)

var ErrInvalid = errors.New("invalid session")

type Repository interface {
	Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error
	// Validate returns the owner of a live session or ErrInvalid.
	Validate(ctx context.Context, tokenHash string) (int, error)
	Delete(ctx context.Context, tokenHash string) error
}
