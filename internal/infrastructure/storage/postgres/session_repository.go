package postgres

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"safetrip/internal/domain/session"
)

type SessionRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSessionRepository(db *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log,
	}
}

func (r *SessionRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO sessions (user_id, token_hash, expires_at) 
         VALUES ($1, decode($2, 'hex'), $3)`,
		userID, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	var userID int
	err := r.db.Pool().QueryRow(ctx,
		`SELECT user_id FROM sessions 
         WHERE token_hash = decode($1, 'hex') AND expires_at > NOW()`,
		tokenHash).Scan(&userID)
	if err != nil {
		if isNoRows(err) {
			return 0, session.ErrInvalid
		}
		return 0, fmt.Errorf("select session: %w", err)
	}
	return userID, nil
}

// Delete removes the session; an unknown hash is session.ErrInvalid.
func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM sessions WHERE token_hash = decode($1, 'hex')`, tokenHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return session.ErrInvalid
	}
	return nil
}
