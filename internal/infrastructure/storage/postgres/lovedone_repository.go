package postgres

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"safetrip/internal/domain/lovedone"
)

type LovedOneRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewLovedOneRepository(db *Storage, log *slog.Logger) *LovedOneRepository {
	return &LovedOneRepository{
		db:  db,
		log: log,
	}
}

func (r *LovedOneRepository) Create(ctx context.Context, lo *lovedone.LovedOne) error {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO loved_ones (user_id, name, email) VALUES ($1, $2, $3) RETURNING id, created_at`,
		lo.UserID, lo.Name, lo.Email).Scan(&lo.ID, &lo.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert loved one: %w", err)
	}
	return nil
}

func (r *LovedOneRepository) ListByUser(ctx context.Context, userID int) ([]lovedone.LovedOne, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, name, email, created_at FROM loved_ones WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select loved ones: %w", err)
	}
	defer rows.Close()

	out := make([]lovedone.LovedOne, 0)
	for rows.Next() {
		var lo lovedone.LovedOne
		if err := rows.Scan(&lo.ID, &lo.UserID, &lo.Name, &lo.Email, &lo.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan loved one: %w", err)
		}
		out = append(out, lo)
	}
	return out, rows.Err()
}

func (r *LovedOneRepository) Delete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM loved_ones WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete loved one: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lovedone.ErrNotFound
	}
	return nil
}
