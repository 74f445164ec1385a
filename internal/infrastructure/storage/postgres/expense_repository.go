package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"

	"safetrip/internal/domain/expense"
)

type ExpenseRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewExpenseRepository(db *Storage, log *slog.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:  db,
		log: log,
	}
}

// Amounts cross the driver as text so NUMERIC precision survives untouched.
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO expenses (user_id, title, category, amount, currency, spent_on)
         VALUES ($1, $2, $3, $4::numeric, $5, $6) RETURNING id, created_at`,
		e.UserID, e.Title, string(e.Category), e.Amount.StringFixed(2), e.Currency, e.SpentOn).
		Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID int) ([]expense.Expense, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, title, category, amount::text, currency, spent_on, created_at
           FROM expenses
          WHERE user_id = $1
          ORDER BY spent_on DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	out := make([]expense.Expense, 0)
	for rows.Next() {
		var (
			e        expense.Expense
			category string
			amount   string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &category, &amount, &e.Currency, &e.SpentOn, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Category = expense.Category(category)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExpenseRepository) Delete(ctx context.Context, userID, id int) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrNotFound
	}
	return nil
}
