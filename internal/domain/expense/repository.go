package expense

import "context"

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	// ListByUser returns the newest spending first.
	ListByUser(ctx context.Context, userID int) ([]Expense, error)
	Delete(ctx context.Context, userID, id int) error
}
