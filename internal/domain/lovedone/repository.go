package lovedone

import "context"

type Repository interface {
	Create(ctx context.Context, lo *LovedOne) error
	ListByUser(ctx context.Context, userID int) ([]LovedOne, error)
	// Delete returns ErrNotFound when id does not belong to userID.
	Delete(ctx context.Context, userID, id int) error
}
