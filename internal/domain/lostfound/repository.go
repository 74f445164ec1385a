package lostfound

import "context"

type Repository interface {
	// Create fills in ReportID and ReportDate.
	Create(ctx context.Context, item *Item) error
	Get(ctx context.Context, reportID int) (Item, error)
	Update(ctx context.Context, item Item) error
	Delete(ctx context.Context, reportID int) error
	// List returns every report, newest first.
	List(ctx context.Context) ([]Item, error)
}
