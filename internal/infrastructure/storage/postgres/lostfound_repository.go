package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"safetrip/internal/domain/lostfound"
)

type LostFoundRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewLostFoundRepository(db *Storage, log *slog.Logger) *LostFoundRepository {
	return &LostFoundRepository{
		db:  db,
		log: log,
	}
}

const lostFoundColumns = `report_id, user_id, location, item_description, status, report_date, date_found`

func (r *LostFoundRepository) Create(ctx context.Context, item *lostfound.Item) error {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO lost_and_found (user_id, location, item_description, status, date_found)
         VALUES ($1, $2, $3, $4, $5) RETURNING report_id, report_date`,
		item.UserID, item.Location, item.ItemDescription, string(item.Status), item.DateFound).
		Scan(&item.ReportID, &item.ReportDate)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *LostFoundRepository) Get(ctx context.Context, reportID int) (lostfound.Item, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT `+lostFoundColumns+` FROM lost_and_found WHERE report_id = $1`, reportID)
	item, err := scanItem(row)
	if err != nil {
		if isNoRows(err) {
			return lostfound.Item{}, lostfound.ErrNotFound
		}
		return lostfound.Item{}, fmt.Errorf("select report: %w", err)
	}
	return item, nil
}

func (r *LostFoundRepository) Update(ctx context.Context, item lostfound.Item) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE lost_and_found
            SET location = $2, item_description = $3, status = $4, date_found = $5
          WHERE report_id = $1`,
		item.ReportID, item.Location, item.ItemDescription, string(item.Status), item.DateFound)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lostfound.ErrNotFound
	}
	return nil
}

func (r *LostFoundRepository) Delete(ctx context.Context, reportID int) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM lost_and_found WHERE report_id = $1`, reportID)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lostfound.ErrNotFound
	}
	return nil
}

func (r *LostFoundRepository) List(ctx context.Context) ([]lostfound.Item, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+lostFoundColumns+` FROM lost_and_found ORDER BY report_date DESC, report_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select reports: %w", err)
	}
	defer rows.Close()

	items := make([]lostfound.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (lostfound.Item, error) {
	var (
		item      lostfound.Item
		status    string
		dateFound *time.Time
	)
	err := row.Scan(&item.ReportID, &item.UserID, &item.Location, &item.ItemDescription,
		&status, &item.ReportDate, &dateFound)
	if err != nil {
		return lostfound.Item{}, err
	}
	item.Status = lostfound.Status(status)
	item.DateFound = dateFound
	return item, nil
}
