package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Offline cache data types.
const (
	CacheLostFound   = "lost_found"
	CacheLovedOnes   = "loved_ones"
	CacheTripPlan    = "trip_plan"
	CacheRoutes      = "routes"
	CacheSuggestions = "suggestions"
	CacheAlerts      = "alerts"
	CacheExpenses    = "expenses"
)

var CacheTypes = []string{
	CacheLostFound,
	CacheLovedOnes,
	CacheTripPlan,
	CacheRoutes,
	CacheSuggestions,
	CacheAlerts,
	CacheExpenses,
}

var ErrNotCached = errors.New("nothing cached for this type")

// CacheEntry is the last successful server reply for one (user, type) pair.
type CacheEntry struct {
	UserID    int
	DataType  string
	Payload   []byte
	UpdatedAt time.Time
}

// SQLiteCache keeps one opaque JSON payload per user and data type.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	cache := &SQLiteCache{db: db}
	if err := cache.initTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache: %w", err)
	}
	return cache, nil
}

func (s *SQLiteCache) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS offline_cache (
			user_id    INTEGER NOT NULL,
			data_type  TEXT    NOT NULL,
			payload    TEXT    NOT NULL,
			updated_at DATETIME NOT NULL,
			PRIMARY KEY (user_id, data_type)
		);
	`)
	return err
}

// Save replaces the payload stored for (userID, dataType).
func (s *SQLiteCache) Save(ctx context.Context, userID int, dataType string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO offline_cache (user_id, data_type, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, data_type)
		DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, userID, dataType, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save %s: %w", dataType, err)
	}
	return nil
}

func (s *SQLiteCache) Load(ctx context.Context, userID int, dataType string) (CacheEntry, error) {
	entry := CacheEntry{UserID: userID, DataType: dataType}
	var payload string

	err := s.db.QueryRowContext(ctx, `
		SELECT payload, updated_at FROM offline_cache WHERE user_id = ? AND data_type = ?
	`, userID, dataType).Scan(&payload, &entry.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CacheEntry{}, ErrNotCached
	}
	if err != nil {
		return CacheEntry{}, fmt.Errorf("load %s: %w", dataType, err)
	}

	entry.Payload = []byte(payload)
	return entry, nil
}

// Clear drops everything cached for userID.
func (s *SQLiteCache) Clear(ctx context.Context, userID int) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM offline_cache WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}
