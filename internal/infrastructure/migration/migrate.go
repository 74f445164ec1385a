// Package migration applies the SQL files under the configured migrations
// directory before the server starts taking requests.
package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator is the subset of migrate.Migrate used here.
type Migrator interface {
	Up() error
	Version() (version uint, dirty bool, err error)
	Close() (source error, database error)
}

// Engine opens a Migrator; tests replace it to stay off disk and DB.
type Engine func(sourceURL, databaseURL string) (Migrator, error)

var ErrDirty = errors.New("schema is dirty, fix the failed migration by hand")

type Runner struct {
	dir    string
	dsn    string
	engine Engine
}

func NewRunner(dir, dsn string, engine Engine) *Runner {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Runner{dir: dir, dsn: dsn, engine: engine}
}

func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up applies pending migrations and returns the resulting schema version.
// An empty migrations directory yields version 0.
func (r *Runner) Up() (version uint, err error) {
	m, err := r.engine("file://"+r.dir, r.dsn)
	if err != nil {
		return 0, fmt.Errorf("open migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			srcErr = fmt.Errorf("close migration source: %w", srcErr)
		}
		if dbErr != nil {
			dbErr = fmt.Errorf("close migration database: %w", dbErr)
		}
		err = errors.Join(err, srcErr, dbErr)
	}()

	if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration up: %w", upErr)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return version, fmt.Errorf("version %d: %w", version, ErrDirty)
	}
	return version, nil
}
