package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Store is a read-mostly SQLite-backed recipe catalog.
type Store struct {
	*sql.DB
}

// Open opens or creates the catalog database at the given path. A
// freshly created catalog is seeded with the starter recipes so the
// tool works out of the box.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", path)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	// SQLite doesn't support concurrent writes
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	s := &Store{sqlDB}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// migrate creates the schema on first open and seeds the starter
// recipes.
func (s *Store) migrate() error {
	var tableCount int
	err := s.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='recipes'
	`).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	if tableCount == 0 {
		if _, err := s.Exec(schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		if err := s.seed(context.Background()); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	return nil
}

// Health checks catalog connectivity.
func (s *Store) Health(ctx context.Context) error {
	return s.PingContext(ctx)
}
