/*
Package sqlite provides SQLite-backed persistence for catalog documents.

PURPOSE:
  Rate tables and rider catalogs are configuration, not code: they live
  in the database as versioned JSON documents and are parsed by the
  factory package on load. This is the only persistence in the system -
  quotes themselves are request-scoped values and are never stored.

KEY TABLE:
  catalogs: one row per (product, carrier), holding the JSON document,
            a version counter bumped on every upsert, and timestamps.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency
  and crash recovery.

USAGE:
  store, err := sqlite.New("./data/rating.db")  // or ":memory:"
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - factory/catalog.go: Parses the stored JSON
  - api/handlers.go: Caches parsed catalogs, reloads on admin mutation
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// CatalogRecord is one stored catalog document.
type CatalogRecord struct {
	Product    string
	Carrier    string
	Name       string
	ConfigJSON string
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Store implements catalog persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS catalogs (
		product TEXT NOT NULL,
		carrier TEXT NOT NULL,
		name TEXT NOT NULL,
		config_json TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (product, carrier)
	);

	CREATE INDEX IF NOT EXISTS idx_catalogs_product ON catalogs(product);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CATALOG STORE
// =============================================================================

// SaveCatalog inserts or updates a catalog document. Updates bump the
// version counter so the admin UI can tell stale edits apart.
func (s *Store) SaveCatalog(ctx context.Context, rec CatalogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO catalogs (product, carrier, name, config_json, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(product, carrier) DO UPDATE SET
			name = excluded.name,
			config_json = excluded.config_json,
			version = catalogs.version + 1,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, query,
		rec.Product, rec.Carrier, rec.Name, rec.ConfigJSON, now, now,
	)
	return err
}

// GetCatalog retrieves a catalog by product and carrier. Returns nil
// (no error) when absent.
func (s *Store) GetCatalog(ctx context.Context, product, carrier string) (*CatalogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec CatalogRecord
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT product, carrier, name, config_json, version, created_at, updated_at FROM catalogs WHERE product = ? AND carrier = ?",
		product, carrier,
	).Scan(&rec.Product, &rec.Carrier, &rec.Name, &rec.ConfigJSON, &rec.Version, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &rec, nil
}

// ListCatalogs returns all stored catalogs ordered by product, carrier.
func (s *Store) ListCatalogs(ctx context.Context) ([]CatalogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT product, carrier, name, config_json, version, created_at, updated_at FROM catalogs ORDER BY product, carrier",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CatalogRecord
	for rows.Next() {
		var rec CatalogRecord
		var createdAt, updatedAt string
		if err := rows.Scan(&rec.Product, &rec.Carrier, &rec.Name, &rec.ConfigJSON, &rec.Version, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteCatalog removes a catalog document.
func (s *Store) DeleteCatalog(ctx context.Context, product, carrier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM catalogs WHERE product = ? AND carrier = ?", product, carrier)
	return err
}

// Reset clears all catalogs. Dev/demo only: callers reseed afterwards.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM catalogs")
	return err
}
