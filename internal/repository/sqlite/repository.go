// Package sqlite persists the settlement engine's state: the peer-identity
// map, the idempotency ledger, precision-loss leftovers, the observer cursor
// and the checked/unchecked transaction sets.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type (
	// Metrics records metrics for store operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ErrPeerAccountMismatch is returned when a settlement account is already
// bound to a different ledger account. Reassignment is forbidden; the account
// must be deleted and recreated instead.
var ErrPeerAccountMismatch = errors.New("settlement account already bound to a different ledger account")

// Repository is the sqlite-backed store. Every exported method is
// individually atomic.
type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository opens (or creates) the database at dsn and runs migrations.
// Pass ":memory:" for an in-memory database.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("sqlite dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("store metrics is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// sqlite permits a single writer; one pooled connection keeps the store
	// serializable and makes ":memory:" behave as one database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// Close releases the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
