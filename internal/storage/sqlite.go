// Package storage implements the application state container on top of an
// in-memory SQLite database. All state is volatile and process-lifetime
// only; nothing is ever written to disk.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
	"github.com/Shubham-Khatrii/budgetwise/internal/service"
)

// memoryDSN returns a uniquely named in-memory database so that separate
// Store instances never share state. The shared cache keeps the database
// alive for as long as the connection below stays open.
func memoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
}

// Store owns all domain collections and is the only write path to them.
// Mutations keep the derived aggregates consistent and emit toast side
// effects through the configured Toaster.
type Store struct {
	db      *sql.DB
	toaster service.Toaster
	user    model.Author
}

// Option configures a Store.
type Option func(*Store)

// WithToaster installs the side-effect sink mutations report through.
func WithToaster(t service.Toaster) Option {
	return func(s *Store) {
		if t != nil {
			s.toaster = t
		}
	}
}

// WithCurrentUser sets the identity locally created posts are attributed to.
func WithCurrentUser(u model.Author) Option {
	return func(s *Store) {
		s.user = u
	}
}

// Open creates the in-memory store, migrates the schema, and seeds the
// fixed sample data.
func Open(ctx context.Context, opts ...Option) (*Store, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", memoryDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection, kept open for the store's lifetime. A second
	// connection would get its own empty memory database once this one
	// closes, and SQLite gains nothing from a pool here anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{
		db:      db,
		toaster: service.NopToaster{},
		user: model.Author{
			Name:     "Shubham Khatri",
			Initials: "SK",
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.seed(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database; all state is gone afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}
