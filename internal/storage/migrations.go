package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. The database is created fresh on every start, but versioned
// migrations keep schema changes reviewable and let tests pin the layout.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS expenses (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					amount REAL NOT NULL,
					category TEXT NOT NULL,
					date DATETIME NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_expenses_category ON expenses(category)`,

				`CREATE TABLE IF NOT EXISTS budget_categories (
					name TEXT PRIMARY KEY,
					spent REAL NOT NULL DEFAULT 0,
					budget REAL NOT NULL,
					color TEXT NOT NULL DEFAULT ''
				)`,

				`CREATE TABLE IF NOT EXISTS bills (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					amount REAL NOT NULL,
					due_date DATETIME NOT NULL,
					status TEXT NOT NULL DEFAULT 'Pending'
				)`,
				`CREATE INDEX idx_bills_due_date ON bills(due_date)`,

				`CREATE TABLE IF NOT EXISTS goals (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					target_amount REAL NOT NULL,
					current_amount REAL NOT NULL DEFAULT 0,
					due_date DATETIME NOT NULL,
					priority TEXT NOT NULL DEFAULT 'Medium',
					icon TEXT NOT NULL DEFAULT ''
				)`,

				`CREATE TABLE IF NOT EXISTS notifications (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					message TEXT NOT NULL,
					date DATETIME NOT NULL,
					read INTEGER NOT NULL DEFAULT 0,
					type TEXT NOT NULL DEFAULT 'info'
				)`,

				`CREATE TABLE IF NOT EXISTS posts (
					id TEXT PRIMARY KEY,
					author_name TEXT NOT NULL,
					author_avatar TEXT NOT NULL DEFAULT '',
					author_initials TEXT NOT NULL DEFAULT '',
					timestamp TEXT NOT NULL,
					content TEXT NOT NULL,
					likes INTEGER NOT NULL DEFAULT 0,
					comments INTEGER NOT NULL DEFAULT 0,
					shares INTEGER NOT NULL DEFAULT 0
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add goal time-horizon category",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`ALTER TABLE goals ADD COLUMN category TEXT NOT NULL DEFAULT ''`)
			return err
		},
	},
	{
		Version:     3,
		Description: "Index unread notifications",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(read)`)
			return err
		},
	},
}

// migrate applies all pending migrations in order.
func (s *Store) migrate(ctx context.Context) error {
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
