package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the dashboard tables. Column types are limited to TEXT and
// BIGINT so the same statements run on SQLite and Postgres. Timestamps are
// RFC3339 UTC text, money is integer cents.
func InitSchema(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createClientsQuery := `
	CREATE TABLE IF NOT EXISTS clients (
		client_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	`

	createStaffQuery := `
	CREATE TABLE IF NOT EXISTS staff (
		staff_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		hourly_rate_cents BIGINT NOT NULL DEFAULT 0,
		active BIGINT NOT NULL DEFAULT 1
	);
	`

	createEventsQuery := `
	CREATE TABLE IF NOT EXISTS events (
		event_id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		name TEXT NOT NULL,
		venue_address TEXT NOT NULL DEFAULT '',
		starts_at TEXT NOT NULL,
		ends_at TEXT NOT NULL,
		guest_count BIGINT NOT NULL DEFAULT 0,
		status TEXT NOT NULL
	);
	`

	createEventStaffQuery := `
	CREATE TABLE IF NOT EXISTS event_staff (
		event_id TEXT NOT NULL,
		staff_id TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (event_id, staff_id)
	);
	`

	createCredentialsQuery := `
	CREATE TABLE IF NOT EXISTS credentials (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_events_starts_at
	ON events(starts_at);
	`

	statements := []string{
		createClientsQuery,
		createStaffQuery,
		createEventsQuery,
		createEventStaffQuery,
		createCredentialsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema (%s): exec statement #%d: %w", driver, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
