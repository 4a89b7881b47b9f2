package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		title               TEXT    NOT NULL,
		description         TEXT    NOT NULL,
		location            TEXT    NOT NULL,
		price_per_night     TEXT    NOT NULL,
		rating              TEXT,
		review_count        INTEGER NOT NULL DEFAULT 0 CHECK (review_count >= 0),
		images              TEXT    NOT NULL,
		amenities           TEXT    NOT NULL DEFAULT '[]',
		property_type       TEXT    NOT NULL DEFAULT '',
		max_guests          INTEGER NOT NULL CHECK (max_guests >= 1),
		bedrooms            INTEGER NOT NULL CHECK (bedrooms >= 1),
		bathrooms           INTEGER NOT NULL CHECK (bathrooms >= 1),
		host_name           TEXT    NOT NULL DEFAULT '',
		host_avatar         TEXT,
		host_is_superhost   INTEGER NOT NULL DEFAULT 0,
		latitude            TEXT,
		longitude           TEXT,
		category            TEXT    NOT NULL,
		is_guest_favorite   INTEGER NOT NULL DEFAULT 0,
		has_unique_stay     INTEGER NOT NULL DEFAULT 0,
		cancellation_policy TEXT    NOT NULL DEFAULT 'flexible',
		check_in_time       TEXT    NOT NULL DEFAULT '3:00 PM',
		check_out_time      TEXT    NOT NULL DEFAULT '11:00 AM',
		created_at          DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		username   TEXT    NOT NULL UNIQUE,
		email      TEXT    NOT NULL UNIQUE COLLATE NOCASE,
		password   TEXT    NOT NULL,
		first_name TEXT    NOT NULL DEFAULT '',
		last_name  TEXT    NOT NULL DEFAULT '',
		avatar     TEXT    NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS wishlist (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     INTEGER NOT NULL,
		property_id INTEGER NOT NULL,
		created_at  DATETIME NOT NULL,
		UNIQUE (user_id, property_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		property_id    INTEGER NOT NULL,
		user_id        INTEGER NOT NULL,
		check_in_date  TEXT    NOT NULL,
		check_out_date TEXT    NOT NULL,
		total_price    REAL    NOT NULL CHECK (total_price >= 0),
		created_at     DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	// Columns added after the first release.
	columnMigrations := []struct {
		table, column, definition string
	}{
		{"users", "name", "TEXT NOT NULL DEFAULT ''"},
		{"users", "bio", "TEXT NOT NULL DEFAULT ''"},
	}

	for _, cm := range columnMigrations {
		if err := addColumnIfNotExists(db, cm.table, cm.column, cm.definition); err != nil {
			return fmt.Errorf("adding %s.%s: %w", cm.table, cm.column, err)
		}
	}

	return nil
}

// addColumnIfNotExists adds a column to a table if it doesn't already exist.
func addColumnIfNotExists(db *sql.DB, table, column, definition string) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return fmt.Errorf("checking table info: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			slog.Warn("closing rows", "table", table, "error", cerr)
		}
	}()

	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dfltValue any
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scanning column info: %w", err)
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating columns: %w", err)
	}

	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	return err
}
