package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// WAL mode for better concurrency, busy timeout to wait instead of failing
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{db}, nil
}

func (d *DB) Close() error {
	return d.DB.Close()
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS rsvps (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		can_attend TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT,
		other_guests TEXT,
		arriving TEXT,
		departing TEXT,
		camping TEXT,
		notes TEXT,
		questions TEXT,
		response_subject TEXT NOT NULL,
		response_body TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS questions (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	return nil
}
