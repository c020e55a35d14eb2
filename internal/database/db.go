// Package database persists routine history in SQLite.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle holding run history.
type Database struct {
	DB     *sql.DB
	dbFile string
	log    *slog.Logger
}

// Open connects to the database at path and ensures the schema exists.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	d := &Database{DB: conn, dbFile: path, log: slog.Default().With("component", "database")}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at DATETIME NOT NULL,
			finished_at DATETIME,
			status TEXT NOT NULL DEFAULT 'running',
			catalog_checksum TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS run_exercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			exercise_id TEXT NOT NULL,
			name TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL,
			status TEXT NOT NULL,
			finished_at DATETIME NOT NULL,
			FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_run_exercises_run ON run_exercises(run_id, position);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, q := range queries {
		if _, err := d.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// migrate records the schema version. Each step must be safe to re-run.
func (d *Database) migrate(ctx context.Context) error {
	var version int
	if err := d.DB.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version < 1 {
		if _, err := d.DB.ExecContext(ctx, "PRAGMA user_version = 1"); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}
	return nil
}

// WithTx runs fn in a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(d.log, tx, err)
	}
	return tx.Commit()
}

func rollbackWithLog(log *slog.Logger, tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Error("rollback failed", "err", rbErr)
	}
	return err
}
