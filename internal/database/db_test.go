package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_SchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.dbFile)
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer again.Close()

	var version int
	if err := again.DB.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("read version failed: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected schema version 1, got %d", version)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "rollback"); err != nil {
			return err
		}
		return errors.New("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}
	if _, ok := db.GetSetting(ctx, "tx"); ok {
		t.Fatalf("expected rollback to discard the setting")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, ok := db.GetSetting(ctx, "theme"); ok {
		t.Fatalf("expected missing setting")
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "theme", "default"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	if v, ok := db.GetSetting(ctx, "theme"); !ok || v != "default" {
		t.Fatalf("expected default, got %q %v", v, ok)
	}
}

func TestCloseNil(t *testing.T) {
	var db *Database
	if err := db.Close(); err != nil {
		t.Fatalf("Close on nil returned %v", err)
	}
}
