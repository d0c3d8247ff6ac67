package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is bumped whenever Migrate gains a statement.
const SchemaVersion = 1

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS schema_meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			version INTEGER NOT NULL
		);`,
	}

	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO schema_meta (id, version) VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET version = excluded.version
			WHERE excluded.version > schema_meta.version
		`, SchemaVersion)
		if err != nil {
			return fmt.Errorf("migrate version: %w", err)
		}
		return nil
	})
}

// CurrentSchemaVersion reports the version recorded by Migrate, or 0 before the first run.
func CurrentSchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	row := db.QueryRowContext(ctx, `SELECT version FROM schema_meta WHERE id = 1`)
	var v int
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("schema version: %w", err)
	}
	return v, nil
}
