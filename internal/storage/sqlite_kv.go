package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteKV stores slots in the kv table.
type SQLiteKV struct {
	db     *sql.DB
	prefix string
}

func NewSQLiteKV(db *sql.DB, prefix string) *SQLiteKV {
	return &SQLiteKV{db: db, prefix: prefix}
}

func (r *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, r.prefix+key)
	var v []byte
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return v, nil
}

func (r *SQLiteKV) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, r.prefix+key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("kv put: %w", err)
	}
	return nil
}

func (r *SQLiteKV) Close() error {
	return r.db.Close()
}
