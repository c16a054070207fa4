package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"zapstore/internal/domain"

	_ "modernc.org/sqlite"
)

type sqliteRepo struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a database file. A single connection keeps
// ":memory:" databases shared across calls.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewSQLite creates the slots table when missing.
func NewSQLite(ctx context.Context, db *sql.DB) (Repository, error) {
	const q = `
CREATE TABLE IF NOT EXISTS slots (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL
)`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &sqliteRepo{db: db}, nil
}

const sqliteUpsert = `
INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

func (r *sqliteRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return []byte(value), nil
}

func (r *sqliteRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, sqliteUpsert, key, string(value), now())
	return err
}

func (r *sqliteRepo) SetMany(ctx context.Context, values map[string][]byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	ts := now()
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if _, err := tx.ExecContext(ctx, sqliteUpsert, key, string(values[key]), ts); err != nil {
			return fmt.Errorf("write slot %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (r *sqliteRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	return err
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
