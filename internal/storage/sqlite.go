package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brunohmachado/vitrine/internal/dbx"
)

// queries holds the statements shared by the plain and transactional
// repositories. It binds to a DBTX so the same code runs in both.
type queries struct {
	db dbx.DBTX
}

func (q *queries) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := q.db.QueryRowContext(ctx, `SELECT value FROM localdata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get localdata[%s]: %w", key, err)
	}
	return value, nil
}

func (q *queries) Set(ctx context.Context, key string, value []byte) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO localdata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set localdata[%s]: %w", key, err)
	}
	return nil
}

func (q *queries) Delete(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM localdata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete localdata[%s]: %w", key, err)
	}
	return nil
}

func (q *queries) Clear(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM localdata`)
	if err != nil {
		return fmt.Errorf("failed to clear localdata: %w", err)
	}
	return nil
}

func (q *queries) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT key, value FROM localdata`)
	if err != nil {
		return nil, fmt.Errorf("failed to list localdata: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan localdata row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate localdata rows: %w", err)
	}

	return result, nil
}

// SQLiteRepository implements Repository on top of a local SQLite file.
type SQLiteRepository struct {
	queries
	root *sql.DB
}

// NewSQLiteRepository binds a repository to an already-opened database.
// The schema is expected to be in place; see Open for the managed path.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{queries: queries{db: db}, root: db}
}

// Update runs fn inside a database transaction.
func (r *SQLiteRepository) Update(ctx context.Context, fn func(ctx context.Context, tr Repository) error) error {
	return dbx.WithTx(ctx, r.root, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &txRepository{queries: queries{db: tx}})
	})
}

// Close releases the underlying database handle.
func (r *SQLiteRepository) Close() error {
	return r.root.Close()
}

// txRepository is the transactional view handed to Update callbacks.
type txRepository struct {
	queries
}

// Update on an already-transactional view just runs fn; nested transactions
// are not supported by SQLite.
func (r *txRepository) Update(ctx context.Context, fn func(ctx context.Context, tr Repository) error) error {
	return fn(ctx, r)
}
