package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
)

type queries struct {
	get    string
	set    string
	delete string
}

var sqliteQueries = queries{
	get: `SELECT value FROM metadata WHERE key = ?`,
	set: `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
	delete: `DELETE FROM metadata WHERE key = ?`,
}

var postgresQueries = queries{
	get: `SELECT value FROM metadata WHERE key = $1`,
	set: `INSERT INTO metadata (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
	delete: `DELETE FROM metadata WHERE key = $1`,
}

// repository reads and writes the metadata table through either the pool
// or an open transaction.
type repository struct {
	db dbx.DBTX
	q  queries
}

func (r repository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, r.q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r repository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, r.q.set, key, value); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r repository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, r.q.delete, key); err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

// SQLStore is a Store over a database/sql pool holding the metadata table.
type SQLStore struct {
	repository
	db *sql.DB
}

var _ Store = (*SQLStore)(nil)

func newSQLStore(db *sql.DB, q queries) *SQLStore {
	return &SQLStore{repository: repository{db: db, q: q}, db: db}
}

// Update runs fn in a transaction; writes go through the transaction.
func (s *SQLStore) Update(ctx context.Context, fn func(ctx context.Context, w Writer) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, repository{db: tx, q: s.q})
	})
}

// DB exposes the underlying pool.
func (s *SQLStore) DB() *sql.DB { return s.db }

func (s *SQLStore) Close() error { return s.db.Close() }
