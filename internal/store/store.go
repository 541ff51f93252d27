// Package store implements the persistent key-value store backing all
// NovaBiz collections. Each key holds one JSON-serialized snapshot (the user
// directory, the session user, one task list per owner, the post feed); the
// data lives in a single SQLite table and survives process restarts.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/novabiz/internal/dbx"
)

// KV is the basic read/write surface of the store. Get returns nil (and no
// error) for an absent key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Store is the full contract used by services. Update and Txn serialize all
// mutations behind one process-wide lock, so two callers can not interleave
// a load-modify-save cycle on the same key.
type Store interface {
	KV

	// Update atomically replaces the value under key: the current value
	// (nil when absent) is passed to fn and the returned bytes are stored.
	// Returning nil bytes removes the key. An error from fn aborts the
	// update and is returned unchanged.
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error

	// Txn runs fn against a transactional KV; all writes commit together
	// or not at all.
	Txn(ctx context.Context, fn func(ctx context.Context, kv KV) error) error
}

// SQLiteStore is the Store implementation over a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// sqliteKV issues the raw key-value statements over a DBTX, so the same code
// serves both direct calls and transactional ones.
type sqliteKV struct {
	db dbx.DBTX
}

func (r sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get storage[%s]: %w", key, err)
	}
	return value, nil
}

func (r sqliteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set storage[%s]: %w", key, err)
	}
	return nil
}

func (r sqliteKV) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove storage[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	return sqliteKV{s.db}.Get(ctx, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sqliteKV{s.db}.Set(ctx, key, value)
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sqliteKV{s.db}.Remove(ctx, key)
}

func (s *SQLiteStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kv := sqliteKV{tx}

		old, err := kv.Get(ctx, key)
		if err != nil {
			return err
		}

		next, err := fn(old)
		if err != nil {
			return err
		}
		if next == nil {
			return kv.Remove(ctx, key)
		}
		return kv.Set(ctx, key, next)
	})
}

func (s *SQLiteStore) Txn(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, sqliteKV{tx})
	})
}
