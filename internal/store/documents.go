package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DocumentRepo stores whole JSON documents keyed by name. Writes replace
// the entire document; concurrent writers race with last-writer-wins.
type DocumentRepo interface {
	// Get returns the document and true, or false when the key is absent.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)

	// Put stores the document, replacing any previous version.
	Put(ctx context.Context, key string, data json.RawMessage) error

	// Delete removes the document. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// documentRepo implements DocumentRepo over the documents table.
type documentRepo struct {
	db *sql.DB
}

func (r *documentRepo) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get document %q: %w", key, err)
	}
	return json.RawMessage(data), true, nil
}

func (r *documentRepo) Put(ctx context.Context, key string, data json.RawMessage) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("put document %q: %w", key, err)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}
