package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// StorageKey is the kv_store key holding the board
const StorageKey = "jobzy-storage"

// storageVersion is written into every envelope. Nothing reads it back yet.
const storageVersion = 0

// envelope is the stored JSON document: the snapshot under "state" plus a
// format version
type envelope struct {
	State   models.Snapshot `json:"state"`
	Version int             `json:"version"`
}

// Repository persists the board snapshot in the kv_store table
type Repository struct {
	db  *sql.DB
	key string
	now func() time.Time
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, key: StorageKey, now: time.Now}
}

// Load reads the stored snapshot. The boolean is false when nothing has been
// saved yet.
func (r *Repository) Load(ctx context.Context) (models.Snapshot, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", r.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return env.State, true, nil
}

// Save replaces the stored snapshot
func (r *Repository) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := json.Marshal(envelope{State: snap, Version: storageVersion})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, r.key, string(data), r.now().Unix())
		if err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		return nil
	})
}

// Clear removes the stored snapshot so the next Load starts fresh
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", r.key); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}

// UpdatedAt returns when the snapshot was last saved. The boolean is false
// when nothing has been saved yet.
func (r *Repository) UpdatedAt(ctx context.Context) (time.Time, bool, error) {
	var unix int64
	err := r.db.QueryRowContext(ctx, "SELECT updated_at FROM kv_store WHERE key = ?", r.key).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read snapshot timestamp: %w", err)
	}
	return time.Unix(unix, 0), true, nil
}
