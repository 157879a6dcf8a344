// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// SnapshotRepository loads and saves the whole board as one opaque blob.
// Load reports false when nothing has been saved yet.
type SnapshotRepository interface {
	Load(ctx context.Context) (models.Snapshot, bool, error)
	Save(ctx context.Context, snap models.Snapshot) error
}

// Compile-time verification that *Repository implements SnapshotRepository
var _ SnapshotRepository = (*Repository)(nil)
