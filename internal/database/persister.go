package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/thenoetrevino/jobzy/internal/events"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// saveTimeout bounds a single snapshot write
const saveTimeout = 5 * time.Second

// Persister writes every snapshot-changed event to a repository.
// Failures are logged and dropped; the in-memory board stays authoritative.
type Persister struct {
	repo   SnapshotRepository
	logger *slog.Logger
}

// NewPersister creates a persister. A nil logger uses slog.Default().
func NewPersister(repo SnapshotRepository, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{repo: repo, logger: logger}
}

// Attach subscribes the persister to bus and returns the unsubscribe function
func (p *Persister) Attach(bus *events.Bus) func() {
	return bus.Subscribe(p.Handle)
}

// Handle persists the snapshot carried by a snapshot-changed event.
// Other events are ignored.
func (p *Persister) Handle(event events.Event) {
	if event.Type != events.EventSnapshotChanged || event.Snapshot == nil {
		return
	}
	p.save(*event.Snapshot, event.SequenceID)
}

func (p *Persister) save(snap models.Snapshot, seq int64) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := p.repo.Save(ctx, snap); err != nil {
		p.logger.Warn("failed to persist board snapshot",
			"sequence_id", seq,
			"cards", snap.CardCount(),
			"error", err)
		return
	}
	p.logger.Debug("board snapshot persisted", "sequence_id", seq, "cards", snap.CardCount())
}
