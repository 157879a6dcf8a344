package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/jobzy/internal/config"
	"github.com/thenoetrevino/jobzy/internal/database"
	"github.com/thenoetrevino/jobzy/internal/drag"
	"github.com/thenoetrevino/jobzy/internal/events"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/store"
)

// App holds the board and its collaborators.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Bus    *events.Bus
	Store  *store.Store
	Drag   *drag.Handler

	db     *sql.DB
	ownsDB bool
	repo   *database.Repository
	detach func()
	logger *slog.Logger

	notifyMu sync.RWMutex
	notifier drag.Notifier
}

// New opens the database configured in cfg and builds the application.
// Close releases the database.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a, err := NewWithDB(ctx, db, append([]Option{WithConfig(cfg)}, opts...)...)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, err
	}
	a.ownsDB = true
	return a, nil
}

// NewWithDB builds the application over an already migrated database.
// The caller keeps ownership of db.
func NewWithDB(ctx context.Context, db *sql.DB, opts ...Option) (*App, error) {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.cfg == nil {
		ac.cfg = config.Default()
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	repo := database.NewRepository(db)
	snap, err := loadSnapshot(ctx, repo, ac.logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   ac.cfg,
		Bus:      events.NewBus(),
		db:       db,
		repo:     repo,
		logger:   ac.logger,
		notifier: ac.notifier,
	}
	a.detach = database.NewPersister(repo, ac.logger).Attach(a.Bus)

	storeOpts := []store.Option{
		store.WithPinLimit(ac.cfg.MaxPinned()),
		store.WithCriteria(ac.cfg.Criteria()),
	}
	if ac.clock != nil {
		storeOpts = append(storeOpts, store.WithClock(ac.clock))
	}
	if ac.newID != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(ac.newID))
	}
	a.Store = store.New(snap, a.Bus, storeOpts...)
	a.Drag = drag.NewHandler(a.Store, drag.NotifierFunc(a.notify))

	return a, nil
}

// loadSnapshot reads the stored board, repairing it if needed.
// A first run, or an unreadable blob, starts from the default board.
func loadSnapshot(ctx context.Context, repo *database.Repository, logger *slog.Logger) (models.Snapshot, error) {
	snap, ok, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("stored board unreadable, starting fresh", "error", err)
		return models.DefaultSnapshot(), nil
	}
	if !ok {
		logger.Info("no stored board, starting fresh")
		return models.DefaultSnapshot(), nil
	}

	normalized, repairs := models.NormalizeSnapshot(snap)
	if repairs.Any() {
		logger.Warn("stored board repaired",
			"columns_added", repairs.ColumnsAdded,
			"cards_rehomed", repairs.CardsRehomed,
			"column_ids_fixed", repairs.ColumnIDsFixed,
			"duplicates_dropped", repairs.DuplicatesDropped,
			"ids_assigned", repairs.IDsAssigned,
			"tags_dropped", repairs.TagsDropped,
			"settings_reset", repairs.SettingsReset)
	}
	return normalized, nil
}

// SetNotifier replaces where drag confirmations go.
// The board UI installs itself here once it is running.
func (a *App) SetNotifier(n drag.Notifier) {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()
	a.notifier = n
}

func (a *App) notify(n drag.Notification) {
	a.notifyMu.RLock()
	target := a.notifier
	a.notifyMu.RUnlock()

	a.logger.Info("card moved", "title", n.Title, "message", n.Message)
	if target != nil {
		target.Notify(n)
	}
}

// Repo returns the snapshot repository
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Close detaches persistence and closes the database when App opened it.
func (a *App) Close() error {
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
	if a.ownsDB && a.db != nil {
		err := a.db.Close()
		a.db = nil
		return err
	}
	return nil
}
