package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/jobzy/internal/config"
	"github.com/thenoetrevino/jobzy/internal/drag"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg      *config.Config
	logger   *slog.Logger
	notifier drag.Notifier
	clock    func() time.Time
	newID    func() string
}

// WithConfig sets the configuration used by NewWithDB
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithNotifier sets where drag confirmations are shown
func WithNotifier(n drag.Notifier) Option {
	return func(c *appConfig) {
		c.notifier = n
	}
}

// WithClock overrides the store's time source
func WithClock(now func() time.Time) Option {
	return func(c *appConfig) {
		c.clock = now
	}
}

// WithIDGenerator overrides how the store generates card ids
func WithIDGenerator(newID func() string) Option {
	return func(c *appConfig) {
		c.newID = newID
	}
}
