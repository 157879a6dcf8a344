package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/jobzy/internal/app"
	"github.com/thenoetrevino/jobzy/internal/config"
	"github.com/thenoetrevino/jobzy/internal/logging"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// AppKey carries an already built *app.App, used by tests
	AppKey ContextKey = "jobzy.app"

	// ConfigPathKey carries the --config flag of the root command
	ConfigPathKey ContextKey = "jobzy.config_path"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	// owned is false when App came from the context and must outlive the command
	owned bool
}

// WithApp returns a context whose commands run against a
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// WithConfigPath returns a context that makes NewCLI load config from path
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, ConfigPathKey, path)
}

// GetCLIFromContext returns a CLI over the app stored in ctx, or builds a new
// one from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads configuration, initializes logging and opens the board
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if err := logging.Init(cfg.ResolvedDataDir(), level); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// LoadConfig loads the config file named by --config, falling back to the
// default location.
func LoadConfig(ctx context.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, ok := ctx.Value(ConfigPathKey).(string); ok && path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned || c.App == nil {
		return nil
	}
	return c.App.Close()
}

// closeCLI is deferred by every command
func closeCLI(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// Open is the common preamble of every command. It returns the CLI and a
// func to defer, or an error already reported through f.
func Open(ctx context.Context, f *OutputFormatter) (*CLI, func(), error) {
	c, err := GetCLIFromContext(ctx)
	if err != nil {
		return nil, nil, f.Fail(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return c, func() { closeCLI(c) }, nil
}
