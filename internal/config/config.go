package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Environment variables that override the config file
const (
	EnvConfigPath = "JOBZY_CONFIG"
	EnvDataDir    = "JOBZY_DATA_DIR"
	EnvLogLevel   = "JOBZY_LOG_LEVEL"
)

// Defaults
const (
	DefaultDataDir   = "~/.jobzy"
	DefaultLogLevel  = "info"
	DefaultMaxPinned = 3
	databaseFileName = "jobzy.db"
	configFileName   = "config.yaml"
	configDirName    = "jobzy"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	DataDir     string      `yaml:"data_dir"`
	LogLevel    string      `yaml:"log_level"`
	Board       BoardConfig `yaml:"board"`
	KeyMappings KeyMappings `yaml:"key_mappings"`

	// path is where the config was loaded from and where Save writes
	path string
}

// BoardConfig holds the board display defaults and the pin cap
type BoardConfig struct {
	DefaultSort        string `yaml:"default_sort"`
	PinnedFirst        *bool  `yaml:"pinned_first"`
	MaxPinnedPerColumn *int   `yaml:"max_pinned_per_column"`
	ViewMode           string `yaml:"view_mode"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		config.applyEnv()
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path. A missing file yields the defaults.
func LoadFrom(configPath string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults below
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
		}
	}

	config.path = configPath
	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the path it was loaded from, or the user's
// config directory
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where the config lives on disk
func (c *Config) Path() string {
	return c.path
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	if _, err := models.ParseSortKey(c.Board.DefaultSort); err != nil {
		return fmt.Errorf("%w: board.default_sort: %w", ErrInvalidConfig, err)
	}
	if _, err := models.ParseViewMode(c.Board.ViewMode); err != nil {
		return fmt.Errorf("%w: board.view_mode: %w", ErrInvalidConfig, err)
	}
	if c.MaxPinned() < 0 {
		return fmt.Errorf("%w: board.max_pinned_per_column must be >= 0", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// ResolvedDataDir returns DataDir with a leading ~ expanded
func (c *Config) ResolvedDataDir() string {
	return expandHome(c.DataDir)
}

// DatabasePath returns the SQLite file inside the data directory
func (c *Config) DatabasePath() string {
	return filepath.Join(c.ResolvedDataDir(), databaseFileName)
}

// MaxPinned returns the per-column pin cap (0 = unlimited)
func (c *Config) MaxPinned() int {
	if c.Board.MaxPinnedPerColumn == nil {
		return DefaultMaxPinned
	}
	return *c.Board.MaxPinnedPerColumn
}

// Criteria returns the initial board criteria derived from the board section
func (c *Config) Criteria() models.Criteria {
	criteria := models.DefaultCriteria()
	if sort, err := models.ParseSortKey(c.Board.DefaultSort); err == nil {
		criteria.Sort = sort
	}
	if mode, err := models.ParseViewMode(c.Board.ViewMode); err == nil {
		criteria.ViewMode = mode
	}
	if c.Board.PinnedFirst != nil {
		criteria.PinnedFirst = *c.Board.PinnedFirst
	}
	return criteria
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandHome(p), nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, configDirName, configFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", configDirName, configFileName), nil
}

// applyEnv lets environment variables win over the file
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Board.DefaultSort == "" {
		c.Board.DefaultSort = string(models.SortRecent)
	}
	if c.Board.ViewMode == "" {
		c.Board.ViewMode = string(models.ViewFull)
	}
	if c.Board.PinnedFirst == nil {
		pinnedFirst := true
		c.Board.PinnedFirst = &pinnedFirst
	}
	if c.Board.MaxPinnedPerColumn == nil {
		maxPinned := DefaultMaxPinned
		c.Board.MaxPinnedPerColumn = &maxPinned
	}
	c.KeyMappings.applyDefaults()
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
