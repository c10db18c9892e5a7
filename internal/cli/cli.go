// Package cli implements the notifstack command-line interface.
//
// Every command reads a scenario file (TOML or JSON), evaluates it with the
// stack size calculator and prints the result:
//   - count: how many rows fit together with the shelf
//   - height: the height consumed by a given number of rows plus the shelf
//   - explain: the per-row cost breakdown behind both numbers
//   - render: JSON, SVG or text artifacts
//   - sweep: count and height over a range of notification budgets
//   - lockscreen: whether a lock-state sample sizes rows for the lock screen
//   - explore: an interactive view that resizes the budget live
//   - serve: the same calculations over HTTP
//
// Results are cached (file or Redis backend, see [config.CacheConfig]).
// Logging goes to stderr through charmbracelet/log; --verbose (-v) enables
// debug output.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/notifstack/pkg/cache"
	"github.com/matzehuels/notifstack/pkg/config"
	"github.com/matzehuels/notifstack/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// defaultScenarioFile is written by init and read when no file is given.
	defaultScenarioFile = "scenario.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags.
	configPath string
	noCache    bool
	verbose    bool

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// config loads the configuration once per process. --config replaces the
// default search path.
func (c *CLI) config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFiles(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(keyer cache.Keyer) (*pipeline.Runner, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	store, err := newCache(cfg.Cache, c.noCache)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("cache ready", "backend", backendName(cfg.Cache, c.noCache))
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// options returns the pipeline options shared by all commands.
func (c *CLI) options(formats []string, refresh bool) pipeline.Options {
	return pipeline.Options{
		Resources: c.cfg.Dimens,
		Formats:   formats,
		Refresh:   refresh,
		TTL:       c.cfg.Cache.TTL,
		Logger:    c.Logger,
	}
}

func newCache(cfg config.CacheConfig, noCache bool) (cache.Cache, error) {
	switch backendName(cfg, noCache) {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   appName + ":",
		}), nil
	default:
		return cache.NewFileCache(cfg.Dir)
	}
}

func backendName(cfg config.CacheConfig, noCache bool) string {
	if noCache {
		return config.BackendNone
	}
	return cfg.Backend
}
