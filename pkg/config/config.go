// Package config loads notifstack settings from TOML files.
//
// Files are read in order and later files override earlier ones:
//
//  1. $XDG_CONFIG_HOME/notifstack/config.toml
//  2. ./notifstack.toml
//
// Every field has a default, so an empty or missing file is valid.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "notifstack"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Defaults.
const (
	DefaultCacheTTL     = 24 * time.Hour
	DefaultRedisAddr    = "localhost:6379"
	DefaultServerAddr   = ":8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultMaxBodyBytes = 1 << 20
	DefaultLogLevel     = "info"
)

type Config struct {
	Dimens dimens.Resources `koanf:"dimens"`
	Cache  CacheConfig      `koanf:"cache"`
	Server ServerConfig     `koanf:"server"`
	Log    LogConfig        `koanf:"log"`
}

type CacheConfig struct {
	Backend string        `koanf:"backend"` // "file", "redis" or "none" (default: "file")
	TTL     time.Duration `koanf:"ttl"`     // default: 24h
	Dir     string        `koanf:"dir"`     // file backend only; default: $XDG_CACHE_HOME/notifstack
	Redis   RedisConfig   `koanf:"redis"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file sets anything.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Paths returns the default config file locations, lowest priority first.
func Paths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		AppName + ".toml",
	}
}

// Load reads the default config files that exist and applies defaults.
func Load() (*Config, error) {
	var existing []string
	for _, path := range Paths() {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return LoadFiles(existing...)
}

// LoadFiles reads the given files in order. Unlike Load, a missing file is
// an error.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config %s not found", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Dimens = c.Dimens.WithDefaults()

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFile
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = filepath.Join(xdg.CacheHome, AppName)
	} else {
		c.Cache.Dir = expandPath(c.Cache.Dir)
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = DefaultRedisAddr
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate reports settings that defaults cannot repair.
func (c *Config) Validate() error {
	if err := c.Dimens.Validate(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Cache.Redis.DB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "redis db must be >= 0, got %d", c.Cache.Redis.DB)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid log level")
	}
	return level, nil
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
