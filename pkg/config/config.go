// Package config loads floorplan settings.
//
// Settings come from three layers, later layers winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/floorplan/config.toml
//  3. FLOORPLAN_* environment variables ([Config.ApplyEnv])
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/core/openings"
	ferrors "github.com/matzehuels/floorplan/pkg/errors"
)

const appName = "floorplan"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

type Config struct {
	Log    LogConfig    `toml:"log"`
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type LayoutConfig struct {
	NoRepair     bool   `toml:"no_repair"`
	Adjacency    bool   `toml:"adjacency"`
	NoMergeWalls bool   `toml:"no_merge_walls"`
	WindowMode   string `toml:"window_mode"`
}

type RenderConfig struct {
	Formats  []string `toml:"formats"`
	Scale    float64  `toml:"scale"`
	PNGScale float64  `toml:"png_scale"`
}

type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Prefix        string `toml:"prefix"`
}

type ServerConfig struct {
	Addr            string   `toml:"addr"`
	RequestTimeout  Duration `toml:"request_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
}

// Duration is a time.Duration written as "30s" in TOML.
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Layout: LayoutConfig{WindowMode: openings.ExteriorAllEdges.String()},
		Render: RenderConfig{Formats: []string{"svg"}, Scale: 10, PNGScale: 2},
		Cache:  CacheConfig{Backend: BackendFile, RedisAddr: "localhost:6379"},
		Server: ServerConfig{
			Addr:            ":8080",
			RequestTimeout:  Duration{30 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
			MaxBodyBytes:    1 << 20,
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the default file cache directory.
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads path over the defaults and applies the environment. An empty
// path uses [Path], where a missing file is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	case errors.Is(err, fs.ErrNotExist):
		return Config{}, ferrors.New(ferrors.ErrCodeFileNotFound, "config file %s not found", path)
	case err != nil:
		return Config{}, err
	default:
		defer f.Close()
		if cfg, err = Read(f); err != nil {
			return Config{}, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Read decodes TOML from r over the defaults.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "log level %q", c.Log.Level)
	}
	if _, err := openings.ParseMode(c.Layout.WindowMode); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "layout.window_mode")
	}
	if c.Render.Scale < 0 || c.Render.PNGScale < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "render scales must not be negative")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "cache.backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Server.MaxBodyBytes < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "server.max_body_bytes must not be negative")
	}
	return nil
}

// LogLevel returns the parsed log level, info when unset.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// OpenCache opens the configured backend and returns it with its keyer.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, cache.Keyer, error) {
	keyer := cache.NewScopedKeyer(nil, c.Prefix)
	switch strings.ToLower(c.Backend) {
	case BackendNone:
		return cache.NewNullCache(), keyer, nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return rc, keyer, nil
	default:
		dir := c.Dir
		if dir == "" {
			d, err := CacheDir()
			if err != nil {
				return cache.NewNullCache(), keyer, nil
			}
			dir = d
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, nil, err
		}
		return fc, keyer, nil
	}
}
