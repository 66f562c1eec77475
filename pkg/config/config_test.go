package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	ferrors "github.com/matzehuels/floorplan/pkg/errors"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestRead(t *testing.T) {
	src := `
[log]
level = "debug"

[layout]
adjacency = true
window_mode = "x-axis"

[render]
formats = ["svg", "json"]
scale = 12.5

[cache]
backend = "redis"
redis_addr = "redis:6379"
prefix = "staging:"

[server]
addr = ":9090"
request_timeout = "5s"
`
	cfg, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("level = %v", cfg.LogLevel())
	}
	if !cfg.Layout.Adjacency || cfg.Layout.WindowMode != "x-axis" {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if len(cfg.Render.Formats) != 2 || cfg.Render.Scale != 12.5 || cfg.Render.PNGScale != 2 {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.Prefix != "staging:" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Server.RequestTimeout.Duration != 5*time.Second || cfg.Server.ShutdownTimeout.Duration != 10*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Read(strings.NewReader("[server]\nrequest_timeout = \"soon\"\n")); err == nil {
		t.Error("bad duration accepted")
	}
	if _, err := Read(strings.NewReader("not = [toml")); err == nil {
		t.Error("bad syntax accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"window mode", func(c *Config) { c.Layout.WindowMode = "diagonal" }},
		{"backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"scale", func(c *Config) { c.Render.Scale = -1 }},
		{"body", func(c *Config) { c.Server.MaxBodyBytes = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !ferrors.Is(err, ferrors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"FLOORPLAN_LOG_LEVEL":     "warn",
		"FLOORPLAN_CACHE_BACKEND": "none",
		"FLOORPLAN_REDIS_DB":      "3",
		"FLOORPLAN_SCALE":         "8",
		"FLOORPLAN_ADJACENCY":     "true",
		"FLOORPLAN_FORMATS":       "svg, png",
		"FLOORPLAN_ADDR":          "127.0.0.1:7000",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" || cfg.Cache.Backend != BackendNone || cfg.Cache.RedisDB != 3 ||
		cfg.Render.Scale != 8 || !cfg.Layout.Adjacency || cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Render.Formats) != 2 || cfg.Render.Formats[1] != "png" {
		t.Errorf("formats = %v", cfg.Render.Formats)
	}

	env["FLOORPLAN_REDIS_DB"] = "three"
	if err := cfg.ApplyEnv(lookup); !ferrors.Is(err, ferrors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}

	path := filepath.Join(dir, appName, "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9999\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}

	t.Setenv("FLOORPLAN_ADDR", ":1234")
	cfg, _ = Load(path)
	if cfg.Server.Addr != ":1234" {
		t.Errorf("env did not override file: %q", cfg.Server.Addr)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !ferrors.Is(err, ferrors.ErrCodeFileNotFound) {
		t.Errorf("explicit missing file: err = %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	_ = os.WriteFile(bad, []byte("[cache]\nbackend = \"tape\"\n"), 0644)
	if _, err := Load(bad); !ferrors.Is(err, ferrors.ErrCodeInvalidConfig) {
		t.Errorf("invalid backend: err = %v", err)
	}
}

func TestPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_CACHE_HOME", "/cache")
	if p, _ := Path(); p != filepath.Join("/cfg", "floorplan", "config.toml") {
		t.Errorf("Path = %q", p)
	}
	if d, _ := CacheDir(); d != filepath.Join("/cache", "floorplan") {
		t.Errorf("CacheDir = %q", d)
	}
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()

	c, _, err := CacheConfig{Backend: BackendNone}.OpenCache(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("none backend = %T", c)
	}

	dir := t.TempDir()
	c, _, err = CacheConfig{Backend: BackendFile, Dir: dir}.OpenCache(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if fc, ok := c.(*cache.FileCache); !ok || fc.Dir() != dir {
		t.Errorf("file backend = %T", c)
	}

	mr := miniredis.RunT(t)
	c, keyer, err := CacheConfig{Backend: BackendRedis, RedisAddr: mr.Addr(), Prefix: "t:"}.OpenCache(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := c.(*cache.RedisCache); !ok {
		t.Errorf("redis backend = %T", c)
	}
	if k := keyer.LayoutKey("h", cache.LayoutKeyOpts{}); !strings.HasPrefix(k, "t:floorplan:layout:") {
		t.Errorf("key = %q", k)
	}
}
