package config

import (
	"strconv"
	"strings"

	ferrors "github.com/matzehuels/floorplan/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FLOORPLAN_"

// ApplyEnv overrides settings from FLOORPLAN_* variables found by lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("LOG_LEVEL", &c.Log.Level)
	str("WINDOW_MODE", &c.Layout.WindowMode)
	str("CACHE_BACKEND", &c.Cache.Backend)
	str("CACHE_DIR", &c.Cache.Dir)
	str("CACHE_PREFIX", &c.Cache.Prefix)
	str("REDIS_ADDR", &c.Cache.RedisAddr)
	str("REDIS_PASSWORD", &c.Cache.RedisPassword)
	str("ADDR", &c.Server.Addr)

	if v, ok := lookup(EnvPrefix + "FORMATS"); ok {
		c.Render.Formats = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ferrors.New(ferrors.ErrCodeInvalidConfig, "%sREDIS_DB: %q is not an integer", EnvPrefix, v)
		}
		c.Cache.RedisDB = n
	}
	if v, ok := lookup(EnvPrefix + "SCALE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ferrors.New(ferrors.ErrCodeInvalidConfig, "%sSCALE: %q is not a number", EnvPrefix, v)
		}
		c.Render.Scale = f
	}
	if v, ok := lookup(EnvPrefix + "ADJACENCY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ferrors.New(ferrors.ErrCodeInvalidConfig, "%sADJACENCY: %q is not a boolean", EnvPrefix, v)
		}
		c.Layout.Adjacency = b
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
