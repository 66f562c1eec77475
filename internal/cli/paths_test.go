package cli

import (
	"io"
	"path/filepath"
	"testing"
)

func TestLayoutOutputPath(t *testing.T) {
	tests := []struct {
		input, output, want string
	}{
		{"house.json", "", "house.layout.json"},
		{"plans/house.toml", "", "plans/house.layout.json"},
		{"house.layout.json", "", "house.layout.json"},
		{"house.json", "out.json", "out.json"},
	}
	for _, tt := range tests {
		if got := layoutOutputPath(tt.input, tt.output); got != tt.want {
			t.Errorf("layoutOutputPath(%q, %q) = %q, want %q", tt.input, tt.output, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "house.json", "house"},
		{"", "house.layout.json", "house"},
		{"render/house.svg", "house.json", "render/house"},
		{"render/house", "house.json", "render/house"},
		{"house.v2", "house.json", "house.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestArtifactPaths(t *testing.T) {
	got := artifactPaths([]string{"svg", "json", "png"}, "house.toml", "")
	want := map[string]string{
		"svg":  "house.svg",
		"json": "house.layout.json",
		"png":  "house.png",
	}
	for f, p := range want {
		if got[f] != p {
			t.Errorf("artifactPaths[%s] = %q, want %q", f, got[f], p)
		}
	}

	single := artifactPaths([]string{"pdf"}, "house.toml", "print/ground")
	if single["pdf"] != "print/ground" {
		t.Errorf("single format output = %q", single["pdf"])
	}
}

func TestCacheDir(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	c := New(io.Discard, LogInfo)
	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(cacheHome, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	c.Config.Cache.Dir = "/srv/floorplan-cache"
	if dir, _ := c.cacheDir(); dir != "/srv/floorplan-cache" {
		t.Errorf("configured cacheDir() = %q", dir)
	}
}
