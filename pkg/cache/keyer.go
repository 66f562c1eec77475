package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Entry lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Key prefixes.
const (
	prefixLayout   = "floorplan:layout"
	prefixArtifact = "floorplan:artifact"
)

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey keys a layout result by the hash of its input plan.
	LayoutKey(planHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys a rendered artifact by the hash of its layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds every synthesis option that changes a layout.
type LayoutKeyOpts struct {
	Prompt     string `json:"prompt,omitempty"`
	Repair     bool   `json:"repair"`
	Adjacency  bool   `json:"adjacency"`
	MergeWalls bool   `json:"merge_walls"`
	WindowMode string `json:"window_mode"`
}

// ArtifactKeyOpts holds every render option that changes an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Floor  string  `json:"floor,omitempty"`
	Scale  float64 `json:"scale"`
	Labels bool    `json:"labels"`
}

// DefaultKeyer produces content-addressed keys of the form "prefix:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(planHash string, opts LayoutKeyOpts) string {
	opts.Prompt = normalizePrompt(opts.Prompt)
	return hashKey(prefixLayout, planHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	opts.Format = strings.ToLower(opts.Format)
	return hashKey(prefixArtifact, layoutHash, opts)
}

// Pattern is the glob matching every key written under a scoped prefix ("" for
// the default keyer).
func Pattern(prefix string) string {
	return prefix + "floorplan:*"
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Prompts differing only in case or spacing parse to the same constraints.
func normalizePrompt(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
