package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Format identifies a plan file encoding.
type Format string

// Supported plan encodings.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath returns the plan encoding implied by a file extension.
// Anything that is not .toml is treated as JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// =============================================================================
// Plan Serialization API
// =============================================================================

// MarshalPlan serializes a plan to pretty-printed JSON bytes.
func MarshalPlan(p PlanData) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// UnmarshalPlan decodes a plan in the given format.
func UnmarshalPlan(data []byte, format Format) (PlanData, error) {
	return readPlanFrom(bytes.NewReader(data), format)
}

// ReadPlan decodes a plan from an io.Reader.
func ReadPlan(r io.Reader, format Format) (PlanData, error) {
	return readPlanFrom(r, format)
}

// ReadPlanFile reads a plan from a .json or .toml file.
func ReadPlanFile(path string) (PlanData, error) {
	f, err := os.Open(path)
	if err != nil {
		return PlanData{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readPlanFrom(f, FormatFromPath(path))
}

// =============================================================================
// Result Serialization API
// =============================================================================

// MarshalResult serializes a result to pretty-printed JSON bytes.
func MarshalResult(r LayoutResult) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a LayoutResult.
func UnmarshalResult(data []byte) (LayoutResult, error) {
	var r LayoutResult
	if err := json.Unmarshal(data, &r); err != nil {
		return LayoutResult{}, fmt.Errorf("unmarshal result: %w", err)
	}
	if r.Success && len(r.Floors) == 0 {
		return LayoutResult{}, fmt.Errorf("layout result must contain floors")
	}
	return r, nil
}

// WriteResult writes a result as indented JSON to an io.Writer.
func WriteResult(r LayoutResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteResultFile writes a result to a JSON file.
func WriteResultFile(r LayoutResult, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadResultFile reads a result from a JSON file.
func ReadResultFile(path string) (LayoutResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalResult(data)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func readPlanFrom(r io.Reader, format Format) (PlanData, error) {
	var p PlanData
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
			return PlanData{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return PlanData{}, fmt.Errorf("decode: %w", err)
		}
	default:
		return PlanData{}, fmt.Errorf("unsupported plan format %q", format)
	}
	return p, nil
}
