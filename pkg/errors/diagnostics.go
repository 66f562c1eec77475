package errors

import "fmt"

// Level grades a diagnostic.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Diagnostic is a serializable, non-fatal report attached to a layout result.
type Diagnostic struct {
	Code    Code     `json:"code" toml:"code"`
	Message string   `json:"message" toml:"message"`
	Level   Level    `json:"level,omitempty" toml:"level,omitempty"`
	Floor   string   `json:"floor,omitempty" toml:"floor,omitempty"`
	Rooms   []string `json:"rooms,omitempty" toml:"rooms,omitempty"`
}

// String renders the diagnostic on a single line.
func (d Diagnostic) String() string {
	if d.Floor != "" {
		return fmt.Sprintf("%s [%s]: %s", d.Code, d.Floor, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// FromError converts err into an error-level diagnostic.
// Errors without a code are reported as INTERNAL_ERROR.
func FromError(err error) Diagnostic {
	code := GetCode(err)
	if code == "" {
		code = ErrCodeInternal
	}
	return Diagnostic{Code: code, Message: UserMessage(err), Level: LevelError}
}

// Diagnostics accumulates diagnostics during a single layout computation.
//
// A Diagnostics value is owned by one call and passed explicitly down the
// call chain; it is not safe for concurrent use.
type Diagnostics struct {
	floor string
	items []Diagnostic
}

// NewDiagnostics creates an empty accumulator.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// ForFloor returns an empty accumulator whose entries are tagged with level.
// Merge it back into d once the floor is assembled.
func (d *Diagnostics) ForFloor(level string) *Diagnostics {
	return &Diagnostics{floor: level}
}

// Warn records a warning-level diagnostic.
func (d *Diagnostics) Warn(code Code, rooms []string, format string, args ...any) {
	d.add(LevelWarning, code, rooms, format, args...)
}

// Info records an info-level diagnostic.
func (d *Diagnostics) Info(code Code, rooms []string, format string, args ...any) {
	d.add(LevelInfo, code, rooms, format, args...)
}

func (d *Diagnostics) add(level Level, code Code, rooms []string, format string, args ...any) {
	if d == nil {
		return
	}
	d.items = append(d.items, Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Level:   level,
		Floor:   d.floor,
		Rooms:   rooms,
	})
}

// Merge appends all entries of other to d.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if d == nil || other == nil {
		return
	}
	d.items = append(d.items, other.items...)
}

// Items returns the recorded diagnostics in insertion order.
func (d *Diagnostics) Items() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.items
}

// Len returns the number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Has reports whether a diagnostic with code was recorded.
func (d *Diagnostics) Has(code Code) bool {
	for _, it := range d.Items() {
		if it.Code == code {
			return true
		}
	}
	return false
}
