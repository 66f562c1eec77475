package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "room %q has non-positive area", "Kitchen")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}
	if want := `room "Kitchen" has non-positive area`; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if want := `INVALID_INPUT: room "Kitchen" has non-positive area`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "plan %s", "house.toml")

	if want := "FILE_NOT_FOUND: plan house.toml: file does not exist"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped cause should match fs.ErrNotExist")
	}
	if errors.Unwrap(err) != fs.ErrNotExist {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
}

func TestIs(t *testing.T) {
	roomErr := ValidatePositive(`area of room "Hall"`, 0)
	renderErr := Wrap(ErrCodeInternal, New(ErrCodeInvalidFormat, "unknown format %q", "dxf"), "render floor %s", "Ground")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"RoomArea", roomErr, ErrCodeInvalidInput, true},
		{"RoomAreaNotCapacity", roomErr, ErrCodeCapacityExceeded, false},
		{"FmtWrapped", fmt.Errorf("compute layout: %w", roomErr), ErrCodeInvalidInput, true},
		{"OuterCodeWins", renderErr, ErrCodeInternal, true},
		{"InnerCodeHidden", renderErr, ErrCodeInvalidFormat, false},
		{"Plain", errors.New("disk full"), ErrCodeInternal, false},
		{"Nil", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"Prompt", ValidatePrompt(strings.Repeat("kitchen near hall ", 500)), ErrCodeInvalidInput},
		{"Position", fmt.Errorf("floor %q: %w", "Upper", ValidateFinite("x position", math.NaN())), ErrCodeInvalidInput},
		{"Config", New(ErrCodeInvalidConfig, "window mode %q", "diagonal"), ErrCodeInvalidConfig},
		{"Plain", errors.New("plain"), ""},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"RoomArea", ValidatePositive(`area of room "Kitchen"`, -5), `area of room "Kitchen" must be positive, got -5`},
		{"BlankName", ValidateRoomName("  "), "room name cannot be empty"},
		{"Wrapped", fmt.Errorf("load plan: %w", New(ErrCodeInvalidInput, "plan has no floors")), "plan has no floors"},
		{"Plain", errors.New("rsvg-convert not found"), "rsvg-convert not found"},
		{"Nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
