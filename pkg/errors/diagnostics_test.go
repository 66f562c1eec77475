package errors

import (
	"errors"
	"testing"
)

func TestDiagnosticsAccumulate(t *testing.T) {
	d := NewDiagnostics()
	d.Warn(ErrCodeCapacityExceeded, []string{"Garage"}, "room %q clipped", "Garage")
	d.Info(ErrCodePlotDerived, nil, "plot derived")

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	items := d.Items()
	if items[0].Level != LevelWarning || items[0].Code != ErrCodeCapacityExceeded {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[0].Message != `room "Garage" clipped` {
		t.Errorf("Message = %q", items[0].Message)
	}
	if items[1].Level != LevelInfo {
		t.Errorf("items[1].Level = %v, want %v", items[1].Level, LevelInfo)
	}
	if !d.Has(ErrCodePlotDerived) {
		t.Error("Has(PLOT_DERIVED) = false, want true")
	}
	if d.Has(ErrCodeOverlapDetected) {
		t.Error("Has(OVERLAP_DETECTED) = true, want false")
	}
}

func TestDiagnosticsForFloor(t *testing.T) {
	root := NewDiagnostics()
	floor := root.ForFloor("First")
	floor.Warn(ErrCodeOverlapDetected, []string{"a", "b"}, "overlap")

	if root.Len() != 0 {
		t.Fatalf("root should be empty before merge, got %d", root.Len())
	}
	root.Merge(floor)
	if root.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", root.Len())
	}
	if got := root.Items()[0].Floor; got != "First" {
		t.Errorf("Floor = %q, want %q", got, "First")
	}
	if got := root.Items()[0].String(); got != "OVERLAP_DETECTED [First]: overlap" {
		t.Errorf("String() = %q", got)
	}
}

func TestDiagnosticsNil(t *testing.T) {
	var d *Diagnostics
	d.Warn(ErrCodeOverlapDetected, nil, "ignored")
	if d.Len() != 0 || d.Items() != nil {
		t.Error("nil Diagnostics should be inert")
	}
}

func TestFromError(t *testing.T) {
	got := FromError(New(ErrCodeInvalidInput, "bad area"))
	if got.Code != ErrCodeInvalidInput || got.Message != "bad area" || got.Level != LevelError {
		t.Errorf("FromError(coded) = %+v", got)
	}

	got = FromError(errors.New("boom"))
	if got.Code != ErrCodeInternal || got.Message != "boom" {
		t.Errorf("FromError(plain) = %+v", got)
	}
}
