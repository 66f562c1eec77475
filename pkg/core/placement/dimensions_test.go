package placement

import (
	"testing"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name        string
		room        plan.RoomSpec
		want        plan.Size
		wantMissing bool
	}{
		{
			name: "ByType",
			room: plan.RoomSpec{Name: "Cook Space", Type: "kitchen", AreaSqft: 120},
			want: plan.Size{Width: 13, Height: 9.5},
		},
		{
			name: "ByName",
			room: plan.RoomSpec{Name: "Bedroom", AreaSqft: 150},
			want: plan.Size{Width: 13.5, Height: 11},
		},
		{
			name:        "FallbackToBedroom",
			room:        plan.RoomSpec{Name: "Gym", AreaSqft: 100},
			want:        plan.Size{Width: 11, Height: 9},
			wantMissing: true,
		},
		{
			name: "ExplicitVerbatim",
			room: plan.RoomSpec{Name: "Study", AreaSqft: 999, Dimensions: &plan.Dimensions{Length: 10.3, Width: 8}},
			want: plan.Size{Width: 10.3, Height: 8},
		},
		{
			name: "TinyAreaKeepsMinimumSide",
			room: plan.RoomSpec{Name: "Closet", AreaSqft: 0.1},
			want: plan.Size{Width: 0.5, Height: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := errors.NewDiagnostics()
			got, err := ResolveDimensions(tt.room, diags)
			if err != nil {
				t.Fatalf("ResolveDimensions: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDimensions = %+v, want %+v", got, tt.want)
			}
			if diags.Has(errors.ErrCodeMissingStandard) != tt.wantMissing {
				t.Errorf("MISSING_STANDARD = %v, want %v", diags.Has(errors.ErrCodeMissingStandard), tt.wantMissing)
			}
		})
	}
}

func TestResolveDimensionsInvalid(t *testing.T) {
	rooms := []plan.RoomSpec{
		{Name: "Zero", AreaSqft: 0},
		{Name: "Negative", AreaSqft: -10},
		{Name: "BadDims", AreaSqft: 100, Dimensions: &plan.Dimensions{Length: 10, Width: 0}},
	}
	for _, r := range rooms {
		_, err := ResolveDimensions(r, nil)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("%s: err = %v, want INVALID_INPUT", r.Name, err)
		}
	}
}

func TestRoomType(t *testing.T) {
	tests := map[string]plan.RoomSpec{
		"lounge":  {Name: "Den", Type: "lounge"},
		"bedroom": {Name: "Master Bedroom"},
		"room":    {Name: "Gym"},
	}
	for want, spec := range tests {
		if got := RoomType(spec); got != want {
			t.Errorf("RoomType(%+v) = %q, want %q", spec, got, want)
		}
	}
}

func TestRoomIDs(t *testing.T) {
	got := RoomIDs([]string{"Master Bedroom", "Bedroom", "Bedroom", "bedroom-2", "!!!"})
	want := []string{"master-bedroom", "bedroom", "bedroom-2", "bedroom-2-2", "room"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RoomIDs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
