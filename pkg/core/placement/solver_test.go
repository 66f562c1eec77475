package placement

import (
	"reflect"
	"testing"

	"github.com/matzehuels/floorplan/pkg/core/constraint"
	"github.com/matzehuels/floorplan/pkg/core/geom"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

var plot40x60 = plan.Size{Width: 40, Height: 60}

func sized(name string, w, h float64) plan.RoomSpec {
	return plan.RoomSpec{Name: name, Dimensions: &plan.Dimensions{Length: w, Width: h}}
}

func byName(t *testing.T, rooms []Room, name string) Room {
	t.Helper()
	for _, r := range rooms {
		if r.Spec.Name == name {
			return r
		}
	}
	t.Fatalf("room %q not placed", name)
	return Room{}
}

func TestSolveShelfPacking(t *testing.T) {
	rooms := []plan.RoomSpec{
		sized("C", 10, 5),
		sized("A", 20, 10),
		sized("B", 15, 10),
	}
	placed, err := Solve(rooms, nil, plot40x60, Options{}, errors.NewDiagnostics())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := map[string]geom.Rect{
		"A": {X: 1, Y: 1, W: 20, H: 10},
		"B": {X: 21.5, Y: 1, W: 15, H: 10},
		"C": {X: 1, Y: 11.5, W: 10, H: 5},
	}
	order := []string{"A", "B", "C"}
	for i, r := range placed {
		if r.Spec.Name != order[i] {
			t.Errorf("placed[%d] = %s, want %s", i, r.Spec.Name, order[i])
		}
		if r.Rect != want[r.Spec.Name] {
			t.Errorf("%s at %+v, want %+v", r.Spec.Name, r.Rect, want[r.Spec.Name])
		}
		if r.Pinned {
			t.Errorf("%s should not be pinned", r.Spec.Name)
		}
	}
}

func TestSolvePositionConstraints(t *testing.T) {
	tests := []struct {
		prompt string
		want   geom.Rect
	}{
		{"office on the left", geom.Rect{X: 1, Y: 1, W: 10, H: 8}},
		{"office on the right", geom.Rect{X: 29, Y: 1, W: 10, H: 8}},
		{"office in front", geom.Rect{X: 1, Y: 1, W: 10, H: 8}},
		{"office at the back", geom.Rect{X: 1, Y: 51, W: 10, H: 8}},
		{"office in the center", geom.Rect{X: 15, Y: 26, W: 10, H: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			rooms := []plan.RoomSpec{sized("Office", 10, 8)}
			placed, err := Solve(rooms, constraint.Parse(tt.prompt), plot40x60, Options{}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if placed[0].Rect != tt.want {
				t.Errorf("Rect = %+v, want %+v", placed[0].Rect, tt.want)
			}
			if !placed[0].Pinned {
				t.Error("constrained room should be pinned")
			}
		})
	}
}

func TestSolveExplicitPosition(t *testing.T) {
	room := sized("Porch", 6, 4)
	room.Position = &plan.Point{X: 5, Y: 7}
	placed, err := Solve([]plan.RoomSpec{room}, nil, plot40x60, Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := placed[0].Rect; got.X != 5 || got.Y != 7 || !placed[0].Pinned {
		t.Errorf("placed = %+v", placed[0])
	}
}

func TestSolveRepairsConstraintOverlap(t *testing.T) {
	rooms := []plan.RoomSpec{sized("Living", 20, 15), sized("Bedroom", 12, 12)}
	cs := constraint.Parse("bedroom on the left")

	t.Run("WithoutRepair", func(t *testing.T) {
		diags := errors.NewDiagnostics()
		placed, err := Solve(rooms, cs, plot40x60, Options{}, diags)
		if err != nil {
			t.Fatal(err)
		}
		if n := DetectOverlaps(placed, diags); n != 1 {
			t.Errorf("DetectOverlaps = %d, want 1", n)
		}
		if !diags.Has(errors.ErrCodeOverlapDetected) {
			t.Error("expected OVERLAP_DETECTED")
		}
	})

	t.Run("WithRepair", func(t *testing.T) {
		diags := errors.NewDiagnostics()
		placed, err := Solve(rooms, cs, plot40x60, Options{Repair: true}, diags)
		if err != nil {
			t.Fatal(err)
		}
		if n := DetectOverlaps(placed, diags); n != 0 {
			t.Errorf("DetectOverlaps = %d, want 0", n)
		}
		bed := byName(t, placed, "Bedroom")
		if bed.Rect.X != 1 || bed.Rect.Y != 1 {
			t.Errorf("pinned bedroom moved to %+v", bed.Rect)
		}
		living := byName(t, placed, "Living")
		if living.Rect.X != 13.5 || living.Rect.Y != 1 {
			t.Errorf("living at %+v, want (13.5, 1)", living.Rect)
		}
	})
}

func TestSolveContainment(t *testing.T) {
	plot := plan.Size{Width: 20, Height: 20}
	rooms := []plan.RoomSpec{
		sized("A", 10, 10),
		sized("B", 10, 10),
		sized("C", 10, 10),
		sized("Huge", 50, 5),
	}
	diags := errors.NewDiagnostics()
	placed, err := Solve(rooms, nil, plot, Options{Repair: true}, diags)
	if err != nil {
		t.Fatal(err)
	}
	interior := Interior(plot)
	for _, r := range placed {
		if !interior.Contains(r.Rect) {
			t.Errorf("%s at %+v escapes interior %+v", r.Spec.Name, r.Rect, interior)
		}
	}
	if !diags.Has(errors.ErrCodeCapacityExceeded) {
		t.Error("expected CAPACITY_EXCEEDED")
	}
	if huge := byName(t, placed, "Huge"); huge.Rect.W != 18 {
		t.Errorf("Huge width = %v, want clipped to 18", huge.Rect.W)
	}
}

func TestSolveRequestedAreaExceedsPlot(t *testing.T) {
	rooms := []plan.RoomSpec{{Name: "Living", AreaSqft: 500}}
	diags := errors.NewDiagnostics()
	if _, err := Solve(rooms, nil, plan.Size{Width: 20, Height: 20}, Options{}, diags); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, d := range diags.Items() {
		if d.Code == errors.ErrCodeCapacityExceeded && len(d.Rooms) == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected floor-level CAPACITY_EXCEEDED, got %+v", diags.Items())
	}
}

func TestSolveInvalid(t *testing.T) {
	if _, err := Solve([]plan.RoomSpec{{Name: "A", AreaSqft: 0}}, nil, plot40x60, Options{}, nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero area: err = %v", err)
	}
	if _, err := Solve([]plan.RoomSpec{sized("A", 1, 1)}, nil, plan.Size{Width: 2, Height: 2}, Options{}, nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("no interior: err = %v", err)
	}
}

func TestSolveDeterministic(t *testing.T) {
	rooms := []plan.RoomSpec{
		{Name: "Living Room", AreaSqft: 250},
		{Name: "Kitchen", AreaSqft: 120},
		{Name: "Bedroom", AreaSqft: 150},
		{Name: "Bathroom", AreaSqft: 50},
	}
	cs := constraint.Parse("kitchen near living room, bedroom at the back")
	opts := Options{Repair: true, Adjacency: true}
	first, err := Solve(rooms, cs, plot40x60, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, _ := Solve(rooms, cs, plot40x60, opts, nil)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestOrder(t *testing.T) {
	rooms := []Room{
		{Spec: plan.RoomSpec{Name: "Kitchen"}, Rect: geom.Rect{W: 12, H: 10}},
		{Spec: plan.RoomSpec{Name: "Garage"}, Rect: geom.Rect{W: 20, H: 15}},
		{Spec: plan.RoomSpec{Name: "Office"}, Rect: geom.Rect{W: 10, H: 10}},
		{Spec: plan.RoomSpec{Name: "Pantry"}, Rect: geom.Rect{W: 5, H: 4}},
		{Spec: plan.RoomSpec{Name: "Hall"}, Rect: geom.Rect{W: 10, H: 10}},
	}
	cs := constraint.Parse("pantry near kitchen, office on the left")

	if got, want := Order(rooms, cs), []int{0, 2, 3, 1, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v, want %v", got, want)
	}
	if got, want := adjacencyOrder(Order(rooms, cs), rooms, cs), []int{0, 3, 2, 1, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("adjacencyOrder = %v, want %v", got, want)
	}
	if got, want := Order(rooms, nil), []int{1, 0, 2, 4, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order(no constraints) = %v, want %v", got, want)
	}
}
