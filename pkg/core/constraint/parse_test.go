package constraint

import (
	"reflect"
	"testing"

	"github.com/matzehuels/floorplan/pkg/plan"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []plan.LayoutConstraint
	}{
		{
			name:   "Empty",
			prompt: "",
			want:   []plan.LayoutConstraint{},
		},
		{
			name:   "Blank",
			prompt: "   \n\t",
			want:   []plan.LayoutConstraint{},
		},
		{
			name:   "NoMatches",
			prompt: "make it cozy",
			want:   []plan.LayoutConstraint{},
		},
		{
			name:   "Adjacency",
			prompt: "Kitchen near Dining",
			want: []plan.LayoutConstraint{
				{RoomID: "kitchen", AdjacentTo: []string{"dining"}},
			},
		},
		{
			name:   "AdjacencyVariants",
			prompt: "kitchen next to the pantry, bath BESIDE bedroom, office adjacent to den",
			want: []plan.LayoutConstraint{
				{RoomID: "kitchen", AdjacentTo: []string{"pantry"}},
				{RoomID: "bath", AdjacentTo: []string{"bedroom"}},
				{RoomID: "office", AdjacentTo: []string{"den"}},
			},
		},
		{
			name:   "Position",
			prompt: "bedroom on the left and garage at back",
			want: []plan.LayoutConstraint{
				{RoomID: "bedroom", Position: plan.PositionLeft},
				{RoomID: "garage", Position: plan.PositionBack},
			},
		},
		{
			name:   "Centre",
			prompt: "Lobby in the centre",
			want: []plan.LayoutConstraint{
				{RoomID: "lobby", Position: plan.PositionCenter},
			},
		},
		{
			name:   "TwoWordRoom",
			prompt: "Living Room in front",
			want: []plan.LayoutConstraint{
				{RoomID: "living room", Position: plan.PositionFront},
			},
		},
		{
			name:   "AdjacencyBeforePosition",
			prompt: "bedroom on the right, kitchen near the dining room",
			want: []plan.LayoutConstraint{
				{RoomID: "kitchen", AdjacentTo: []string{"dining room"}},
				{RoomID: "bedroom", Position: plan.PositionRight},
			},
		},
		{
			name:   "SameRoomBothKinds",
			prompt: "kitchen near dining. kitchen on the left",
			want: []plan.LayoutConstraint{
				{RoomID: "kitchen", AdjacentTo: []string{"dining"}},
				{RoomID: "kitchen", Position: plan.PositionLeft},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.prompt)
			if got == nil {
				t.Fatal("Parse returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) =\n  %+v\nwant\n  %+v", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	prompt := "kitchen near dining, bedroom on the left, bath beside bedroom"
	first := Parse(prompt)
	for i := 0; i < 10; i++ {
		if got := Parse(prompt); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestPositionFor(t *testing.T) {
	cs := Parse("kitchen near dining, kitchen on the left, kitchen on the right")
	pos, ok := PositionFor(cs, "kitchen")
	if !ok || pos != plan.PositionLeft {
		t.Errorf("PositionFor = %q, %v, want left", pos, ok)
	}
	if _, ok := PositionFor(cs, "dining"); ok {
		t.Error("dining has no position constraint")
	}
}

func TestReferenced(t *testing.T) {
	cs := Parse("kitchen near dining, bath beside kitchen, office on the left")
	want := []string{"kitchen", "dining", "bath", "office"}
	if got := Referenced(cs); !reflect.DeepEqual(got, want) {
		t.Errorf("Referenced = %v, want %v", got, want)
	}
}

func TestMatchesRoom(t *testing.T) {
	tests := []struct {
		id, name, typ string
		want          bool
	}{
		{"kitchen", "Kitchen", "", true},
		{"living room", "Living Room", "", true},
		{"living", "Living Room", "", true},
		{"bedroom", "Master Bedroom", "", true},
		{"bed", "Master Bedroom", "", false},
		{"lounge", "Main Hall", "lounge", true},
		{"", "Kitchen", "", false},
	}
	for _, tt := range tests {
		if got := MatchesRoom(tt.id, tt.name, tt.typ); got != tt.want {
			t.Errorf("MatchesRoom(%q, %q, %q) = %v, want %v", tt.id, tt.name, tt.typ, got, tt.want)
		}
	}
}
