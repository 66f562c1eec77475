package plan

import (
	"github.com/matzehuels/floorplan/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Wall thickness classes in feet.
const (
	ExteriorWallThickness  = 1.0
	InteriorWallThickness  = 0.5
	PartitionWallThickness = 0.33
)

// Opening widths in feet.
const (
	DoorWidth   = 3.0
	WindowWidth = 4.0
)

// Wall types.
const (
	WallExterior  = "exterior"
	WallInterior  = "interior"
	WallPartition = "partition"
)

// Door and window types.
const (
	DoorSingle     = "single"
	DoorDouble     = "double"
	WindowStandard = "standard"
)

// GroundLevel is the level label that never receives a stairwell.
const GroundLevel = "Ground"

// Position is an absolute placement directive parsed from a prompt.
type Position string

// Positions understood by the placement solver.
const (
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
	PositionFront  Position = "front"
	PositionBack   Position = "back"
	PositionCenter Position = "center"
)

// =============================================================================
// Input
// =============================================================================

// PlanData is the room program for a whole building.
type PlanData struct {
	BuildingType   string      `json:"buildingType,omitempty" toml:"buildingType,omitempty"`
	TotalArea      float64     `json:"totalArea,omitempty" toml:"totalArea,omitempty"`
	PlotDimensions *Size       `json:"plotDimensions,omitempty" toml:"plotDimensions,omitempty"`
	Floors         []FloorSpec `json:"floors" toml:"floors"`
}

// FloorSpec lists the rooms requested on one building level.
type FloorSpec struct {
	Level string     `json:"level" toml:"level"`
	Rooms []RoomSpec `json:"rooms" toml:"rooms"`
}

// RoomSpec is a room the caller wants placed. Type, Dimensions, and Position
// are optional; when Dimensions is set AreaSqft is not consulted.
type RoomSpec struct {
	Name       string      `json:"name" toml:"name"`
	Type       string      `json:"type,omitempty" toml:"type,omitempty"`
	AreaSqft   float64     `json:"areaSqft" toml:"areaSqft"`
	Dimensions *Dimensions `json:"dimensions,omitempty" toml:"dimensions,omitempty"`
	Position   *Point      `json:"position,omitempty" toml:"position,omitempty"`
}

// Dimensions are explicit room measurements. Length maps to the x-extent and
// Width to the y-extent of the placed room.
type Dimensions struct {
	Length float64 `json:"length" toml:"length"`
	Width  float64 `json:"width" toml:"width"`
}

// Size is a width × height pair.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Area returns Width × Height.
func (s Size) Area() float64 { return s.Width * s.Height }

// Point is an absolute coordinate.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// LayoutConstraint is a directive extracted from free text. RoomID and the
// entries of AdjacentTo are lowercased room names.
type LayoutConstraint struct {
	RoomID     string   `json:"roomId"`
	AdjacentTo []string `json:"adjacentTo,omitempty"`
	Position   Position `json:"position,omitempty"`
}

// =============================================================================
// Output
// =============================================================================

// LayoutResult is the top-level return value of a layout call.
type LayoutResult struct {
	Success        bool                `json:"success"`
	Floors         []FloorLayout       `json:"floors"`
	PlotDimensions Size                `json:"plotDimensions"`
	Errors         []errors.Diagnostic `json:"errors,omitempty"`
	Warnings       []errors.Diagnostic `json:"warnings,omitempty"`
}

// Floor returns the floor with the given level, if present.
func (r *LayoutResult) Floor(level string) (*FloorLayout, bool) {
	for i := range r.Floors {
		if r.Floors[i].Level == level {
			return &r.Floors[i], true
		}
	}
	return nil, false
}

// RoomCount returns the number of rooms across all floors.
func (r *LayoutResult) RoomCount() int {
	n := 0
	for _, f := range r.Floors {
		n += len(f.Rooms)
	}
	return n
}

// FloorLayout is the complete geometry of one building level.
type FloorLayout struct {
	Level       string       `json:"level"`
	Rooms       []RoomLayout `json:"rooms"`
	Walls       []WallLayout `json:"walls"`
	BoundingBox Size         `json:"boundingBox"`
	Circulation Circulation  `json:"circulation"`
}

// ExteriorWalls returns the walls of type exterior.
func (f *FloorLayout) ExteriorWalls() []WallLayout {
	return f.wallsOfType(WallExterior)
}

// InteriorWalls returns the walls of type interior.
func (f *FloorLayout) InteriorWalls() []WallLayout {
	return f.wallsOfType(WallInterior)
}

func (f *FloorLayout) wallsOfType(t string) []WallLayout {
	var out []WallLayout
	for _, w := range f.Walls {
		if w.Type == t {
			out = append(out, w)
		}
	}
	return out
}

// Room returns the room with the given name, if present.
func (f *FloorLayout) Room(name string) (*RoomLayout, bool) {
	for i := range f.Rooms {
		if f.Rooms[i].Name == name {
			return &f.Rooms[i], true
		}
	}
	return nil, false
}

// RoomLayout is a placed room. Doors and windows use absolute coordinates.
type RoomLayout struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Rotation float64        `json:"rotation"`
	Doors    []DoorLayout   `json:"doors"`
	Windows  []WindowLayout `json:"windows"`
}

// Area returns the placed footprint.
func (r RoomLayout) Area() float64 { return r.Width * r.Height }

// DoorLayout is a door opening on a room boundary.
type DoorLayout struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Type     string  `json:"type"`
}

// WindowLayout is a window opening on an exterior-facing room boundary.
type WindowLayout struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Type     string  `json:"type"`
}

// WallLayout is a straight wall segment.
type WallLayout struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Thickness float64 `json:"thickness"`
	Type      string  `json:"type"`
}

// Length returns the segment length.
func (w WallLayout) Length() float64 {
	dx, dy := w.X2-w.X1, w.Y2-w.Y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Circulation holds the movement spaces of a floor.
type Circulation struct {
	Corridors []Corridor `json:"corridors"`
	Stairs    *Stairs    `json:"stairs,omitempty"`
}

// Corridor is a rectangular walkway.
type Corridor struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Orientation string  `json:"orientation"`
}

// Stairs is a stairwell placeholder footprint.
type Stairs struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
