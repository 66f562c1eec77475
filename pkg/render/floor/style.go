package floor

import (
	"github.com/matzehuels/floorplan/pkg/core/standards"
	"github.com/matzehuels/floorplan/pkg/plan"
)

const (
	colorPlot      = "#fafaf7"
	colorWall      = "#2b2b2b"
	colorPartition = "#6b6b6b"
	colorDoor      = "#b5651d"
	colorWindow    = "#4a90d9"
	colorCorridor  = "#eeeeee"
	colorStairs    = "#d9d2c5"
	colorText      = "#333333"
	colorRoom      = "#f2efe6"
)

var roomColors = map[string]string{
	standards.Bedroom:  "#dbe8f5",
	standards.Bathroom: "#d5f0ec",
	standards.Kitchen:  "#fbe6c8",
	standards.Living:   "#e6f2d7",
	standards.Dining:   "#f7dccf",
	standards.Office:   "#e5dcf2",
	standards.Garage:   "#dedede",
	standards.Laundry:  "#d9eef7",
	standards.Closet:   "#ece7dc",
	standards.Hallway:  "#f0f0f0",
}

func roomColor(r plan.RoomLayout) string {
	if c, ok := roomColors[standards.Category(r.Type, r.Name)]; ok {
		return c
	}
	return colorRoom
}

func wallColor(w plan.WallLayout) string {
	if w.Type == plan.WallPartition {
		return colorPartition
	}
	return colorWall
}

// Label sizing, in pixels.
const (
	fontHeightRatio = 0.3
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 7.0
	fontSizeMax     = 16.0
)

func fontSize(w, h float64, label string) float64 {
	n := max(1, len(label))
	byHeight := h * fontHeightRatio
	byWidth := (w * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

func truncate(label string, w, size float64) string {
	maxChars := max(3, int(w*fontWidthRatio/(size*fontCharWidth)))
	if len(label) <= maxChars {
		return label
	}
	return label[:maxChars-2] + ".."
}
