package floor

import (
	"bytes"

	"github.com/matzehuels/floorplan/pkg/plan"
)

// RenderJSON writes res as indented JSON. With WithFloor, only that floor is
// kept; diagnostics are kept unchanged.
func RenderJSON(res *plan.LayoutResult, opts ...Option) ([]byte, error) {
	floors, err := newRenderer(opts...).floors(res)
	if err != nil {
		return nil, err
	}
	out := *res
	out.Floors = floors

	var buf bytes.Buffer
	if err := plan.WriteResult(out, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
