package plan

import (
	"fmt"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Validate checks that a plan is well formed enough to lay out.
// All failures are INVALID_INPUT errors; nothing is placed for an invalid plan.
func (p PlanData) Validate() error {
	if len(p.Floors) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "plan has no floors")
	}
	if p.PlotDimensions != nil {
		if err := errors.ValidatePositive("plot width", p.PlotDimensions.Width); err != nil {
			return err
		}
		if err := errors.ValidatePositive("plot height", p.PlotDimensions.Height); err != nil {
			return err
		}
	}
	if err := errors.ValidateFinite("total area", p.TotalArea); err != nil {
		return err
	}
	if p.TotalArea < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "total area must not be negative, got %v", p.TotalArea)
	}
	for i := range p.Floors {
		if err := p.Floors[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single floor and its rooms.
func (f FloorSpec) Validate() error {
	if err := errors.ValidateLevel(f.Level); err != nil {
		return err
	}
	if len(f.Rooms) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "floor %q has no rooms", f.Level)
	}
	for _, r := range f.Rooms {
		if err := r.Validate(); err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "floor %q: %s", f.Level, errors.UserMessage(err))
		}
	}
	return nil
}

// Validate checks that a room has a usable name and size, and that an
// explicit position is finite.
func (r RoomSpec) Validate() error {
	if err := errors.ValidateRoomName(r.Name); err != nil {
		return err
	}
	if r.Position != nil {
		if err := errors.ValidateFinite(fmt.Sprintf("x position of room %q", r.Name), r.Position.X); err != nil {
			return err
		}
		if err := errors.ValidateFinite(fmt.Sprintf("y position of room %q", r.Name), r.Position.Y); err != nil {
			return err
		}
	}
	if r.Dimensions != nil {
		if err := errors.ValidatePositive(fmt.Sprintf("length of room %q", r.Name), r.Dimensions.Length); err != nil {
			return err
		}
		return errors.ValidatePositive(fmt.Sprintf("width of room %q", r.Name), r.Dimensions.Width)
	}
	return errors.ValidatePositive(fmt.Sprintf("area of room %q", r.Name), r.AreaSqft)
}

// RequestedArea returns the sum of the footprints a floor asks for.
// Explicit dimensions take precedence over areaSqft.
func (f FloorSpec) RequestedArea() float64 {
	total := 0.0
	for _, r := range f.Rooms {
		if r.Dimensions != nil {
			total += r.Dimensions.Length * r.Dimensions.Width
			continue
		}
		total += r.AreaSqft
	}
	return total
}
