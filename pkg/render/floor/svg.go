package floor

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

const (
	DefaultScale = 10.0
	margin       = 20.0
	titleHeight  = 28.0
)

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	scale  float64
	floor  string
	labels bool
}

// WithScale sets pixels per foot. Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithFloor restricts output to the floor with the given level.
func WithFloor(level string) Option { return func(r *renderer) { r.floor = level } }

// WithoutLabels omits room names and areas.
func WithoutLabels() Option { return func(r *renderer) { r.labels = false } }

func newRenderer(opts ...Option) renderer {
	r := renderer{scale: DefaultScale, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Floors returns the floors of res selected by the options.
func Floors(res *plan.LayoutResult, opts ...Option) ([]plan.FloorLayout, error) {
	return newRenderer(opts...).floors(res)
}

func (r renderer) floors(res *plan.LayoutResult) ([]plan.FloorLayout, error) {
	if res == nil || len(res.Floors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has no floors")
	}
	if r.floor == "" {
		return res.Floors, nil
	}
	f, ok := res.Floor(r.floor)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has no floor %q", r.floor)
	}
	return []plan.FloorLayout{*f}, nil
}

// RenderSVG draws the selected floors of res.
func RenderSVG(res *plan.LayoutResult, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	floors, err := r.floors(res)
	if err != nil {
		return nil, err
	}

	plot := res.PlotDimensions
	panelH := plot.Height*r.scale + titleHeight
	width := plot.Width*r.scale + 2*margin
	height := float64(len(floors))*(panelH+margin) + margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="white"/>` + "\n")

	for i, f := range floors {
		oy := margin + float64(i)*(panelH+margin)
		r.renderFloor(&buf, f, plot, margin, oy)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func (r renderer) renderFloor(buf *bytes.Buffer, f plan.FloorLayout, plot plan.Size, ox, oy float64) {
	fmt.Fprintf(buf, `  <g class="floor" id="floor-%s">`+"\n", escape(f.Level))
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="16" font-weight="bold" fill="%s">%s</text>`+"\n",
		ox, oy+18, colorText, escape(f.Level))

	top := oy + titleHeight
	s := r.scale
	px := func(x float64) float64 { return ox + x*s }
	py := func(y float64) float64 { return top + y*s }

	fmt.Fprintf(buf, `    <rect class="plot" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		px(0), py(0), plot.Width*s, plot.Height*s, colorPlot)

	for _, c := range f.Circulation.Corridors {
		fmt.Fprintf(buf, `    <rect class="corridor" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-dasharray="6 4" opacity="0.8"/>`+"\n",
			px(c.X), py(c.Y), c.Width*s, c.Height*s, colorCorridor, colorPartition)
	}

	for _, room := range f.Rooms {
		fmt.Fprintf(buf, `    <rect class="room" id="room-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			escape(room.ID), px(room.X), py(room.Y), room.Width*s, room.Height*s, roomColor(room))
	}

	if st := f.Circulation.Stairs; st != nil {
		r.renderStairs(buf, *st, px, py)
	}

	for _, w := range f.Walls {
		fmt.Fprintf(buf, `    <line class="wall wall-%s" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f" stroke-linecap="square"/>`+"\n",
			w.Type, px(w.X1), py(w.Y1), px(w.X2), py(w.Y2), wallColor(w), w.Thickness*s)
	}

	for _, room := range f.Rooms {
		for _, d := range room.Doors {
			x, y, w, h := openingRect(d.X, d.Y, d.Width, d.Height, d.Rotation)
			fmt.Fprintf(buf, `    <rect class="door door-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="white" stroke="%s" stroke-width="1.5"/>`+"\n",
				d.Type, px(x), py(y), w*s, h*s, colorDoor)
		}
		for _, win := range room.Windows {
			x, y, w, h := openingRect(win.X, win.Y, win.Width, win.Height, win.Rotation)
			fmt.Fprintf(buf, `    <rect class="window" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="0.9"/>`+"\n",
				px(x), py(y), w*s, h*s, colorWindow)
		}
	}

	if r.labels {
		for _, room := range f.Rooms {
			r.renderLabel(buf, room, px, py)
		}
	}

	buf.WriteString("  </g>\n")
}

func (r renderer) renderStairs(buf *bytes.Buffer, st plan.Stairs, px, py func(float64) float64) {
	s := r.scale
	fmt.Fprintf(buf, `    <rect class="stairs" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
		px(st.X), py(st.Y), st.Width*s, st.Height*s, colorStairs, colorPartition)
	for t := 1.0; t < st.Height; t++ {
		fmt.Fprintf(buf, `    <line class="tread" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			px(st.X), py(st.Y+t), px(st.X+st.Width), py(st.Y+t), colorPartition)
	}
}

func (r renderer) renderLabel(buf *bytes.Buffer, room plan.RoomLayout, px, py func(float64) float64) {
	w, h := room.Width*r.scale, room.Height*r.scale
	cx, cy := px(room.X)+w/2, py(room.Y)+h/2

	size := fontSize(w, h, room.Name)
	name := truncate(room.Name, w, size)
	area := fmt.Sprintf("%.0f sqft", room.Area())
	small := size * 0.75

	fmt.Fprintf(buf, `    <text class="room-label" x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
		cx, cy, size, colorText, escape(name))
	if h >= 2*(size+small) {
		fmt.Fprintf(buf, `    <text class="room-area" x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
			cx, cy+small+2, small, colorText, area)
	}
}

// openingRect centers an opening on its wall line. Rotated openings run
// along the y axis.
func openingRect(x, y, w, h, rotation float64) (float64, float64, float64, float64) {
	if rotation == 90 {
		return x - h/2, y, h, w
	}
	return x, y - h/2, w, h
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
