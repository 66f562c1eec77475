package geom

import "testing"

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"Identical", a, true},
		{"Inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"Partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"TouchRight", Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"TouchBottom", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"WithinEpsilon", Rect{X: 9.9995, Y: 0, W: 5, H: 10}, false},
		{"Apart", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps not symmetric for %+v", tt.b)
			}
		})
	}
}

func TestGapAndSharesBoundary(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name    string
		b       Rect
		gap     float64
		sharing bool
	}{
		{"Touching", Rect{X: 10, Y: 0, W: 5, H: 5}, 0, true},
		{"WallApart", Rect{X: 10.5, Y: 2, W: 5, H: 5}, 0.5, true},
		{"TooFar", Rect{X: 12, Y: 0, W: 5, H: 5}, 2, false},
		{"CornerOnly", Rect{X: 10, Y: 10, W: 5, H: 5}, 0, false},
		{"Below", Rect{X: 3, Y: 10.5, W: 2, H: 2}, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Gap(tt.b); got != tt.gap {
				t.Errorf("Gap = %v, want %v", got, tt.gap)
			}
			if got := a.SharesBoundary(tt.b, 0.5); got != tt.sharing {
				t.Errorf("SharesBoundary = %v, want %v", got, tt.sharing)
			}
		})
	}
}

func TestClipAndClamp(t *testing.T) {
	bounds := Rect{X: 1, Y: 1, W: 38, H: 58}

	r, clipped := Rect{X: 0, Y: 0, W: 50, H: 10}.Clip(bounds)
	if !clipped || r.W != 38 || r.H != 10 {
		t.Errorf("Clip = %+v, %v", r, clipped)
	}

	r, moved := r.Clamp(bounds)
	if !moved || r.X != 1 || r.Y != 1 {
		t.Errorf("Clamp = %+v, %v", r, moved)
	}
	if !bounds.Contains(r) {
		t.Errorf("clamped rect %+v not inside %+v", r, bounds)
	}

	r, moved = Rect{X: 35, Y: 55, W: 10, H: 10}.Clamp(bounds)
	if !moved || r.X != 29 || r.Y != 49 {
		t.Errorf("Clamp far corner = %+v", r)
	}

	if _, moved := (Rect{X: 5, Y: 5, W: 2, H: 2}).Clamp(bounds); moved {
		t.Error("rect already inside should not move")
	}
}

func TestRoundHalf(t *testing.T) {
	tests := map[float64]float64{
		10.2:  10,
		10.25: 10.5,
		10.7:  10.5,
		10.76: 11,
		0.1:   0,
	}
	for in, want := range tests {
		if got := RoundHalf(in); got != want {
			t.Errorf("RoundHalf(%v) = %v, want %v", in, got, want)
		}
	}
}
