package graphics

import "testing"

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 20)
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 10, Y: 10}, true},
		{Offset{X: 29.9, Y: 29.9}, true},
		{Offset{X: 30, Y: 15}, false},
		{Offset{X: 5, Y: 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectOverlapsIsOpen(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	touching := RectFromLTWH(10, 0, 10, 10)
	if a.Overlaps(touching) {
		t.Error("rects sharing only an edge should not overlap")
	}
	if !a.Overlaps(RectFromLTWH(9, 9, 10, 10)) {
		t.Error("expected overlapping rects to overlap")
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	if got, want := a.Intersect(b), RectFromLTWH(5, 5, 5, 5); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if got, want := a.Union(b), RectFromLTWH(0, 0, 15, 15); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := a.Intersect(RectFromLTWH(20, 20, 1, 1)); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
}

func TestAffineComposition(t *testing.T) {
	world := Translation(100, 50)
	child := world.PreTranslate(10, 20)
	got := child.Apply(Offset{X: 1, Y: 1})
	want := Offset{X: 111, Y: 71}
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}

	scaled := Scaling(2, 2).Then(Translation(5, 5))
	if got, want := scaled.Apply(Offset{X: 3, Y: 4}), (Offset{X: 11, Y: 13}); got != want {
		t.Errorf("scale then translate = %v, want %v", got, want)
	}
	if got, want := scaled.ApplyRect(RectFromLTWH(0, 0, 1, 1)), RectFromLTWH(5, 5, 2, 2); got != want {
		t.Errorf("ApplyRect = %v, want %v", got, want)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestShapeContains(t *testing.T) {
	circle := CircleShape(Offset{X: 50, Y: 50}, 10)
	if !circle.Contains(Offset{X: 55, Y: 55}) {
		t.Error("point inside circle not contained")
	}
	if circle.Contains(Offset{X: 59, Y: 59}) {
		t.Error("point outside circle contained")
	}

	rounded := RectShape(RectFromLTWH(0, 0, 100, 100), 20)
	if rounded.Contains(Offset{X: 1, Y: 1}) {
		t.Error("corner point outside the rounded corner should not be contained")
	}
	if !rounded.Contains(Offset{X: 50, Y: 1}) {
		t.Error("edge midpoint should be contained")
	}
}

func TestPaintValidate(t *testing.T) {
	if err := SolidPaint(ColorRed).Validate(); err != nil {
		t.Errorf("solid paint Validate() = %v", err)
	}
	p := LinearGradientPaint(Offset{X: 1, Y: 1}, Offset{X: 1, Y: 1}, ColorRed, ColorBlue)
	if err := p.Validate(); err != ErrDegenerateGradient {
		t.Errorf("degenerate gradient Validate() = %v, want %v", err, ErrDegenerateGradient)
	}
}

func TestPaintColorAt(t *testing.T) {
	p := LinearGradientPaint(Offset{}, Offset{X: 10}, ColorBlack, ColorWhite)
	if got := p.ColorAt(Offset{X: -5}); got != ColorBlack {
		t.Errorf("ColorAt(before start) = %#x, want %#x", uint32(got), uint32(ColorBlack))
	}
	if got := p.ColorAt(Offset{X: 20}); got != ColorWhite {
		t.Errorf("ColorAt(after end) = %#x, want %#x", uint32(got), uint32(ColorWhite))
	}
}
