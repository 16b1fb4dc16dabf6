package graphics

import "math"

// Affine is a 2D affine transform mapping (x, y) to
// (A*x + C*y + E, B*x + D*y + F).
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Affine {
	return Affine{A: 1, D: 1, E: dx, F: dy}
}

// Scaling returns a transform that scales points by (sx, sy).
func Scaling(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Then returns the transform that applies t first and then next.
func (t Affine) Then(next Affine) Affine {
	return Affine{
		A: next.A*t.A + next.C*t.B,
		B: next.B*t.A + next.D*t.B,
		C: next.A*t.C + next.C*t.D,
		D: next.B*t.C + next.D*t.D,
		E: next.A*t.E + next.C*t.F + next.E,
		F: next.B*t.E + next.D*t.F + next.F,
	}
}

// PreTranslate returns the transform that first moves points by (dx, dy) and
// then applies t. This is how a nested coordinate frame is entered.
func (t Affine) PreTranslate(dx, dy float64) Affine {
	return Translation(dx, dy).Then(t)
}

// Apply maps a point through the transform.
func (t Affine) Apply(p Offset) Offset {
	return Offset{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// ApplyRect returns the axis-aligned bounds of the transformed rectangle.
func (t Affine) ApplyRect(r Rect) Rect {
	p0 := t.Apply(Offset{X: r.Left, Y: r.Top})
	p1 := t.Apply(Offset{X: r.Right, Y: r.Top})
	p2 := t.Apply(Offset{X: r.Left, Y: r.Bottom})
	p3 := t.Apply(Offset{X: r.Right, Y: r.Bottom})
	return Rect{
		Left:   math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
		Top:    math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		Right:  math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
		Bottom: math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
	}
}

// TranslationPart returns the (E, F) components.
func (t Affine) TranslationPart() Offset {
	return Offset{X: t.E, Y: t.F}
}

// IsIdentity reports whether t is (approximately) the identity.
func (t Affine) IsIdentity() bool {
	return floatEqual(t.A, 1) && floatEqual(t.B, 0) && floatEqual(t.C, 0) &&
		floatEqual(t.D, 1) && floatEqual(t.E, 0) && floatEqual(t.F, 0)
}
