package graphics

import "fmt"

// ShapeKind identifies a Shape variant.
type ShapeKind int

const (
	// ShapeRect is a rectangle with an optional uniform corner radius.
	ShapeRect ShapeKind = iota
	// ShapeCircle is a circle given by center and radius.
	ShapeCircle
)

// String returns a human-readable representation of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is the geometry accepted by renderer fill, stroke and clip calls.
type Shape struct {
	Kind   ShapeKind
	Rect   Rect
	Center Offset
	Radius float64 // corner radius for ShapeRect, radius for ShapeCircle
}

// RectShape returns a rectangle shape with the given corner radius.
func RectShape(rect Rect, cornerRadius float64) Shape {
	return Shape{Kind: ShapeRect, Rect: rect, Radius: cornerRadius}
}

// CircleShape returns a circle shape.
func CircleShape(center Offset, radius float64) Shape {
	return Shape{Kind: ShapeCircle, Center: center, Radius: radius}
}

// Bounds returns the axis-aligned bounding rectangle of the shape.
func (s Shape) Bounds() Rect {
	if s.Kind == ShapeCircle {
		return RectFromCenter(s.Center, s.Radius)
	}
	return s.Rect
}

// Contains reports whether p lies inside the shape. Rounded corners are
// honored for rectangles.
func (s Shape) Contains(p Offset) bool {
	switch s.Kind {
	case ShapeCircle:
		return p.Distance(s.Center) < s.Radius
	default:
		if !s.Rect.Contains(p) {
			return false
		}
		r := s.Radius
		if r <= 0 {
			return true
		}
		inner := s.Rect.Inset(r)
		cx := clamp(p.X, inner.Left, inner.Right)
		cy := clamp(p.Y, inner.Top, inner.Bottom)
		return p.Distance(Offset{X: cx, Y: cy}) <= r
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
