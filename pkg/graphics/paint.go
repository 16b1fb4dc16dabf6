package graphics

import (
	"errors"
	"fmt"
)

// ErrDegenerateGradient is returned when a linear gradient's start and end
// points coincide, leaving the gradient direction undefined.
var ErrDegenerateGradient = errors.New("graphics: degenerate gradient")

// PaintKind selects how a Paint fills a shape.
type PaintKind int

const (
	// PaintSolid fills with a single color.
	PaintSolid PaintKind = iota
	// PaintLinearGradient fills with a gradient between two points.
	PaintLinearGradient
)

// String returns a human-readable representation of the paint kind.
func (k PaintKind) String() string {
	switch k {
	case PaintSolid:
		return "solid"
	case PaintLinearGradient:
		return "linear_gradient"
	default:
		return fmt.Sprintf("PaintKind(%d)", int(k))
	}
}

// Paint describes how a region is filled or stroked.
//
// The zero value is a transparent solid paint.
type Paint struct {
	Kind  PaintKind
	Color Color

	// Gradient parameters, used when Kind is PaintLinearGradient.
	Start      Offset
	End        Offset
	InnerColor Color
	OuterColor Color
}

// SolidPaint returns a paint that fills with color.
func SolidPaint(color Color) Paint {
	return Paint{Kind: PaintSolid, Color: color}
}

// LinearGradientPaint returns a paint that blends from inner at start to
// outer at end.
func LinearGradientPaint(start, end Offset, inner, outer Color) Paint {
	return Paint{
		Kind:       PaintLinearGradient,
		Start:      start,
		End:        end,
		InnerColor: inner,
		OuterColor: outer,
	}
}

// Validate reports whether the paint can be resolved by a renderer.
func (p Paint) Validate() error {
	switch p.Kind {
	case PaintSolid:
		return nil
	case PaintLinearGradient:
		if floatEqual(p.Start.X, p.End.X) && floatEqual(p.Start.Y, p.End.Y) {
			return ErrDegenerateGradient
		}
		return nil
	default:
		return fmt.Errorf("graphics: unknown paint kind %v", p.Kind)
	}
}

// ColorAt resolves the paint color at point p.
func (p Paint) ColorAt(pt Offset) Color {
	if p.Kind != PaintLinearGradient {
		return p.Color
	}
	dx, dy := p.End.X-p.Start.X, p.End.Y-p.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.InnerColor
	}
	t := ((pt.X-p.Start.X)*dx + (pt.Y-p.Start.Y)*dy) / lenSq
	return p.InnerColor.Lerp(p.OuterColor, t)
}
