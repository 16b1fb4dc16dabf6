package widgets

import (
	"math"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

var defaultShapePaint = graphics.SolidPaint(graphics.ColorCyan)

func shapePaint(p graphics.Paint) graphics.Paint {
	if p == (graphics.Paint{}) {
		return defaultShapePaint
	}
	return p
}

// Rectangle fills the space it is offered. The zero Paint draws cyan.
type Rectangle struct {
	core.ViewBase
	Paint        graphics.Paint
	CornerRadius float64
}

// WithColor returns a copy filled with color.
func (r Rectangle) WithColor(color graphics.Color) Rectangle {
	r.Paint = graphics.SolidPaint(color)
	return r
}

// WithCornerRadius returns a copy with rounded corners.
func (r Rectangle) WithCornerRadius(radius float64) Rectangle {
	r.CornerRadius = radius
	return r
}

func (r Rectangle) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return recordLayout(path, args.Cx, args.Size)
}

func (r Rectangle) Draw(path *core.IdPath, cx *core.Context) {
	rect := cx.GetLayout(path).Rect
	cx.Fill(graphics.RectShape(rect, r.CornerRadius), shapePaint(r.Paint), 0)
}

func (r Rectangle) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return hitSelf(path, pt, cx)
}

func (r Rectangle) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	cx.MarkDirty(path, xform)
}

func (r Rectangle) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
}

func (r Rectangle) IsFlexible() bool { return true }

// Circle fills the largest circle centered in the space it is offered.
type Circle struct {
	core.ViewBase
	Paint graphics.Paint
}

// WithColor returns a copy filled with color.
func (c Circle) WithColor(color graphics.Color) Circle {
	c.Paint = graphics.SolidPaint(color)
	return c
}

func (c Circle) geom(path *core.IdPath, cx *core.Context) (graphics.Offset, float64) {
	rect := cx.GetLayout(path).Rect
	return rect.Center(), math.Min(rect.Width(), rect.Height()) / 2
}

func (c Circle) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return recordLayout(path, args.Cx, args.Size)
}

func (c Circle) Draw(path *core.IdPath, cx *core.Context) {
	center, radius := c.geom(path, cx)
	cx.Fill(graphics.CircleShape(center, radius), shapePaint(c.Paint), 0)
}

func (c Circle) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	center, radius := c.geom(path, cx)
	if pt.Distance(center) < radius {
		return cx.ViewID(path), true
	}
	return 0, false
}

func (c Circle) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	cx.MarkDirty(path, xform)
}

func (c Circle) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
}

func (c Circle) IsFlexible() bool { return true }
