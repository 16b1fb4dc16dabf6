package widgets

import (
	"github.com/go-drift/loom/pkg/binding"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

const (
	toggleWidth  = 40
	toggleHeight = 20
)

// Toggle is an on/off switch bound to a boolean. Tapping it flips the value.
//
//	State[bool]{
//	    Init: func() bool { return true },
//	    Body: func(on core.StateHandle[bool], cx *core.Context) core.View {
//	        return Toggle{Value: on}
//	    },
//	}
type Toggle struct {
	core.ViewBase
	Value binding.Binding[bool]
	// Disabled ignores taps when true.
	Disabled bool
	// ActiveColor is the track color when on. Defaults to graphics.AzureHighlight.
	ActiveColor graphics.Color
	// InactiveColor is the track color when off. Defaults to graphics.Grooves.
	InactiveColor graphics.Color
	// ThumbColor is the knob color. Defaults to graphics.ColorWhite.
	ThumbColor graphics.Color
}

func (t Toggle) view() core.View {
	var action func(cx *core.Context)
	if !t.Disabled {
		action = func(cx *core.Context) {
			t.Value.Set(cx, !t.Value.Get(cx))
		}
	}
	return Tap{
		Action: action,
		Child: Sized{
			Size: graphics.Size{Width: toggleWidth, Height: toggleHeight},
			Child: Canvas{Paint: func(cx *core.Context, rect graphics.Rect) {
				t.paint(cx, rect, t.Value.Get(cx))
			}},
		},
	}
}

func (t Toggle) paint(cx *core.Context, rect graphics.Rect, on bool) {
	active, inactive, thumb := t.ActiveColor, t.InactiveColor, t.ThumbColor
	if active == 0 {
		active = graphics.AzureHighlight
	}
	if inactive == 0 {
		inactive = graphics.Grooves
	}
	if thumb == 0 {
		thumb = graphics.ColorWhite
	}
	track := inactive
	if on {
		track = active
	}
	if t.Disabled {
		track = track.WithAlpha8(0x80)
		thumb = thumb.WithAlpha8(0x80)
	}
	radius := rect.Height() / 2
	center := graphics.Offset{X: rect.Left + radius, Y: rect.Top + radius}
	if on {
		center.X = rect.Right - radius
	}
	cx.Fill(graphics.RectShape(rect, radius), graphics.SolidPaint(track), 0)
	cx.Fill(graphics.CircleShape(center, radius-2), graphics.SolidPaint(thumb), 0)
}

func (t Toggle) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return t.view().Layout(path, args)
}

func (t Toggle) Draw(path *core.IdPath, cx *core.Context) {
	t.view().Draw(path, cx)
}

func (t Toggle) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return t.view().HitTest(path, pt, cx)
}

func (t Toggle) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	t.view().Process(event, path, cx)
}

func (t Toggle) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	t.view().Dirty(path, xform, cx)
}

func (t Toggle) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	value := "off"
	if t.Value.Get(cx) {
		value = "on"
	}
	id := cx.ViewID(path).AccessID()
	*nodes = append(*nodes, semantics.Entry{
		ID: id,
		Node: semantics.Node{
			Role:   semantics.RoleButton,
			Value:  value,
			Bounds: cx.AccessBounds(path),
		},
	})
	return id, true
}

func (t Toggle) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	t.view().GC(path, cx, ids)
}
