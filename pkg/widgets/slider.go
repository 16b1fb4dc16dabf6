package widgets

import (
	"strconv"

	"github.com/go-drift/loom/pkg/binding"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

const (
	sliderThumbRadius = 10
	sliderTrackWidth  = 4
)

// HSlider edits a value in [0, 1] by dragging horizontally. The zero Thumb
// color draws graphics.AzureHighlight.
//
//	State[float64]{
//	    Init: func() float64 { return 0.5 },
//	    Body: func(v core.StateHandle[float64], cx *core.Context) core.View {
//	        return HSlider{Value: v}
//	    },
//	}
type HSlider struct {
	core.ViewBase
	Value binding.Binding[float64]
	Thumb graphics.Color
}

func (s HSlider) view() core.View {
	return slider{axis: AxisHorizontal, value: s.Value, thumb: s.Thumb}.view()
}

func (s HSlider) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return s.view().Layout(path, args)
}

func (s HSlider) Draw(path *core.IdPath, cx *core.Context) {
	s.view().Draw(path, cx)
}

func (s HSlider) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return s.view().HitTest(path, pt, cx)
}

func (s HSlider) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	s.view().Process(event, path, cx)
}

func (s HSlider) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	s.view().Dirty(path, xform, cx)
}

func (s HSlider) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return accessSlider(path, s.Value, cx, nodes)
}

func (s HSlider) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	s.view().GC(path, cx, ids)
}

func (s HSlider) IsFlexible() bool { return true }

// VSlider edits a value in [0, 1] by dragging vertically, with 0 at the
// top, as in screen coordinates. OnChange receives every new value.
type VSlider struct {
	core.ViewBase
	Value    float64
	OnChange func(cx *core.Context, value float64)
	Thumb    graphics.Color
}

func (s VSlider) binding() binding.Binding[float64] {
	return binding.Func(
		func(*core.Context) float64 { return s.Value },
		func(cx *core.Context, value float64) {
			if s.OnChange != nil {
				s.OnChange(cx, value)
			}
		},
	)
}

func (s VSlider) view() core.View {
	return slider{axis: AxisVertical, value: s.binding(), thumb: s.Thumb}.view()
}

func (s VSlider) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return s.view().Layout(path, args)
}

func (s VSlider) Draw(path *core.IdPath, cx *core.Context) {
	s.view().Draw(path, cx)
}

func (s VSlider) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return s.view().HitTest(path, pt, cx)
}

func (s VSlider) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	s.view().Process(event, path, cx)
}

func (s VSlider) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	s.view().Dirty(path, xform, cx)
}

func (s VSlider) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return accessSlider(path, s.binding(), cx, nodes)
}

func (s VSlider) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	s.view().GC(path, cx, ids)
}

func (s VSlider) IsFlexible() bool { return true }

// slider composes a slider from a state cell holding the track length, a
// Geom that records it while drawing and a DragS that maps movement along
// the track to the value.
type slider struct {
	axis  Axis
	value binding.Binding[float64]
	thumb graphics.Color
}

func (s slider) view() core.View {
	return State[float64]{
		Body: func(length core.StateHandle[float64], cx *core.Context) core.View {
			extent := length.Get(cx)
			return DragS[float64]{
				Value: s.value,
				Action: func(v *float64, delta graphics.Offset, _ GestureState) {
					if extent <= 0 {
						return
					}
					d := delta.X
					if s.axis == AxisVertical {
						d = delta.Y
					}
					*v = Clamp(*v+d/extent, 0, 1)
				},
				Child: Geom{
					OnGeom: func(cx *core.Context, size graphics.Size, _ graphics.Affine) {
						*length.Ref(cx) = s.axis.main(size)
					},
					Child: Sized{
						Size: s.axis.size(0, 2*sliderThumbRadius),
						Child: Canvas{Paint: func(cx *core.Context, rect graphics.Rect) {
							s.paint(cx, rect, s.value.Get(cx))
						}},
					},
				},
			}
		},
	}
}

func (s slider) paint(cx *core.Context, rect graphics.Rect, value float64) {
	thumb := s.thumb
	if thumb == 0 {
		thumb = graphics.AzureHighlight
	}
	center := rect.Center()
	value = Clamp(value, 0, 1)
	var track, filled graphics.Rect
	var knob graphics.Offset
	if s.axis == AxisHorizontal {
		x := rect.Left + value*rect.Width()
		track = graphics.Rect{Left: rect.Left, Top: center.Y - sliderTrackWidth/2, Right: rect.Right, Bottom: center.Y + sliderTrackWidth/2}
		filled = track
		filled.Right = x
		knob = graphics.Offset{X: x, Y: center.Y}
	} else {
		y := rect.Top + value*rect.Height()
		track = graphics.Rect{Left: center.X - sliderTrackWidth/2, Top: rect.Top, Right: center.X + sliderTrackWidth/2, Bottom: rect.Bottom}
		filled = track
		filled.Bottom = y
		knob = graphics.Offset{X: center.X, Y: y}
	}
	cx.Fill(graphics.RectShape(track, sliderTrackWidth/2), graphics.SolidPaint(graphics.Grooves), 0)
	cx.Fill(graphics.RectShape(filled, sliderTrackWidth/2), graphics.SolidPaint(graphics.AzureHighlightBackground), 0)
	cx.Fill(graphics.CircleShape(knob, sliderThumbRadius), graphics.SolidPaint(thumb), 0)
}

func accessSlider(path *core.IdPath, value binding.Binding[float64], cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	id := cx.ViewID(path).AccessID()
	*nodes = append(*nodes, semantics.Entry{
		ID: id,
		Node: semantics.Node{
			Role:   semantics.RoleSlider,
			Value:  strconv.FormatFloat(value.Get(cx), 'f', 2, 64),
			Bounds: cx.AccessBounds(path),
		},
	})
	return id, true
}
