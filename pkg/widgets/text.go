package widgets

import (
	"math"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/semantics"
)

// Text displays a string, wrapping it at the offered width. Its size is the
// measured size of the text, so it is never flexible. Text is exposed to
// accessibility as a label. The zero style draws TextColor at
// rendering.DefaultFontSize.
type Text struct {
	core.ViewBase
	Content string
	Style   rendering.TextStyle
}

// WithColor returns a copy drawn in color.
func (t Text) WithColor(color graphics.Color) Text {
	t.Style.Color = color
	return t
}

// WithFontSize returns a copy with the given font size.
func (t Text) WithFontSize(size float64) Text {
	t.Style.FontSize = size
	return t
}

func (t Text) style() rendering.TextStyle {
	style := t.Style
	if style.Color == 0 {
		style.Color = graphics.TextColor
	}
	if style.FontSize <= 0 {
		style.FontSize = rendering.DefaultFontSize
	}
	return style
}

func (t Text) measure(cx *core.Context, maxWidth float64) *rendering.TextLayout {
	if math.IsInf(maxWidth, 1) || maxWidth <= 0 {
		maxWidth = 0
	}
	return cx.Measurer().LayoutText(t.Content, t.style(), maxWidth)
}

func (t Text) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	layout := t.measure(args.Cx, args.Size.Width)
	return recordLayout(path, args.Cx, layout.Size)
}

func (t Text) Draw(path *core.IdPath, cx *core.Context) {
	rect := cx.GetLayout(path).Rect
	cx.DrawText(t.measure(cx, math.Ceil(rect.Width())), graphics.Offset{})
}

func (t Text) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return hitSelf(path, pt, cx)
}

func (t Text) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	cx.MarkDirty(path, xform)
}

func (t Text) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	id := cx.ViewID(path).AccessID()
	*nodes = append(*nodes, semantics.Entry{
		ID: id,
		Node: semantics.Node{
			Role:   semantics.RoleLabel,
			Name:   t.Content,
			Bounds: cx.AccessBounds(path),
		},
	})
	return id, true
}

func (t Text) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
}
