package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/semantics"
)

// Button is a tappable text label on a rounded background.
//
// Example using struct literal:
//
//	Button{
//	    Label:    "Submit",
//	    OnTap:    handleSubmit,
//	    Disabled: !isValid,
//	}
//
// Example using XxxOf helper:
//
//	ButtonOf("Submit", handleSubmit).
//	    WithColor(graphics.AzureHighlight, graphics.ColorWhite).
//	    WithDisabled(!isValid)
//
// The button is exposed to accessibility as a button named by its label.
type Button struct {
	core.ViewBase
	// Label is the text displayed on the button.
	Label string
	// OnTap is called when the button is tapped.
	OnTap func(cx *core.Context)
	// Disabled ignores taps and dims the label when true.
	Disabled bool
	// Color is the background color. Defaults to ButtonBackgroundColor if zero.
	Color graphics.Color
	// TextColor is the label color. Defaults to TextColor if zero.
	TextColor graphics.Color
	// FontSize is the label font size. Defaults to rendering.DefaultFontSize if zero.
	FontSize float64
	// Padding is the inset around the label. Defaults to AutoPadding if zero.
	Padding float64
	// BorderRadius is the corner radius. Defaults to 6 if zero.
	BorderRadius float64
}

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf(label string, onTap func(cx *core.Context)) Button {
	return Button{Label: label, OnTap: onTap}
}

// WithColor returns a copy of the button with the specified background and text colors.
func (b Button) WithColor(bg, text graphics.Color) Button {
	b.Color = bg
	b.TextColor = text
	return b
}

// WithDisabled returns a copy of the button with the disabled state set.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

func (b Button) view() core.View {
	bg := b.Color
	if bg == 0 {
		bg = graphics.ButtonBackgroundColor
	}
	fg := b.TextColor
	if fg == 0 {
		fg = graphics.TextColor
	}
	if b.Disabled {
		fg = fg.WithAlpha8(0x80)
	}
	padding := b.Padding
	if padding == 0 {
		padding = AutoPadding
	}
	radius := b.BorderRadius
	if radius == 0 {
		radius = 6
	}
	action := b.OnTap
	if b.Disabled {
		action = nil
	}
	label := Text{Content: b.Label, Style: rendering.TextStyle{Color: fg, FontSize: b.FontSize}}
	return Accessible{
		Role: semantics.RoleButton,
		Name: b.Label,
		Child: Tap{
			Action: action,
			Child: Background{
				Child:      Padding{Amount: padding, Child: label},
				Background: Rectangle{Paint: graphics.SolidPaint(bg), CornerRadius: radius},
			},
		},
	}
}

func (b Button) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return b.view().Layout(path, args)
}

func (b Button) Draw(path *core.IdPath, cx *core.Context) {
	b.view().Draw(path, cx)
}

func (b Button) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return b.view().HitTest(path, pt, cx)
}

func (b Button) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	b.view().Process(event, path, cx)
}

func (b Button) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	b.view().Dirty(path, xform, cx)
}

func (b Button) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return b.view().Access(path, cx, nodes)
}

func (b Button) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	b.view().GC(path, cx, ids)
}
