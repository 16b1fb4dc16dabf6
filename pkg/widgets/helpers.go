package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// RectangleOf returns a rectangle filled with color.
func RectangleOf(color graphics.Color) Rectangle {
	return Rectangle{Paint: graphics.SolidPaint(color)}
}

// CircleOf returns a circle filled with color.
func CircleOf(color graphics.Color) Circle {
	return Circle{Paint: graphics.SolidPaint(color)}
}

// TextOf renders any value with fmt's default format as a label.
func TextOf(value any) Text {
	return Text{Content: fmt.Sprint(value)}
}

// HStackOf lays children out left to right.
func HStackOf(children ...core.View) Stack {
	return Stack{Axis: AxisHorizontal, Children: children}
}

// VStackOf lays children out top to bottom.
func VStackOf(children ...core.View) Stack {
	return Stack{Axis: AxisVertical, Children: children}
}

// ZStackOf layers children on top of each other.
func ZStackOf(children ...core.View) ZStack {
	return ZStack{Children: children}
}

// List lays out n items vertically, building each with item. Items are
// identified by ordinal.
func List(n int, item func(i int) core.View) Stack {
	children := make([]core.View, n)
	for i := range children {
		children[i] = item(i)
	}
	return Stack{Axis: AxisVertical, Children: children}
}

// Padded wraps child with AutoPadding on every side.
func Padded(child core.View) Padding {
	return Padding{Amount: AutoPadding, Child: child}
}

// PaddingAll wraps child with uniform padding on every side.
func PaddingAll(amount float64, child core.View) Padding {
	return Padding{Amount: amount, Child: child}
}

// SizedOf gives child a fixed size.
func SizedOf(width, height float64, child core.View) Sized {
	return Sized{Size: graphics.Size{Width: width, Height: height}, Child: child}
}

// OnTap wraps child with a tap handler.
func OnTap(child core.View, action func(cx *core.Context)) Tap {
	return Tap{Child: child, Action: action}
}

// Clamp constrains a value between lo and hi.
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func isUnbounded(v float64) bool {
	return math.IsInf(v, 1)
}

// recordLayout stores a layout box of the given size at path and returns size.
func recordLayout(path *core.IdPath, cx *core.Context, size graphics.Size) graphics.Size {
	cx.UpdateLayout(path, graphics.RectFromSize(size))
	return size
}

// live appends the id of the node at path to the live set.
func live(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	*ids = append(*ids, cx.ViewID(path))
}

// hitSelf reports the node at path when its layout rect contains pt.
func hitSelf(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	if cx.GetLayout(path).Rect.Contains(pt) {
		return cx.ViewID(path), true
	}
	return 0, false
}
