package widgets_test

import (
	"testing"

	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
)

// label13 is a label whose measured size is 7 px per character by 13 px.
func label13(s string) widgets.Text {
	return widgets.Text{Content: s, Style: rendering.TextStyle{FontSize: 13}}
}

func TestPadding_ChildOffset(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	tester.PumpView(widgets.Padding{Amount: 16, Child: label13("padded")})

	box, ok := tester.LayoutOf(0)
	if !ok {
		t.Fatal("expected child layout to exist")
	}
	if box.Offset.X != 16 || box.Offset.Y != 16 {
		t.Errorf("expected child offset {16, 16}, got {%v, %v}", box.Offset.X, box.Offset.Y)
	}
}

func TestPadding_Size(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 200})

	tester.PumpView(widgets.PaddingAll(10, label13("hi")))

	box, _ := tester.LayoutOf()
	// Expected: child 14x13 + 10 on each side
	if size := box.Rect.Size(); size.Width != 34 || size.Height != 33 {
		t.Errorf("expected padding size {34, 33}, got {%v, %v}", size.Width, size.Height)
	}
}

func TestPadding_OfferDeflation(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 60})

	tester.PumpView(widgets.Padded(widgets.Spacer{}))

	box, _ := tester.LayoutOf(0)
	want := graphics.Size{Width: 100 - 2*widgets.AutoPadding, Height: 60 - 2*widgets.AutoPadding}
	if size := box.Rect.Size(); size != want {
		t.Errorf("child size = %v, want %v", size, want)
	}
	outer, _ := tester.LayoutOf()
	if size := outer.Rect.Size(); size.Width != 100 || size.Height != 60 {
		t.Errorf("padding size = %v, want 100x60", size)
	}
}

func TestPadding_DisplayOps_Translate(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})

	tester.PumpView(widgets.PaddingAll(20, widgets.RectangleOf(graphics.ColorRed)))

	var found bool
	for _, op := range tester.Ops() {
		if op.Kind == rendering.OpTransform && op.Transform == graphics.Translation(20, 20) {
			found = true
		}
	}
	if !found {
		t.Error("expected a translate by (20, 20) before painting the child")
	}
}
