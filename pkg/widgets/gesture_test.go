package widgets_test

import (
	"testing"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
)

func TestTap_Callback(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tapped := false
	tester.PumpView(widgets.OnTap(widgets.RectangleOf(graphics.ColorBlue), func(*core.Context) {
		tapped = true
	}))

	if err := tester.TapAt(graphics.Offset{X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if !tapped {
		t.Error("expected tap callback")
	}
}

func TestTap_NilAction(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.PumpView(widgets.Tap{Child: widgets.RectangleOf(graphics.ColorBlue)})

	if err := tester.TapAt(graphics.Offset{X: 10, Y: 10}); err != nil {
		t.Errorf("tap without action: %v", err)
	}
}

func TestTap_CoveredSiblingDoesNotFire(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 100, Height: 100})
	fired := false
	tester.PumpView(widgets.ZStackOf(
		widgets.OnTap(widgets.RectangleOf(graphics.ColorRed), func(*core.Context) { fired = true }),
		widgets.RectangleOf(graphics.ColorBlue),
	))

	tester.TapAt(graphics.Offset{X: 50, Y: 50})
	if fired {
		t.Error("tap fired for a touch that began on the sibling above it")
	}
}

func TestTap_InnermostWins(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	var order []string
	tester.PumpView(widgets.OnTap(
		widgets.OnTap(widgets.RectangleOf(graphics.ColorRed), func(*core.Context) {
			order = append(order, "inner")
		}),
		func(*core.Context) { order = append(order, "outer") },
	))

	tester.TapAt(graphics.Offset{X: 5, Y: 5})
	if len(order) != 1 || order[0] != "inner" {
		t.Errorf("taps = %v, want [inner]", order)
	}
}

func TestDrag_CaptureOutsideChild(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 100})
	var events []widgets.GestureState
	var total graphics.Offset
	tester.PumpView(widgets.HStackOf(
		widgets.Drag{
			Child: widgets.RectangleOf(graphics.ColorRed),
			Action: func(_ *core.Context, delta graphics.Offset, state widgets.GestureState) {
				events = append(events, state)
				total = total.Add(delta)
			},
		},
		widgets.RectangleOf(graphics.ColorBlue),
	))
	owner := tester.ViewID(0)
	cx := tester.Context()

	tester.SendTouchBegin(graphics.Offset{X: 50, Y: 50}, 1)
	if !cx.IsCaptured(owner, 1) {
		t.Fatal("expected drag to capture touch 1")
	}
	tester.SendTouchMove(graphics.Offset{X: 300, Y: 60}, 1)
	if total != (graphics.Offset{X: 250, Y: 10}) {
		t.Errorf("delta outside child = %v, want {250 10}", total)
	}
	tester.SendTouchEnd(graphics.Offset{X: 300, Y: 60}, 1)
	if cx.IsCaptured(owner, 1) {
		t.Error("capture should be released on touch end")
	}

	want := []widgets.GestureState{widgets.GestureBegan, widgets.GestureChanged, widgets.GestureEnded}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, events[i], want[i])
		}
	}

	events = nil
	tester.DragFrom(graphics.Offset{X: 300, Y: 50}, graphics.Offset{X: -200}, 1)
	if len(events) != 0 {
		t.Errorf("drag that began on the sibling reached the gesture: %v", events)
	}
}

func TestDrag_IndependentTouches(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 100})
	moves := map[string]int{}
	drag := func(name string) widgets.Drag {
		return widgets.Drag{
			Child: widgets.RectangleOf(graphics.ColorRed),
			Action: func(_ *core.Context, _ graphics.Offset, state widgets.GestureState) {
				if state == widgets.GestureChanged {
					moves[name]++
				}
			},
		}
	}
	tester.PumpView(widgets.HStackOf(drag("left"), drag("right")))

	tester.SendTouchBegin(graphics.Offset{X: 100, Y: 50}, 1)
	tester.SendTouchBegin(graphics.Offset{X: 300, Y: 50}, 2)
	tester.SendTouchMove(graphics.Offset{X: 110, Y: 50}, 1)
	tester.SendTouchMove(graphics.Offset{X: 310, Y: 50}, 2)
	tester.SendTouchMove(graphics.Offset{X: 320, Y: 50}, 2)

	if moves["left"] != 1 || moves["right"] != 2 {
		t.Errorf("moves = %v, want left 1, right 2", moves)
	}
}

func TestGestureState_String(t *testing.T) {
	tests := []struct {
		state widgets.GestureState
		want  string
	}{
		{widgets.GestureBegan, "began"},
		{widgets.GestureChanged, "changed"},
		{widgets.GestureEnded, "ended"},
		{widgets.GestureState(9), "GestureState(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
