package testing

import (
	"testing"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/widgets"
)

func TestTapAt_FiresTap(t *testing.T) {
	tester := NewViewTesterWithT(t)
	taps := 0
	tester.PumpView(widgets.OnTap(widgets.RectangleOf(graphics.ColorBlue), func(*core.Context) { taps++ }))

	if err := tester.TapAt(graphics.Offset{X: 10, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestTap_ByName(t *testing.T) {
	tester := NewViewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	var tapped string
	tester.PumpView(widgets.HStackOf(
		widgets.OnTap(widgets.TextOf("left"), func(*core.Context) { tapped = "left" }),
		widgets.Spacer{},
		widgets.OnTap(widgets.TextOf("right"), func(*core.Context) { tapped = "right" }),
	))

	if err := tester.Tap("right"); err != nil {
		t.Fatal(err)
	}
	if tapped != "right" {
		t.Errorf("tapped = %q, want %q", tapped, "right")
	}
	if err := tester.Tap("missing"); err == nil {
		t.Error("expected error tapping a missing node")
	}
}

func TestDragFrom_ReportsDeltas(t *testing.T) {
	tester := NewViewTesterWithT(t)
	var total graphics.Offset
	var states []widgets.GestureState
	tester.PumpView(widgets.Drag{
		Child: widgets.RectangleOf(graphics.ColorBlue),
		Action: func(_ *core.Context, delta graphics.Offset, state widgets.GestureState) {
			total = total.Add(delta)
			states = append(states, state)
		},
	})

	if err := tester.DragFrom(graphics.Offset{X: 50, Y: 50}, graphics.Offset{X: 30, Y: -10}, 2); err != nil {
		t.Fatal(err)
	}
	if total.X != 30 || total.Y != -10 {
		t.Errorf("total delta = %v, want {30 -10}", total)
	}
	want := []widgets.GestureState{
		widgets.GestureBegan,
		widgets.GestureChanged,
		widgets.GestureChanged,
		widgets.GestureEnded,
	}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("states[%d] = %v, want %v", i, states[i], want[i])
		}
	}
}

func TestSendTouchMove_WithoutBegin(t *testing.T) {
	tester := NewViewTesterWithT(t)
	moved := false
	tester.PumpView(widgets.Drag{
		Child: widgets.RectangleOf(graphics.ColorBlue),
		Action: func(*core.Context, graphics.Offset, widgets.GestureState) {
			moved = true
		},
	})

	if err := tester.SendTouchMove(graphics.Offset{X: 5, Y: 5}, 99); err != nil {
		t.Fatal(err)
	}
	if moved {
		t.Error("move without a begin reached the drag")
	}
}

func TestSendKey_AndCommand(t *testing.T) {
	tester := NewViewTesterWithT(t)
	save := core.CharKey('s')
	runs := 0
	tester.PumpView(widgets.Command{
		Name:   "File/Save",
		Key:    &save,
		Action: func(*core.Context) { runs++ },
		Child:  widgets.Spacer{},
	})

	if got := tester.Commands(); len(got) != 1 || got[0].Path != "File/Save" {
		t.Fatalf("Commands() = %v, want File/Save", got)
	}
	tester.SendKey(core.CharKey('s'))
	tester.SendKey(core.CharKey('x'))
	tester.SendCommand("File/Save")
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}
