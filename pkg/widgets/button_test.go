package widgets_test

import (
	"testing"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/semantics"
	loomtest "github.com/go-drift/loom/pkg/testing"
	"github.com/go-drift/loom/pkg/widgets"
)

func TestButton_Tap(t *testing.T) {
	tests := []struct {
		name     string
		disabled bool
		want     int
	}{
		{name: "enabled", want: 2},
		{name: "disabled", disabled: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps := 0
			tester := loomtest.NewViewTesterWithT(t)
			tester.PumpView(widgets.ButtonOf("Submit", func(*core.Context) { taps++ }).WithDisabled(tt.disabled))

			for range 2 {
				if err := tester.Tap("Submit"); err != nil {
					t.Fatal(err)
				}
			}
			if taps != tt.want {
				t.Errorf("taps = %d, want %d", taps, tt.want)
			}
		})
	}
}

func TestButton_Semantics(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.PumpView(widgets.ButtonOf("OK", nil))

	entry, ok := tester.FindByName("OK")
	if !ok {
		t.Fatal("expected a node named OK")
	}
	if entry.Node.Role != semantics.RoleButton {
		t.Errorf("Role = %v, want %v", entry.Node.Role, semantics.RoleButton)
	}
	if len(entry.Node.Children) != 1 {
		t.Errorf("Children = %v, want the label node", entry.Node.Children)
	}
}

func TestButton_DrawsBackgroundColor(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.PumpView(widgets.ButtonOf("Go", nil).WithColor(graphics.ColorRed, graphics.ColorWhite))

	var fill, text bool
	for _, op := range tester.Ops() {
		switch op.Kind {
		case rendering.OpFill:
			if op.Paint.Color == graphics.ColorRed {
				fill = true
			}
		case rendering.OpText:
			if op.Text.Style.Color == graphics.ColorWhite {
				text = true
			}
		}
	}
	if !fill || !text {
		t.Errorf("red background drawn = %v, white label drawn = %v, want both", fill, text)
	}
}

func TestToggle_TapFlipsValue(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.PumpView(widgets.State[bool]{
		Body: func(on core.StateHandle[bool], cx *core.Context) core.View {
			return widgets.Toggle{Value: on}
		},
	})

	value := func() string {
		t.Helper()
		for _, e := range tester.Semantics() {
			if e.Node.Role == semantics.RoleButton {
				return e.Node.Value
			}
		}
		t.Fatal("no toggle node")
		return ""
	}

	if got := value(); got != "off" {
		t.Errorf("initial value = %q, want %q", got, "off")
	}
	for _, want := range []string{"on", "off", "on"} {
		if err := tester.TapAt(graphics.Offset{X: 20, Y: 10}); err != nil {
			t.Fatal(err)
		}
		if got := value(); got != want {
			t.Errorf("value = %q, want %q", got, want)
		}
	}
}

func TestToggle_Disabled(t *testing.T) {
	tester := loomtest.NewViewTesterWithT(t)
	tester.PumpView(widgets.State[bool]{
		Body: func(on core.StateHandle[bool], cx *core.Context) core.View {
			return widgets.Toggle{Value: on, Disabled: true}
		},
	})
	if err := tester.TapAt(graphics.Offset{X: 20, Y: 10}); err != nil {
		t.Fatal(err)
	}
	if got := core.NewStateHandle[bool](tester.ViewID(), nil).Get(tester.Context()); got {
		t.Error("disabled toggle flipped its value")
	}
}
