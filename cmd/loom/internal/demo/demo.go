// Package demo holds the view trees bundled with the loom CLI.
package demo

import (
	"fmt"
	"sort"

	"github.com/go-drift/loom/pkg/binding"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/widgets"
)

// Demo is a named view tree.
type Demo struct {
	Name  string
	Short string
	View  func() core.View
}

var demos = map[string]Demo{}

func register(d Demo) {
	demos[d.Name] = d
}

// Lookup returns the demo with the given name.
func Lookup(name string) (Demo, bool) {
	d, ok := demos[name]
	return d, ok
}

// All returns every demo sorted by name.
func All() []Demo {
	all := make([]Demo, 0, len(demos))
	for _, d := range demos {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

func init() {
	register(Demo{Name: "counter", Short: "Tap a button to increment a counter", View: Counter})
	register(Demo{Name: "lens", Short: "Slider bound to a struct field", View: Lens})
	register(Demo{Name: "nested", Short: "Nested stacks of rounded rectangles", View: Nested})
	register(Demo{Name: "shapes", Short: "Tappable circle and rectangle", View: Shapes})
	register(Demo{Name: "toggle", Short: "Switch with a status label", View: Toggle})
}

// Counter shows a label and a button that increments it.
func Counter() core.View {
	return widgets.WindowTitle{
		Title: "Counter",
		Child: widgets.State[int]{
			Body: func(count core.StateHandle[int], cx *core.Context) core.View {
				return widgets.VStackOf(
					widgets.Padded(widgets.TextOf(fmt.Sprintf("%d", count.Get(cx)))),
					widgets.Padded(widgets.ButtonOf("increment", func(cx *core.Context) {
						count.Update(cx, func(n *int) { *n++ })
					})),
				)
			},
		},
	}
}

type sliderState struct {
	Value float64
}

var valueLens = binding.Field(func(s *sliderState) *float64 { return &s.Value })

// Lens edits one field of a state struct through a slider.
func Lens() core.View {
	return widgets.State[sliderState]{
		Body: func(state core.StateHandle[sliderState], cx *core.Context) core.View {
			return widgets.VStackOf(
				widgets.Padded(widgets.TextOf(fmt.Sprintf("value: %.2f", state.Get(cx).Value)).WithFontSize(10)),
				widgets.Padded(widgets.HSlider{
					Value: binding.Bind[sliderState, float64](state, valueLens),
					Thumb: graphics.RedHighlight,
				}),
			)
		},
	}
}

func rounded(color graphics.Color) core.View {
	return widgets.Padded(widgets.RectangleOf(color).WithCornerRadius(30))
}

// Nested arranges rounded rectangles in alternating stacks.
func Nested() core.View {
	return widgets.Background{
		Child: widgets.HStackOf(
			rounded(graphics.RedHighlight),
			widgets.VStackOf(
				rounded(graphics.AzureHighlight),
				widgets.HStackOf(
					rounded(graphics.ButtonHoverColor),
					widgets.VStackOf(
						widgets.HStackOf(
							rounded(graphics.RedHighlightBackground),
							widgets.VStackOf(rounded(graphics.RedHighlight), rounded(graphics.RedHighlight)),
						),
						rounded(graphics.AzureHighlightDark),
					),
				),
			),
		),
		Background: widgets.RectangleOf(graphics.Grooves),
	}
}

// Shapes counts taps on a circle and a rectangle separately.
func Shapes() core.View {
	return widgets.State[[2]int]{
		Body: func(taps core.StateHandle[[2]int], cx *core.Context) core.View {
			counts := taps.Get(cx)
			return widgets.VStackOf(
				widgets.Padded(widgets.TextOf(fmt.Sprintf("circle %d, rect %d", counts[0], counts[1]))),
				widgets.HStackOf(
					widgets.Padded(widgets.OnTap(widgets.CircleOf(graphics.RedHighlight), func(cx *core.Context) {
						taps.Update(cx, func(c *[2]int) { c[0]++ })
					})),
					widgets.Padded(widgets.OnTap(widgets.RectangleOf(graphics.AzureHighlight).WithCornerRadius(5), func(cx *core.Context) {
						taps.Update(cx, func(c *[2]int) { c[1]++ })
					})),
				),
			)
		},
	}
}

// Toggle shows a switch and its state.
func Toggle() core.View {
	return widgets.State[bool]{
		Body: func(on core.StateHandle[bool], cx *core.Context) core.View {
			label := "off"
			if on.Get(cx) {
				label = "on"
			}
			return widgets.HStackOf(
				widgets.Padded(widgets.Toggle{Value: on}),
				widgets.Padded(widgets.TextOf(label)),
			)
		},
	}
}
