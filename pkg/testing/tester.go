package testing

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/semantics"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ViewTester provides isolated view testing without a platform. It drives
// the same update and draw passes as the engine, recording the frame instead
// of rasterizing it.
type ViewTester struct {
	cx       *core.Context
	view     core.View
	size     graphics.Size
	recorder *rendering.Recorder
	pointers map[int]graphics.Offset
	commands []core.CommandInfo
}

// NewViewTester creates a tester with the default surface size.
func NewViewTester() *ViewTester {
	size := graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}
	return &ViewTester{
		cx:       core.NewContext(),
		size:     size,
		recorder: rendering.NewRecorder(size),
		pointers: make(map[int]graphics.Offset),
	}
}

// NewViewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewViewTesterWithT(t *testing.T) *ViewTester {
	tester := NewViewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup drops the mounted view.
func (t *ViewTester) Cleanup() {
	t.view = nil
}

// Context returns the context the tester runs frames against.
func (t *ViewTester) Context() *core.Context {
	return t.cx
}

// SetSize sets the logical surface size used by the next frame.
func (t *ViewTester) SetSize(size graphics.Size) {
	t.size = size
	t.recorder.Size = size
}

// PumpView mounts view and runs one frame. State is kept for every node
// whose position in the tree is unchanged.
func (t *ViewTester) PumpView(view core.View) error {
	t.view = view
	return t.Pump()
}

// Pump runs one frame: layout, dirty computation, accessibility, commands,
// a recorded draw and GC.
func (t *ViewTester) Pump() error {
	if t.view == nil {
		return fmt.Errorf("no view mounted")
	}
	if _, err := t.cx.Update(t.view, t.size); err != nil {
		return err
	}
	cmds, err := t.cx.Commands(t.view)
	if err != nil {
		return err
	}
	t.commands = append(t.commands[:0], cmds...)
	if _, err := t.cx.Render(context.Background(), t.recorder, t.view, false); err != nil {
		return err
	}
	return t.cx.GC(t.view)
}

// Recorder returns the renderer frames are recorded with.
func (t *ViewTester) Recorder() *rendering.Recorder {
	return t.recorder
}

// Ops returns the renderer calls of the last frame.
func (t *ViewTester) Ops() []rendering.Op {
	return t.recorder.Ops()
}

// ViewID returns the id of the node reached by following child indices
// from the root.
func (t *ViewTester) ViewID(indices ...int) core.ViewID {
	var path core.IdPath
	for _, i := range indices {
		path.Push(i)
	}
	return core.ViewIDOf(&path)
}

// LayoutOf returns the cached layout of the node reached by indices.
func (t *ViewTester) LayoutOf(indices ...int) (core.LayoutBox, bool) {
	return t.cx.LayoutOf(t.ViewID(indices...))
}

// HitTest returns the topmost node at pos.
func (t *ViewTester) HitTest(pos graphics.Offset) (core.ViewID, bool) {
	if t.view == nil {
		return 0, false
	}
	return t.cx.HitTest(t.view, pos)
}

// Semantics returns the accessibility nodes of the last frame.
func (t *ViewTester) Semantics() []semantics.Entry {
	return t.cx.AccessNodes()
}

// FindByName returns the first accessibility node named name.
func (t *ViewTester) FindByName(name string) (semantics.Entry, bool) {
	for _, e := range t.cx.AccessNodes() {
		if e.Node.Name == name {
			return e, true
		}
	}
	return semantics.Entry{}, false
}

// Commands returns the menu commands declared by the last frame.
func (t *ViewTester) Commands() []core.CommandInfo {
	return t.commands
}

// WindowTitle returns the title requested by the view tree.
func (t *ViewTester) WindowTitle() string {
	return t.cx.WindowTitle()
}
