package core

import (
	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/region"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/semantics"
)

// Context owns everything that survives between frames of a running UI: the
// layout cache, the state store and the dirty region, plus the paint state of
// the frame being drawn.
//
// Context is NOT thread-safe. Every traversal takes exclusive access for its
// whole duration; starting a traversal while another is running fails with
// errors.ErrReentrant.
type Context struct {
	layout  map[ViewID]LayoutBox
	world   map[ViewID]graphics.Rect
	states  map[stateKey]any
	invalid map[ViewID]struct{}
	dirty   region.Region

	windowSize graphics.Size
	resized    bool
	title      string
	mods       KeyboardModifiers
	measurer   rendering.TextMeasurer

	marked       map[ViewID]struct{}
	touchTargets map[int]ViewID
	claimed      map[int]bool

	accessNodes  []semantics.Entry
	accessOrigin graphics.Offset
	commands     []CommandInfo

	renderer rendering.Renderer
	paint    paintTracker

	path IdPath
	busy bool
}

// NewContext creates an empty context that measures text with
// rendering.BasicMeasurer.
func NewContext() *Context {
	return &Context{
		layout:       make(map[ViewID]LayoutBox),
		world:        make(map[ViewID]graphics.Rect),
		states:       make(map[stateKey]any),
		invalid:      make(map[ViewID]struct{}),
		marked:       make(map[ViewID]struct{}),
		touchTargets: make(map[int]ViewID),
		claimed:      make(map[int]bool),
		measurer:     rendering.NewBasicMeasurer(),
		title:        "loom",
		paint:        newPaintTracker(),
	}
}

// ViewID returns the id of the node at path.
func (cx *Context) ViewID(path *IdPath) ViewID {
	return ViewIDOf(path)
}

// Invalidate schedules the node with id for repaint on the next update.
func (cx *Context) Invalidate(id ViewID) {
	cx.invalid[id] = struct{}{}
}

// IsInvalid reports whether id was invalidated since the last dirty pass.
func (cx *Context) IsInvalid(id ViewID) bool {
	_, ok := cx.invalid[id]
	return ok
}

// DirtyRegion returns the area that changed during the last update.
func (cx *Context) DirtyRegion() *region.Region {
	return &cx.dirty
}

// WindowSize returns the size offered to the root view in the last layout.
func (cx *Context) WindowSize() graphics.Size {
	return cx.windowSize
}

// Modifiers returns the current keyboard modifier state.
func (cx *Context) Modifiers() KeyboardModifiers {
	return cx.mods
}

// SetModifiers records a modifier state change reported by the platform.
func (cx *Context) SetModifiers(mods KeyboardModifiers) {
	cx.mods = mods
}

// WindowTitle returns the title requested by the view tree.
func (cx *Context) WindowTitle() string {
	return cx.title
}

// SetWindowTitle requests a window title.
func (cx *Context) SetWindowTitle(title string) {
	cx.title = title
}

// Measurer returns the text measurer used during layout.
func (cx *Context) Measurer() rendering.TextMeasurer {
	return cx.measurer
}

// SetMeasurer replaces the text measurer. A nil measurer restores the default.
func (cx *Context) SetMeasurer(m rendering.TextMeasurer) {
	if m == nil {
		m = rendering.NewBasicMeasurer()
	}
	cx.measurer = m
}

// AccessBounds returns the root-space bounds of the node at path. It is
// meant to be called from Access.
func (cx *Context) AccessBounds(path *IdPath) graphics.Rect {
	return cx.GetLayout(path).Rect.Translate(cx.accessOrigin.X, cx.accessOrigin.Y)
}

// AccessNodes returns the accessibility nodes emitted by the last update.
func (cx *Context) AccessNodes() []semantics.Entry {
	return cx.accessNodes
}

// StateCount returns the number of live state cells.
func (cx *Context) StateCount() int {
	return len(cx.states)
}

// LayoutCount returns the number of cached layout boxes.
func (cx *Context) LayoutCount() int {
	return len(cx.layout)
}

// enter claims exclusive access for a traversal.
func (cx *Context) enter(op string) error {
	if cx.busy {
		err := errors.New(op, errors.KindState, errors.ErrReentrant)
		errors.Report(err)
		return err
	}
	cx.busy = true
	cx.path.Reset()
	return nil
}

// leave releases exclusive access and checks that the traversal left the
// path balanced. Path on the reported error is the leftover depth, or the
// negated underflow count when views popped more than they pushed.
func (cx *Context) leave(op string) error {
	cx.busy = false
	if cx.path.Balanced() {
		return nil
	}
	depth := cx.path.Len()
	if cx.path.underflow != 0 {
		depth = -cx.path.underflow
	}
	cx.path.Reset()
	err := errors.New(op, errors.KindAddressing, errors.ErrUnbalancedPath)
	err.Path = depth
	err.StackTrace = errors.CaptureStack()
	errors.Report(err)
	return err
}

// traverse runs fn with exclusive access to the context and checks the path
// afterwards. A panic in fn is reported, the context is released and the
// traversal fails with a KindPanic error.
func (cx *Context) traverse(op string, fn func()) (err error) {
	if err := cx.enter(op); err != nil {
		return err
	}
	defer errors.RecoverWithCallback(op, func(r any) {
		cx.path.Reset()
		cx.busy = false
		err = errors.New(op, errors.KindPanic, &errors.PanicError{Op: op, Value: r})
	})
	fn()
	return cx.leave(op)
}
