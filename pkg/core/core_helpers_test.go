package core

import (
	"testing"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// recordingHandler captures reported errors instead of logging them.
type recordingHandler struct {
	errs   []*errors.LoomError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.LoomError)  { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func withHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

// box is a leaf that fills its offer unless it has a fixed size.
type box struct {
	ViewBase
	size  graphics.Size
	color graphics.Color
}

func (b box) Layout(path *IdPath, args LayoutArgs) graphics.Size {
	size := b.size
	if size.IsEmpty() {
		size = args.Size
	}
	args.Cx.UpdateLayout(path, graphics.RectFromSize(size))
	return size
}

func (b box) Draw(path *IdPath, cx *Context) {
	cx.Fill(graphics.RectShape(cx.GetLayout(path).Rect, 0), graphics.SolidPaint(b.color), 0)
}

func (b box) HitTest(path *IdPath, pt graphics.Offset, cx *Context) (ViewID, bool) {
	if cx.GetLayout(path).Rect.Contains(pt) {
		return cx.ViewID(path), true
	}
	return 0, false
}

func (b box) Dirty(path *IdPath, xform graphics.Affine, cx *Context) {
	cx.MarkDirty(path, xform)
}

func (b box) GC(path *IdPath, cx *Context, live *[]ViewID) {
	*live = append(*live, cx.ViewID(path))
}

func (b box) IsFlexible() bool { return b.size.IsEmpty() }

// row places its children left to right.
type row struct {
	ViewBase
	children []View
}

func (r row) Layout(path *IdPath, args LayoutArgs) graphics.Size {
	var x, height float64
	for i, child := range r.children {
		size := LayoutChild(path, i, child, args)
		PlaceChild(path, i, args.Cx, graphics.Offset{X: x})
		x += size.Width
		height = max(height, size.Height)
	}
	size := graphics.Size{Width: x, Height: height}
	args.Cx.UpdateLayout(path, graphics.RectFromSize(size))
	return size
}

func (r row) Draw(path *IdPath, cx *Context) {
	for i, child := range r.children {
		DrawChild(path, i, child, cx)
	}
}

func (r row) HitTest(path *IdPath, pt graphics.Offset, cx *Context) (ViewID, bool) {
	for i := len(r.children) - 1; i >= 0; i-- {
		if id, ok := HitTestChild(path, i, r.children[i], pt, cx); ok {
			return id, true
		}
	}
	return 0, false
}

func (r row) Process(event Event, path *IdPath, cx *Context) {
	for i, child := range r.children {
		ProcessChild(event, path, i, child, cx)
	}
}

func (r row) Dirty(path *IdPath, xform graphics.Affine, cx *Context) {
	for i, child := range r.children {
		DirtyChild(path, i, child, xform, cx)
	}
}

func (r row) GC(path *IdPath, cx *Context, live *[]ViewID) {
	*live = append(*live, cx.ViewID(path))
	for i, child := range r.children {
		GCChild(path, i, child, cx, live)
	}
}

// counter owns an int state cell initialized to start.
type counter struct {
	ViewBase
	start int
}

func (c counter) handle(path *IdPath) StateHandle[int] {
	start := c.start
	return NewStateHandle(ViewIDOf(path), func() int { return start })
}

func (c counter) Layout(path *IdPath, args LayoutArgs) graphics.Size {
	c.handle(path).Get(args.Cx)
	size := graphics.Size{Width: 10, Height: 10}
	args.Cx.UpdateLayout(path, graphics.RectFromSize(size))
	return size
}

func (c counter) Draw(*IdPath, *Context) {}

func (c counter) Dirty(path *IdPath, xform graphics.Affine, cx *Context) {
	cx.MarkDirty(path, xform)
}

func (c counter) GC(path *IdPath, cx *Context, live *[]ViewID) {
	*live = append(*live, cx.ViewID(path))
}

// leaky pushes onto the path without popping.
type leaky struct {
	ViewBase
}

func (leaky) Layout(path *IdPath, args LayoutArgs) graphics.Size {
	path.Push(0)
	return args.Size
}

func (leaky) Draw(*IdPath, *Context) {}

// overPopper pops one more index than it was given.
type overPopper struct {
	box
}

func (o overPopper) Layout(path *IdPath, args LayoutArgs) graphics.Size {
	path.Pop()
	return o.box.Layout(path, args)
}

// exploding panics in every pass.
type exploding struct {
	ViewBase
}

func (exploding) Layout(*IdPath, LayoutArgs) graphics.Size { panic("layout") }
func (exploding) Draw(*IdPath, *Context)                    { panic("draw") }
func (exploding) Dirty(*IdPath, graphics.Affine, *Context) { panic("dirty") }
func (exploding) Access(*IdPath, *Context, *[]semantics.Entry) (semantics.NodeID, bool) {
	panic("access")
}
func (exploding) GC(*IdPath, *Context, *[]ViewID) { panic("gc") }

// panicky panics while processing events.
type panicky struct {
	box
}

func (panicky) Process(event Event, path *IdPath, cx *Context) {
	path.Push(3)
	panic("boom")
}

// reentrant starts a nested traversal from inside layout.
type reentrant struct {
	ViewBase
	err *error
}

func (r reentrant) Layout(path *IdPath, args LayoutArgs) graphics.Size {
	*r.err = args.Cx.Layout(box{}, args.Size)
	return args.Size
}

func (reentrant) Draw(*IdPath, *Context) {}
