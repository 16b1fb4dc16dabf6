package core

import (
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// View is the unit of UI composition.
//
// Views are immutable descriptors rebuilt every frame. Everything that must
// outlive a frame lives in the Context, keyed by the ViewID of the path the
// view is visited at. Composite views implement each operation by pushing the
// child's index onto the path, forwarding to the child and popping the index;
// the XxxChild helpers in this package do exactly that.
type View interface {
	// Layout sizes the view within args.Size, lays out its children and
	// records its own LayoutBox before returning.
	Layout(path *IdPath, args LayoutArgs) graphics.Size

	// Draw paints the view using the cached layout.
	Draw(path *IdPath, cx *Context)

	// HitTest returns the topmost view containing pt, given in the view's
	// local coordinates.
	HitTest(path *IdPath, pt graphics.Offset, cx *Context) (ViewID, bool)

	// Process handles an event. Positions are local to the view.
	Process(event Event, path *IdPath, cx *Context)

	// Dirty adds the world-space area that needs repainting to the
	// Context's dirty region. xform maps local to world coordinates.
	Dirty(path *IdPath, xform graphics.Affine, cx *Context)

	// Access appends accessibility nodes and returns the id of the node
	// representing this subtree, if any.
	Access(path *IdPath, cx *Context, nodes *[]semantics.Entry) (semantics.NodeID, bool)

	// Commands collects menu commands.
	Commands(path *IdPath, cx *Context, cmds *[]CommandInfo)

	// GC appends the ids of every node in the subtree that owns a layout
	// box or state cell.
	GC(path *IdPath, cx *Context, live *[]ViewID)

	// IsFlexible reports whether the view expands to fill leftover space
	// in a stack.
	IsFlexible() bool
}

// ViewBase provides no-op implementations of the optional View operations.
// Embed it and implement Layout and Draw.
type ViewBase struct{}

func (ViewBase) HitTest(*IdPath, graphics.Offset, *Context) (ViewID, bool) { return 0, false }

func (ViewBase) Process(Event, *IdPath, *Context) {}

func (ViewBase) Dirty(*IdPath, graphics.Affine, *Context) {}

func (ViewBase) Access(*IdPath, *Context, *[]semantics.Entry) (semantics.NodeID, bool) {
	return 0, false
}

func (ViewBase) Commands(*IdPath, *Context, *[]CommandInfo) {}

func (ViewBase) GC(*IdPath, *Context, *[]ViewID) {}

func (ViewBase) IsFlexible() bool { return false }

// CommandInfo describes a menu command.
type CommandInfo struct {
	// Path is the menu path, for example "File/Save".
	Path string
	// Key is the optional hot key that triggers the command.
	Key *Key
}

// LayoutChild lays out child at index i with the given args.
func LayoutChild(path *IdPath, i int, child View, args LayoutArgs) graphics.Size {
	path.Push(i)
	size := child.Layout(path, args)
	path.Pop()
	return size
}

// PlaceChild assigns the offset of the child at index i.
func PlaceChild(path *IdPath, i int, cx *Context, offset graphics.Offset) {
	path.Push(i)
	cx.SetLayoutOffset(path, offset)
	path.Pop()
}

// DrawChild draws child at index i, translated by its offset.
func DrawChild(path *IdPath, i int, child View, cx *Context) {
	path.Push(i)
	offset := cx.GetLayout(path).Offset
	cx.Save()
	cx.Translate(offset)
	child.Draw(path, cx)
	cx.Restore()
	path.Pop()
}

// HitTestChild hit-tests child at index i with pt in the parent's space.
func HitTestChild(path *IdPath, i int, child View, pt graphics.Offset, cx *Context) (ViewID, bool) {
	path.Push(i)
	offset := cx.GetLayout(path).Offset
	id, ok := child.HitTest(path, pt.Sub(offset), cx)
	path.Pop()
	return id, ok
}

// ProcessChild forwards event to child at index i in the child's space.
func ProcessChild(event Event, path *IdPath, i int, child View, cx *Context) {
	path.Push(i)
	offset := cx.GetLayout(path).Offset
	child.Process(LocalEvent(event, offset), path, cx)
	path.Pop()
}

// DirtyChild forwards the dirty pass to child at index i.
func DirtyChild(path *IdPath, i int, child View, xform graphics.Affine, cx *Context) {
	path.Push(i)
	offset := cx.GetLayout(path).Offset
	child.Dirty(path, xform.PreTranslate(offset.X, offset.Y), cx)
	path.Pop()
}

// AccessChild forwards the accessibility pass to child at index i.
func AccessChild(path *IdPath, i int, child View, cx *Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	path.Push(i)
	offset := cx.GetLayout(path).Offset
	saved := cx.accessOrigin
	cx.accessOrigin = saved.Add(offset)
	id, ok := child.Access(path, cx, nodes)
	cx.accessOrigin = saved
	path.Pop()
	return id, ok
}

// CommandsChild forwards command collection to child at index i.
func CommandsChild(path *IdPath, i int, child View, cx *Context, cmds *[]CommandInfo) {
	path.Push(i)
	child.Commands(path, cx, cmds)
	path.Pop()
}

// GCChild forwards live-id collection to child at index i.
func GCChild(path *IdPath, i int, child View, cx *Context, live *[]ViewID) {
	path.Push(i)
	child.GC(path, cx, live)
	path.Pop()
}
