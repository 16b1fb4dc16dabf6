package widgets

import (
	"fmt"

	"github.com/go-drift/loom/pkg/binding"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// GestureState reports the phase of a drag.
type GestureState int

const (
	GestureBegan GestureState = iota
	GestureChanged
	GestureEnded
)

// String returns a human-readable representation of the gesture state.
func (s GestureState) String() string {
	switch s {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	default:
		return fmt.Sprintf("GestureState(%d)", int(s))
	}
}

// Tap calls Action when a touch that started on Child ends.
//
// Children process events first, so a Tap nested inside another Tap wins
// the touch. A Tap only claims touches whose initial hit lies inside its own
// child: overlapping siblings never fire for a touch that began on another
// sibling.
//
//	OnTap(TextOf("Save"), func(cx *core.Context) { save() })
type Tap struct {
	core.ViewBase
	Child  core.View
	Action func(cx *core.Context)
}

func (t Tap) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return layoutWrapped(path, t.Child, args)
}

func (t Tap) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, t.Child, cx)
}

func (t Tap) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, t.Child, pt, cx)
}

func (t Tap) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, t.Child, cx)
	id := cx.ViewID(path)
	switch e := event.(type) {
	case core.TouchBegin:
		hit, ok := core.HitTestChild(path, 0, t.Child, e.Position, cx)
		cx.BeginGesture(id, e.ID, hit, ok)
	case core.TouchEnd:
		if !cx.IsCaptured(id, e.ID) {
			return
		}
		cx.ReleaseGesture(id, e.ID)
		if t.Action != nil {
			t.Action(cx)
		}
	}
}

func (t Tap) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, t.Child, xform, cx)
}

func (t Tap) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, t.Child, cx, nodes)
}

func (t Tap) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, t.Child, cx, cmds)
}

func (t Tap) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	gcWrapped(path, t.Child, cx, ids)
}

func (t Tap) IsFlexible() bool { return t.Child.IsFlexible() }

// Drag reports the movement of a touch that started on Child.
//
// Action is called with a zero delta and GestureBegan when the touch is
// captured, with the movement since the previous event and GestureChanged
// for every move, and with GestureEnded when the touch lifts. Moves outside
// the child keep going to the drag until the touch ends.
type Drag struct {
	core.ViewBase
	Child  core.View
	Action func(cx *core.Context, delta graphics.Offset, state GestureState)
}

func (d Drag) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return layoutWrapped(path, d.Child, args)
}

func (d Drag) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, d.Child, cx)
}

func (d Drag) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, d.Child, pt, cx)
}

func (d Drag) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, d.Child, cx)
	processDrag(event, path, d.Child, cx, func(delta graphics.Offset, state GestureState) {
		if d.Action != nil {
			d.Action(cx, delta, state)
		}
	})
}

func (d Drag) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, d.Child, xform, cx)
}

func (d Drag) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, d.Child, cx, nodes)
}

func (d Drag) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, d.Child, cx, cmds)
}

func (d Drag) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	gcWrapped(path, d.Child, cx, ids)
}

func (d Drag) IsFlexible() bool { return d.Child.IsFlexible() }

// DragS is a Drag whose action edits the value of a binding in place. The
// edited value is written back through the binding after every call.
type DragS[T any] struct {
	core.ViewBase
	Child  core.View
	Value  binding.Binding[T]
	Action func(value *T, delta graphics.Offset, state GestureState)
}

func (d DragS[T]) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return layoutWrapped(path, d.Child, args)
}

func (d DragS[T]) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, d.Child, cx)
}

func (d DragS[T]) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, d.Child, pt, cx)
}

func (d DragS[T]) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, d.Child, cx)
	processDrag(event, path, d.Child, cx, func(delta graphics.Offset, state GestureState) {
		if d.Action == nil || d.Value == nil {
			return
		}
		value := d.Value.Get(cx)
		d.Action(&value, delta, state)
		d.Value.Set(cx, value)
	})
}

func (d DragS[T]) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, d.Child, xform, cx)
}

func (d DragS[T]) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, d.Child, cx, nodes)
}

func (d DragS[T]) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, d.Child, cx, cmds)
}

func (d DragS[T]) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	gcWrapped(path, d.Child, cx, ids)
}

func (d DragS[T]) IsFlexible() bool { return d.Child.IsFlexible() }

func processDrag(event core.Event, path *core.IdPath, child core.View, cx *core.Context, emit func(graphics.Offset, GestureState)) {
	id := cx.ViewID(path)
	switch e := event.(type) {
	case core.TouchBegin:
		hit, ok := core.HitTestChild(path, 0, child, e.Position, cx)
		if cx.BeginGesture(id, e.ID, hit, ok) {
			emit(graphics.Offset{}, GestureBegan)
		}
	case core.TouchMove:
		if cx.IsCaptured(id, e.ID) {
			emit(e.Delta, GestureChanged)
		}
	case core.TouchEnd:
		if cx.IsCaptured(id, e.ID) {
			cx.ReleaseGesture(id, e.ID)
			emit(graphics.Offset{}, GestureEnded)
		}
	}
}

// layoutWrapped lays out a single child at the node's origin and takes the
// child's size.
func layoutWrapped(path *core.IdPath, child core.View, args core.LayoutArgs) graphics.Size {
	size := core.LayoutChild(path, 0, child, args)
	return recordLayout(path, args.Cx, size)
}

func gcWrapped(path *core.IdPath, child core.View, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	core.GCChild(path, 0, child, cx, ids)
}
