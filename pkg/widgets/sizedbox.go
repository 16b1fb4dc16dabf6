package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// Sized gives its child a fixed size, whatever it is offered.
//
//	// Fixed-size box
//	Sized{Size: graphics.Size{Width: 100, Height: 50}, Child: child}
//
//	// Empty gap in a stack
//	Sized{Size: graphics.Size{Width: 16}}
//
// A zero dimension with a child takes the child's size in that dimension.
// Child may be nil.
type Sized struct {
	core.ViewBase
	Size  graphics.Size
	Child core.View
}

func (s Sized) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	if s.Child == nil {
		return recordLayout(path, args.Cx, s.Size)
	}
	offer := args.Size
	if s.Size.Width > 0 {
		offer.Width = s.Size.Width
	}
	if s.Size.Height > 0 {
		offer.Height = s.Size.Height
	}
	child := core.LayoutChild(path, 0, s.Child, args.WithSize(offer))
	size := s.Size
	if size.Width <= 0 {
		size.Width = child.Width
	}
	if size.Height <= 0 {
		size.Height = child.Height
	}
	core.PlaceChild(path, 0, args.Cx, graphics.Offset{
		X: (size.Width - child.Width) / 2,
		Y: (size.Height - child.Height) / 2,
	})
	return recordLayout(path, args.Cx, size)
}

func (s Sized) Draw(path *core.IdPath, cx *core.Context) {
	if s.Child != nil {
		core.DrawChild(path, 0, s.Child, cx)
	}
}

func (s Sized) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	if s.Child == nil {
		return 0, false
	}
	return core.HitTestChild(path, 0, s.Child, pt, cx)
}

func (s Sized) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	if s.Child != nil {
		core.ProcessChild(event, path, 0, s.Child, cx)
	}
}

func (s Sized) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	if s.Child != nil {
		core.DirtyChild(path, 0, s.Child, xform, cx)
	}
}

func (s Sized) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	if s.Child == nil {
		return 0, false
	}
	return core.AccessChild(path, 0, s.Child, cx, nodes)
}

func (s Sized) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	if s.Child != nil {
		core.CommandsChild(path, 0, s.Child, cx, cmds)
	}
}

func (s Sized) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	if s.Child != nil {
		core.GCChild(path, 0, s.Child, cx, ids)
	}
}

// Spacer takes up the leftover space in a stack and draws nothing.
type Spacer struct {
	core.ViewBase
}

func (Spacer) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return recordLayout(path, args.Cx, args.Size)
}

func (Spacer) Draw(*core.IdPath, *core.Context) {}

func (Spacer) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
}

func (Spacer) IsFlexible() bool { return true }
