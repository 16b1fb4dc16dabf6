package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// AutoPadding is the default inset used by Padded.
const AutoPadding = 5

// Padding adds empty space around its child.
//
// The child is offered the remaining space after the padding is applied on
// every side, and Padding reports the child's size plus the padding:
//
//	Padding{Amount: 16, Child: child}
//
// Use [Padded] for the default inset.
type Padding struct {
	core.ViewBase
	Amount float64
	Child  core.View
}

func (p Padding) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	inner := args.Size.Deflate(2*p.Amount, 2*p.Amount)
	child := core.LayoutChild(path, 0, p.Child, args.WithSize(inner))
	core.PlaceChild(path, 0, args.Cx, graphics.Offset{X: p.Amount, Y: p.Amount})
	return recordLayout(path, args.Cx, graphics.Size{
		Width:  child.Width + 2*p.Amount,
		Height: child.Height + 2*p.Amount,
	})
}

func (p Padding) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, p.Child, cx)
}

func (p Padding) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, p.Child, pt, cx)
}

func (p Padding) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, p.Child, cx)
}

func (p Padding) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, p.Child, xform, cx)
}

func (p Padding) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, p.Child, cx, nodes)
}

func (p Padding) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, p.Child, cx, cmds)
}

func (p Padding) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	core.GCChild(path, 0, p.Child, cx, ids)
}

func (p Padding) IsFlexible() bool { return p.Child.IsFlexible() }
