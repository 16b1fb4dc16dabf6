package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// ZStack overlays children on top of each other.
//
// Children are painted in order, with the first child at the bottom and
// the last child on top; each child gets its own z-index. Hit testing
// proceeds in reverse (topmost first). Every child is offered the full
// space and centered within it:
//
//	ZStackOf(
//	    RectangleOf(graphics.ButtonBackgroundColor),
//	    TextOf("on top"),
//	)
type ZStack struct {
	core.ViewBase
	Children []core.View
}

func (z ZStack) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	sizes := make([]graphics.Size, len(z.Children))
	var content graphics.Size
	for i, child := range z.Children {
		sizes[i] = core.LayoutChild(path, i, child, args)
		content.Width = max(content.Width, sizes[i].Width)
		content.Height = max(content.Height, sizes[i].Height)
	}
	size := args.Size
	if isUnbounded(size.Width) {
		size.Width = content.Width
	}
	if isUnbounded(size.Height) {
		size.Height = content.Height
	}
	for i, s := range sizes {
		core.PlaceChild(path, i, args.Cx, graphics.Offset{
			X: (size.Width - s.Width) / 2,
			Y: (size.Height - s.Height) / 2,
		})
	}
	return recordLayout(path, args.Cx, size)
}

func (z ZStack) Draw(path *core.IdPath, cx *core.Context) {
	for i, child := range z.Children {
		cx.NextZ()
		core.DrawChild(path, i, child, cx)
	}
}

func (z ZStack) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return hitTestChildren(path, z.Children, pt, cx)
}

func (z ZStack) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	for i, child := range z.Children {
		core.ProcessChild(event, path, i, child, cx)
	}
}

func (z ZStack) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	for i, child := range z.Children {
		core.DirtyChild(path, i, child, xform, cx)
	}
}

func (z ZStack) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return accessGroup(path, z.Children, cx, nodes)
}

func (z ZStack) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	for i, child := range z.Children {
		core.CommandsChild(path, i, child, cx, cmds)
	}
}

func (z ZStack) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	for i, child := range z.Children {
		core.GCChild(path, i, child, cx, ids)
	}
}

func (z ZStack) IsFlexible() bool { return true }
