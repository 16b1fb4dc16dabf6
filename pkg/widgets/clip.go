package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// Clip fills the space it is offered and clips its child's painting and hit
// testing to that space.
type Clip struct {
	core.ViewBase
	Child core.View
}

func (c Clip) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	core.LayoutChild(path, 0, c.Child, args)
	return recordLayout(path, args.Cx, args.Size)
}

func (c Clip) Draw(path *core.IdPath, cx *core.Context) {
	cx.Save()
	cx.ClipRect(cx.GetLayout(path).Rect)
	core.DrawChild(path, 0, c.Child, cx)
	cx.Restore()
}

func (c Clip) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	if !cx.GetLayout(path).Rect.Contains(pt) {
		return 0, false
	}
	return core.HitTestChild(path, 0, c.Child, pt, cx)
}

func (c Clip) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, c.Child, cx)
}

func (c Clip) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, c.Child, xform, cx)
}

func (c Clip) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, c.Child, cx, nodes)
}

func (c Clip) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, c.Child, cx, cmds)
}

func (c Clip) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	core.GCChild(path, 0, c.Child, cx, ids)
}

func (c Clip) IsFlexible() bool { return true }
