package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// Canvas fills the space it is offered and paints it with a callback. The
// callback receives the canvas rect in local coordinates.
type Canvas struct {
	core.ViewBase
	Paint func(cx *core.Context, rect graphics.Rect)
}

func (c Canvas) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return recordLayout(path, args.Cx, args.Size)
}

func (c Canvas) Draw(path *core.IdPath, cx *core.Context) {
	if c.Paint == nil {
		return
	}
	c.Paint(cx, cx.GetLayout(path).Rect)
}

func (c Canvas) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return hitSelf(path, pt, cx)
}

func (c Canvas) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	cx.MarkDirty(path, xform)
}

func (c Canvas) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
}

func (c Canvas) IsFlexible() bool { return true }

// Geom reports the laid-out size and the current local-to-world transform of
// its child while drawing. The child occupies the same box as Geom.
type Geom struct {
	core.ViewBase
	Child  core.View
	OnGeom func(cx *core.Context, size graphics.Size, xform graphics.Affine)
}

func (g Geom) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	size := core.LayoutChild(path, 0, g.Child, args)
	return recordLayout(path, args.Cx, size)
}

func (g Geom) Draw(path *core.IdPath, cx *core.Context) {
	if g.OnGeom != nil {
		g.OnGeom(cx, cx.GetLayout(path).Rect.Size(), cx.Transform())
	}
	core.DrawChild(path, 0, g.Child, cx)
}

func (g Geom) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, g.Child, pt, cx)
}

func (g Geom) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, g.Child, cx)
}

func (g Geom) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, g.Child, xform, cx)
}

func (g Geom) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, g.Child, cx, nodes)
}

func (g Geom) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, g.Child, cx, cmds)
}

func (g Geom) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	core.GCChild(path, 0, g.Child, cx, ids)
}

func (g Geom) IsFlexible() bool { return g.Child.IsFlexible() }
