package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// Background draws Background behind Child, sized to Child's layout.
//
//	Background{
//	    Child:      Padded(TextOf("OK")),
//	    Background: RectangleOf(graphics.ButtonBackgroundColor).WithCornerRadius(6),
//	}
type Background struct {
	core.ViewBase
	Child      core.View
	Background core.View
}

const (
	backgroundChild = 0
	backgroundView  = 1
)

func (b Background) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	size := core.LayoutChild(path, backgroundChild, b.Child, args)
	core.LayoutChild(path, backgroundView, b.Background, args.WithSize(size))
	return recordLayout(path, args.Cx, size)
}

func (b Background) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, backgroundView, b.Background, cx)
	core.DrawChild(path, backgroundChild, b.Child, cx)
}

func (b Background) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	if id, ok := core.HitTestChild(path, backgroundChild, b.Child, pt, cx); ok {
		return id, true
	}
	return core.HitTestChild(path, backgroundView, b.Background, pt, cx)
}

func (b Background) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, backgroundChild, b.Child, cx)
}

func (b Background) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, backgroundView, b.Background, xform, cx)
	core.DirtyChild(path, backgroundChild, b.Child, xform, cx)
}

func (b Background) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, backgroundChild, b.Child, cx, nodes)
}

func (b Background) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, backgroundChild, b.Child, cx, cmds)
}

func (b Background) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	core.GCChild(path, backgroundChild, b.Child, cx, ids)
	core.GCChild(path, backgroundView, b.Background, cx, ids)
}

func (b Background) IsFlexible() bool { return b.Child.IsFlexible() }
