package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// State owns a state cell of type S and builds its content from it.
//
// The cell is created with Init the first time the view is visited and is
// kept across frames for as long as a State stays at the same position in
// the tree. Body is called on every traversal with a handle to the cell:
//
//	State[int]{
//	    Body: func(count core.StateHandle[int], cx *core.Context) core.View {
//	        return OnTap(TextOf(count.Get(cx)), func(cx *core.Context) {
//	            count.Update(cx, func(n *int) { *n++ })
//	        })
//	    },
//	}
//
// Setting the cell through the handle repaints the State's subtree on the
// next frame.
//
// A State cannot know its content's flexibility without a Context, so it
// always reports itself as flexible.
type State[S any] struct {
	core.ViewBase
	Init func() S
	Body func(h core.StateHandle[S], cx *core.Context) core.View
}

func (s State[S]) body(path *core.IdPath, cx *core.Context) core.View {
	id := cx.ViewID(path)
	core.GetState(cx, id, s.Init)
	return s.Body(core.NewStateHandle(id, s.Init), cx)
}

func (s State[S]) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	size := core.LayoutChild(path, 0, s.body(path, args.Cx), args)
	return recordLayout(path, args.Cx, size)
}

func (s State[S]) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, s.body(path, cx), cx)
}

func (s State[S]) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, s.body(path, cx), pt, cx)
}

func (s State[S]) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, s.body(path, cx), cx)
}

func (s State[S]) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	cx.MarkDirty(path, xform)
	core.DirtyChild(path, 0, s.body(path, cx), xform, cx)
}

func (s State[S]) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, s.body(path, cx), cx, nodes)
}

func (s State[S]) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, s.body(path, cx), cx, cmds)
}

func (s State[S]) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	live(path, cx, ids)
	core.GCChild(path, 0, s.body(path, cx), cx, ids)
}

func (s State[S]) IsFlexible() bool { return true }
