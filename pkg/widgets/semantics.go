package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// Accessible exposes Child to assistive technology as a node with the given
// role and name. The child's own node, if any, becomes its child.
//
//	Accessible{
//	    Role:  semantics.RoleButton,
//	    Name:  "Submit form",
//	    Child: OnTap(submitIcon, submit),
//	}
type Accessible struct {
	core.ViewBase
	Role  semantics.Role
	Name  string
	Child core.View
}

func (a Accessible) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return layoutWrapped(path, a.Child, args)
}

func (a Accessible) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, a.Child, cx)
}

func (a Accessible) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, a.Child, pt, cx)
}

func (a Accessible) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, a.Child, cx)
}

func (a Accessible) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, a.Child, xform, cx)
}

func (a Accessible) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	node := semantics.Node{
		Role:   a.Role,
		Name:   a.Name,
		Bounds: cx.AccessBounds(path),
	}
	if child, ok := core.AccessChild(path, 0, a.Child, cx, nodes); ok {
		node.Children = []semantics.NodeID{child}
	}
	id := cx.ViewID(path).AccessID()
	*nodes = append(*nodes, semantics.Entry{ID: id, Node: node})
	return id, true
}

func (a Accessible) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, a.Child, cx, cmds)
}

func (a Accessible) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	gcWrapped(path, a.Child, cx, ids)
}

func (a Accessible) IsFlexible() bool { return a.Child.IsFlexible() }
