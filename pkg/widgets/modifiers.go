package widgets

import (
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/semantics"
)

// Command declares a menu command. Name is the menu path, for example
// "File/Save". Action runs when the command is selected from the menu or
// when Key is pressed.
type Command struct {
	core.ViewBase
	Name   string
	Key    *core.Key
	Action func(cx *core.Context)
	Child  core.View
}

func (c Command) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return layoutWrapped(path, c.Child, args)
}

func (c Command) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, c.Child, cx)
}

func (c Command) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, c.Child, pt, cx)
}

func (c Command) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, c.Child, cx)
	if c.Action == nil {
		return
	}
	switch e := event.(type) {
	case core.CommandEvent:
		if e.Name == c.Name {
			c.Action(cx)
		}
	case core.KeyEvent:
		if c.Key != nil && *c.Key == e.Key {
			c.Action(cx)
		}
	}
}

func (c Command) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, c.Child, xform, cx)
}

func (c Command) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, c.Child, cx, nodes)
}

func (c Command) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, c.Child, cx, cmds)
	*cmds = append(*cmds, core.CommandInfo{Path: c.Name, Key: c.Key})
}

func (c Command) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	gcWrapped(path, c.Child, cx, ids)
}

func (c Command) IsFlexible() bool { return c.Child.IsFlexible() }

// OnKey calls Action for every key press. Key events are broadcast, so
// Action sees keys whether or not the view has focus.
type OnKey struct {
	core.ViewBase
	Child  core.View
	Action func(cx *core.Context, key core.Key)
}

func (k OnKey) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	return layoutWrapped(path, k.Child, args)
}

func (k OnKey) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, k.Child, cx)
}

func (k OnKey) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, k.Child, pt, cx)
}

func (k OnKey) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, k.Child, cx)
	if e, ok := event.(core.KeyEvent); ok && k.Action != nil {
		k.Action(cx, e.Key)
	}
}

func (k OnKey) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, k.Child, xform, cx)
}

func (k OnKey) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, k.Child, cx, nodes)
}

func (k OnKey) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, k.Child, cx, cmds)
}

func (k OnKey) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	gcWrapped(path, k.Child, cx, ids)
}

func (k OnKey) IsFlexible() bool { return k.Child.IsFlexible() }

// WindowTitle sets the title of the window while it is part of the tree.
type WindowTitle struct {
	core.ViewBase
	Title string
	Child core.View
}

func (w WindowTitle) Layout(path *core.IdPath, args core.LayoutArgs) graphics.Size {
	args.Cx.SetWindowTitle(w.Title)
	return layoutWrapped(path, w.Child, args)
}

func (w WindowTitle) Draw(path *core.IdPath, cx *core.Context) {
	core.DrawChild(path, 0, w.Child, cx)
}

func (w WindowTitle) HitTest(path *core.IdPath, pt graphics.Offset, cx *core.Context) (core.ViewID, bool) {
	return core.HitTestChild(path, 0, w.Child, pt, cx)
}

func (w WindowTitle) Process(event core.Event, path *core.IdPath, cx *core.Context) {
	core.ProcessChild(event, path, 0, w.Child, cx)
}

func (w WindowTitle) Dirty(path *core.IdPath, xform graphics.Affine, cx *core.Context) {
	core.DirtyChild(path, 0, w.Child, xform, cx)
}

func (w WindowTitle) Access(path *core.IdPath, cx *core.Context, nodes *[]semantics.Entry) (semantics.NodeID, bool) {
	return core.AccessChild(path, 0, w.Child, cx, nodes)
}

func (w WindowTitle) Commands(path *core.IdPath, cx *core.Context, cmds *[]core.CommandInfo) {
	core.CommandsChild(path, 0, w.Child, cx, cmds)
}

func (w WindowTitle) GC(path *core.IdPath, cx *core.Context, ids *[]core.ViewID) {
	gcWrapped(path, w.Child, cx, ids)
}

func (w WindowTitle) IsFlexible() bool { return w.Child.IsFlexible() }
