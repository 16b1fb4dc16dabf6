package core

import "github.com/go-drift/loom/pkg/graphics"

// LayoutBox is the cached result of a node's layout step.
type LayoutBox struct {
	// Rect is the node's bounds in its own coordinate space.
	Rect graphics.Rect
	// Offset translates from the parent's origin to this node's origin. It is
	// assigned by the parent container after the child has been laid out.
	Offset graphics.Offset
}

// LayoutArgs carries the size offered to a node during layout.
type LayoutArgs struct {
	Size graphics.Size
	Cx   *Context
}

// WithSize returns a copy of the args offering size instead.
func (a LayoutArgs) WithSize(size graphics.Size) LayoutArgs {
	a.Size = size
	return a
}

// UpdateLayout records the layout of the node at path. The offset is reset;
// the parent assigns it with SetLayoutOffset once the node returns.
func (cx *Context) UpdateLayout(path *IdPath, rect graphics.Rect) {
	cx.layout[ViewIDOf(path)] = LayoutBox{Rect: rect}
}

// SetLayoutOffset assigns the offset of the node at path relative to its
// parent. Containers call it for each child after laying the child out.
func (cx *Context) SetLayoutOffset(path *IdPath, offset graphics.Offset) {
	id := ViewIDOf(path)
	box := cx.layout[id]
	box.Offset = offset
	cx.layout[id] = box
}

// GetLayout returns the cached layout of the node at path. Nodes that have
// not been laid out report a zero box.
func (cx *Context) GetLayout(path *IdPath) LayoutBox {
	return cx.layout[ViewIDOf(path)]
}

// LayoutOf returns the cached layout for id.
func (cx *Context) LayoutOf(id ViewID) (LayoutBox, bool) {
	box, ok := cx.layout[id]
	return box, ok
}
