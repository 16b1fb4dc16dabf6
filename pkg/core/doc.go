// Package core provides the view protocol, identity and per-node storage of
// the composition core.
//
// Application code rebuilds a tree of immutable View values every frame.
// The Context gives each node a stable identity derived from its position in
// the tree and keeps everything that must outlive the frame keyed by that
// identity: layout boxes, typed state cells and gesture captures.
//
// # Identity
//
// Every traversal carries an IdPath. Composite views push the child's index
// before forwarding an operation and pop it afterwards; ViewIDOf hashes the
// path into a ViewID. Identity is positional, so reordering siblings of a
// collection reassigns their ids.
//
// # Frames
//
// One frame runs as ordered passes over the same tree:
//
//	needsRedraw, err := cx.Update(view, size) // layout, dirty, access, commands
//	if needsRedraw {
//	    _, err = cx.Render(ctx, renderer, view, false)
//	}
//	err = cx.GC(view)
//
// Events are delivered between frames with Process. Every pass checks that
// the IdPath is balanced when it returns and reports an addressing error
// otherwise. A panic inside a pass is reported and fails that pass only.
//
// # State
//
// GetState returns the lazily created cell of a given type owned by a view:
//
//	h := core.NewStateHandle(cx.ViewID(path), func() float64 { return 0.5 })
//	h.Set(cx, h.Get(cx)+0.1) // schedules the owner for repaint
//
// Cells live until their owner is absent from the tree at GC time.
package core
