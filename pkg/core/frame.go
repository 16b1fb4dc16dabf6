package core

import (
	"context"
	"image"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/semantics"
)

// Layout runs the layout pass, offering size to the root view. A size
// different from the previous pass marks the whole window dirty.
func (cx *Context) Layout(view View, size graphics.Size) error {
	return cx.traverse("core.Context.Layout", func() {
		if size != cx.windowSize {
			cx.windowSize = size
			cx.resized = true
		}
		view.Layout(&cx.path, LayoutArgs{Size: size, Cx: cx})
	})
}

// Dirty computes the dirty region from the current layout: nodes that are
// new, moved, resized or invalidated since the previous pass, and the last
// painted area of nodes no longer in the tree.
func (cx *Context) Dirty(view View) error {
	return cx.traverse("core.Context.Dirty", func() {
		cx.dirty.Clear()
		clear(cx.marked)
		view.Dirty(&cx.path, graphics.Identity(), cx)
		for id, rect := range cx.world {
			if _, ok := cx.marked[id]; !ok {
				cx.dirty.AddRect(rect)
				delete(cx.world, id)
			}
		}
		if cx.resized {
			cx.dirty.SetRect(graphics.RectFromSize(cx.windowSize))
			cx.resized = false
		}
		clear(cx.invalid)
	})
}

// MarkDirty adds the world bounds of the node at path to the dirty region
// when the node is new, has moved or resized, or was invalidated. Leaf views
// call it from Dirty.
func (cx *Context) MarkDirty(path *IdPath, xform graphics.Affine) {
	id := ViewIDOf(path)
	box, ok := cx.layout[id]
	if !ok {
		return
	}
	world := xform.ApplyRect(box.Rect)
	prev, seen := cx.world[id]
	_, invalid := cx.invalid[id]
	if !seen || prev != world || invalid {
		cx.dirty.AddRect(world)
		if seen && prev != world {
			cx.dirty.AddRect(prev)
		}
	}
	cx.world[id] = world
	cx.marked[id] = struct{}{}
}

// Render draws the view tree. When capture is true the frame is rendered
// off-screen and returned; otherwise it is presented and the image is nil.
// ctx bounds the wait for the renderer to finish the frame.
func (cx *Context) Render(ctx context.Context, r rendering.Renderer, view View, capture bool) (image.Image, error) {
	const op = "core.Context.Render"
	began := false
	drawErr := cx.traverse(op, func() {
		defer func() { cx.renderer = nil }()
		cx.renderer = r
		cx.paint.reset()
		r.Begin(capture)
		began = true
		view.Draw(&cx.path, cx)
	})
	if !began {
		return nil, drawErr
	}

	img, err := r.Finish(ctx)
	if drawErr != nil {
		return nil, drawErr
	}
	if err != nil {
		if errors.KindOf(err) == errors.KindUnknown {
			return nil, errors.New(op, errors.KindRender, err)
		}
		return nil, err
	}
	return img, nil
}

// HitTest returns the topmost view at pt in root coordinates.
func (cx *Context) HitTest(view View, pt graphics.Offset) (ViewID, bool) {
	var (
		id  ViewID
		hit bool
	)
	err := cx.traverse("core.Context.HitTest", func() {
		id, hit = view.HitTest(&cx.path, pt, cx)
	})
	if err != nil {
		return 0, false
	}
	return id, hit
}

// Process delivers one event to the view tree. A TouchBegin first records the
// topmost view under the touch as its target; a TouchEnd forgets it after
// delivery. Key and command events are broadcast. A panic in a handler is
// reported and the event dropped.
func (cx *Context) Process(view View, event Event) error {
	return cx.traverse("core.Context.Process", func() {
		if begin, ok := event.(TouchBegin); ok {
			delete(cx.claimed, begin.ID)
			if id, hit := view.HitTest(&cx.path, begin.Position, cx); hit {
				cx.touchTargets[begin.ID] = id
			} else {
				delete(cx.touchTargets, begin.ID)
			}
		}

		cx.deliver(view, event)

		if end, ok := event.(TouchEnd); ok {
			delete(cx.touchTargets, end.ID)
			delete(cx.claimed, end.ID)
		}
	})
}

func (cx *Context) deliver(view View, event Event) {
	defer errors.RecoverWithCallback("core.Context.Process", func(any) {
		cx.path.Reset()
	})
	view.Process(event, &cx.path, cx)
}

// Access runs the accessibility pass and returns the emitted nodes.
func (cx *Context) Access(view View) ([]semantics.Entry, error) {
	err := cx.traverse("core.Context.Access", func() {
		cx.accessNodes = cx.accessNodes[:0]
		cx.accessOrigin = graphics.Offset{}
		view.Access(&cx.path, cx, &cx.accessNodes)
	})
	return cx.accessNodes, err
}

// Commands collects the menu commands declared by the view tree.
func (cx *Context) Commands(view View) ([]CommandInfo, error) {
	err := cx.traverse("core.Context.Commands", func() {
		cx.commands = cx.commands[:0]
		view.Commands(&cx.path, cx, &cx.commands)
	})
	return cx.commands, err
}

// GC collects the live ids of the current tree and drops every layout box,
// state cell and touch target owned by an id that is no longer live. It runs
// after the frame is painted.
func (cx *Context) GC(view View) error {
	var live []ViewID
	err := cx.traverse("core.Context.GC", func() {
		view.GC(&cx.path, cx, &live)
	})
	if err != nil {
		return err
	}

	keep := make(map[ViewID]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}
	for id := range cx.layout {
		if _, ok := keep[id]; !ok {
			delete(cx.layout, id)
		}
	}
	for id := range cx.world {
		if _, ok := keep[id]; !ok {
			delete(cx.world, id)
		}
	}
	for key := range cx.states {
		if _, ok := keep[key.id]; !ok {
			delete(cx.states, key)
		}
	}
	for id := range cx.invalid {
		if _, ok := keep[id]; !ok {
			delete(cx.invalid, id)
		}
	}
	for touch, id := range cx.touchTargets {
		if _, ok := keep[id]; !ok {
			delete(cx.touchTargets, touch)
		}
	}
	return nil
}

// Update runs the passes that precede painting: layout, dirty computation,
// accessibility and command collection, in that order. It reports whether
// anything needs repainting. GC runs separately once the frame is painted.
func (cx *Context) Update(view View, size graphics.Size) (bool, error) {
	if err := cx.Layout(view, size); err != nil {
		return false, err
	}
	if err := cx.Dirty(view); err != nil {
		return false, err
	}
	if _, err := cx.Access(view); err != nil {
		return false, err
	}
	if _, err := cx.Commands(view); err != nil {
		return false, err
	}
	return !cx.dirty.IsEmpty(), nil
}
