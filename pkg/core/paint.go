package core

import (
	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
)

// paintTracker maintains the transform, clip and z-order state of the draw
// pass. Clips are kept in world coordinates and intersected as they nest.
type paintTracker struct {
	transform graphics.Affine
	clip      graphics.Rect
	hasClip   bool
	saveStack []paintSaveState
	z         int32
}

type paintSaveState struct {
	transform graphics.Affine
	clip      graphics.Rect
	hasClip   bool
}

func newPaintTracker() paintTracker {
	return paintTracker{transform: graphics.Identity()}
}

func (t *paintTracker) reset() {
	t.transform = graphics.Identity()
	t.clip = graphics.Rect{}
	t.hasClip = false
	t.saveStack = t.saveStack[:0]
	t.z = 0
}

func (t *paintTracker) save() {
	t.saveStack = append(t.saveStack, paintSaveState{
		transform: t.transform,
		clip:      t.clip,
		hasClip:   t.hasClip,
	})
}

// restore pops the last saved state and reports whether the transform and
// the clip changed.
func (t *paintTracker) restore() (transformChanged, clipChanged bool) {
	if len(t.saveStack) == 0 {
		return false, false
	}
	state := t.saveStack[len(t.saveStack)-1]
	t.saveStack = t.saveStack[:len(t.saveStack)-1]
	transformChanged = state.transform != t.transform
	clipChanged = state.hasClip != t.hasClip || state.clip != t.clip
	t.transform = state.transform
	t.clip = state.clip
	t.hasClip = state.hasClip
	return transformChanged, clipChanged
}

func (t *paintTracker) translate(dx, dy float64) {
	t.transform = t.transform.PreTranslate(dx, dy)
}

func (t *paintTracker) clipRect(rect graphics.Rect) {
	global := t.transform.ApplyRect(rect)
	if t.hasClip {
		global = t.clip.Intersect(global)
	}
	t.clip = global
	t.hasClip = true
}

// Save pushes the current transform and clip.
func (cx *Context) Save() {
	cx.paint.save()
}

// Restore pops the state pushed by the matching Save.
func (cx *Context) Restore() {
	transformChanged, clipChanged := cx.paint.restore()
	if cx.renderer == nil {
		return
	}
	if clipChanged {
		cx.applyClip()
	}
	if transformChanged {
		cx.renderer.Transform(cx.paint.transform)
	}
}

// Translate moves the origin of subsequent drawing by offset.
func (cx *Context) Translate(offset graphics.Offset) {
	if offset == (graphics.Offset{}) {
		return
	}
	cx.paint.translate(offset.X, offset.Y)
	if cx.renderer != nil {
		cx.renderer.Transform(cx.paint.transform)
	}
}

// Transform returns the current local-to-world transform.
func (cx *Context) Transform() graphics.Affine {
	return cx.paint.transform
}

// ClipRect restricts subsequent drawing to rect, given in local coordinates.
// Nested clips intersect.
func (cx *Context) ClipRect(rect graphics.Rect) {
	cx.paint.clipRect(rect)
	if cx.renderer != nil {
		cx.applyClip()
	}
}

// Clip returns the active clip in world coordinates.
func (cx *Context) Clip() (graphics.Rect, bool) {
	return cx.paint.clip, cx.paint.hasClip
}

// NextZ advances the z-order counter and passes it to the renderer. The
// counter only increases within a frame.
func (cx *Context) NextZ() int32 {
	cx.paint.z++
	if cx.renderer != nil {
		cx.renderer.SetZIndex(cx.paint.z)
	}
	return cx.paint.z
}

// applyClip sends the world-space clip with an identity transform, then
// restores the current transform.
func (cx *Context) applyClip() {
	if !cx.paint.hasClip {
		cx.renderer.ClearClip()
		return
	}
	cx.renderer.Transform(graphics.Identity())
	cx.renderer.Clip(graphics.RectShape(cx.paint.clip, 0))
	cx.renderer.Transform(cx.paint.transform)
}

// Fill fills shape, given in local coordinates. An unresolvable paint skips
// the call and reports a KindPaint error.
func (cx *Context) Fill(shape graphics.Shape, paint graphics.Paint, blurRadius float64) {
	if cx.renderer == nil || !cx.checkPaint("core.Context.Fill", paint) {
		return
	}
	cx.renderer.Fill(shape, paint, blurRadius)
}

// Stroke outlines shape, given in local coordinates.
func (cx *Context) Stroke(shape graphics.Shape, paint graphics.Paint, width float64) {
	if cx.renderer == nil || !cx.checkPaint("core.Context.Stroke", paint) {
		return
	}
	cx.renderer.Stroke(shape, paint, width)
}

// DrawText draws a text layout with its upper-left corner at origin.
func (cx *Context) DrawText(layout *rendering.TextLayout, origin graphics.Offset) {
	if cx.renderer == nil || layout == nil {
		return
	}
	cx.renderer.DrawText(layout, origin)
}

func (cx *Context) checkPaint(op string, paint graphics.Paint) bool {
	if err := paint.Validate(); err != nil {
		errors.Report(errors.New(op, errors.KindPaint, err))
		return false
	}
	return true
}
