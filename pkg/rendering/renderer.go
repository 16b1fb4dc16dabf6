// Package rendering defines the renderer collaborator consumed by the draw
// pass and provides two implementations: a display-list Recorder and a CPU
// Raster backend.
package rendering

import (
	"context"
	"image"

	"github.com/go-drift/loom/pkg/graphics"
)

// Renderer turns paint primitives into pixels.
//
// All calls for one frame happen between Begin and Finish on the goroutine
// running the frame. Transform and clip state are absolute: the draw pass
// tracks nesting and sends the composed values.
type Renderer interface {
	// Begin starts a frame. When capture is true the frame is rendered into
	// an off-screen target that Finish returns.
	Begin(capture bool)

	// Transform sets the current local-to-device transform.
	Transform(t graphics.Affine)

	// SetZIndex sets the layering hint for subsequent draw calls.
	SetZIndex(z int32)

	// Clip restricts subsequent drawing to shape, given in the current
	// transform's coordinate space.
	Clip(shape graphics.Shape)

	// ClearClip removes the active clip.
	ClearClip()

	// Stroke outlines a shape.
	Stroke(shape graphics.Shape, paint graphics.Paint, width float64)

	// Fill fills a shape using the non-zero fill rule.
	Fill(shape graphics.Shape, paint graphics.Paint, blurRadius float64)

	// DrawText draws a laid-out text block. origin is the upper-left corner
	// of the layout, even for right-to-left scripts.
	DrawText(layout *TextLayout, origin graphics.Offset)

	// Finish presents the frame, or returns the captured raster if Begin
	// was called with capture. Finish blocks until the backend completes
	// the frame or ctx is done.
	Finish(ctx context.Context) (image.Image, error)
}
