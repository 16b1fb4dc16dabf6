package rendering

import (
	"context"
	"image"
	"image/color"
	"math"
	"slices"
	"sync"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	// maxRasterDimension bounds the surface size the CPU backend accepts.
	maxRasterDimension = 16384

	circleSegments = 48
	cornerSegments = 8
)

// Raster is a CPU Renderer built on golang.org/x/image/vector.
//
// Draw calls are collected on the calling goroutine and rasterized by a
// backend worker when the frame finishes; Finish blocks on the worker's
// completion. Circular clips are approximated by their bounding box, blur
// radii are ignored, and text is drawn at the face's native size.
type Raster struct {
	width  int
	height int
	scale  float64

	// Present receives every non-captured frame. Optional.
	Present func(img *image.RGBA)

	transform graphics.Affine
	clip      image.Rectangle
	z         int32
	capture   bool
	ops       []rasterOp

	jobs      chan rasterJob
	closeOnce sync.Once
	mu        sync.Mutex
	closed    bool
	front     *image.RGBA
}

type rasterOpKind int

const (
	rasterFill rasterOpKind = iota
	rasterStroke
	rasterText
)

type rasterOp struct {
	kind   rasterOpKind
	z      int32
	clip   image.Rectangle
	outer  []graphics.Offset
	inner  []graphics.Offset
	paint  graphics.Paint
	layout *TextLayout
	origin graphics.Offset
}

type rasterJob struct {
	width  int
	height int
	ops    []rasterOp
	reply  chan *image.RGBA
}

// NewRaster creates a CPU backend for a width x height pixel surface. The
// scale maps logical coordinates to pixels; zero means 1.
func NewRaster(width, height int, scale float64) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("rendering.NewRaster", errors.KindInit, errors.ErrNoAdapter)
	}
	if width > maxRasterDimension || height > maxRasterDimension {
		return nil, errors.New("rendering.NewRaster", errors.KindInit, errors.ErrUnsupported)
	}
	if scale <= 0 {
		scale = 1
	}
	r := &Raster{
		width:     width,
		height:    height,
		scale:     scale,
		transform: graphics.Identity(),
		jobs:      make(chan rasterJob),
	}
	go r.loop()
	return r, nil
}

// Resize changes the surface size for subsequent frames. Non-positive
// values keep the current size; larger ones are clamped to the same bound
// NewRaster enforces.
func (r *Raster) Resize(width, height int, scale float64) {
	if width > 0 {
		r.width = min(width, maxRasterDimension)
	}
	if height > 0 {
		r.height = min(height, maxRasterDimension)
	}
	if scale > 0 {
		r.scale = scale
	}
}

// Close stops the backend worker. Finish fails after Close.
func (r *Raster) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		close(r.jobs)
	})
}

// Front returns the most recently presented frame.
func (r *Raster) Front() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.front
}

func (r *Raster) surface() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

func (r *Raster) Begin(capture bool) {
	r.capture = capture
	r.ops = r.ops[:0]
	r.transform = graphics.Identity()
	r.clip = r.surface()
	r.z = 0
}

func (r *Raster) Transform(t graphics.Affine) {
	r.transform = t
}

func (r *Raster) SetZIndex(z int32) {
	r.z = z
}

func (r *Raster) device() graphics.Affine {
	return r.transform.Then(graphics.Scaling(r.scale, r.scale))
}

func (r *Raster) Clip(shape graphics.Shape) {
	b := r.device().ApplyRect(shape.Bounds())
	rect := image.Rect(
		int(math.Floor(b.Left)), int(math.Floor(b.Top)),
		int(math.Ceil(b.Right)), int(math.Ceil(b.Bottom)),
	)
	r.clip = rect.Intersect(r.surface())
}

func (r *Raster) ClearClip() {
	r.clip = r.surface()
}

func (r *Raster) Stroke(shape graphics.Shape, paint graphics.Paint, width float64) {
	if paint.Validate() != nil || width <= 0 {
		return
	}
	half := width / 2
	outer, inner := shape, shape
	switch shape.Kind {
	case graphics.ShapeCircle:
		outer.Radius += half
		inner.Radius = math.Max(0, shape.Radius-half)
	default:
		outer.Rect = shape.Rect.Inset(-half)
		outer.Radius = shape.Radius + half
		inner.Rect = shape.Rect.Inset(half)
		inner.Radius = math.Max(0, shape.Radius-half)
	}
	m := r.device()
	innerPts := transformPoints(m, flatten(inner))
	slices.Reverse(innerPts)
	r.ops = append(r.ops, rasterOp{
		kind:  rasterStroke,
		z:     r.z,
		clip:  r.clip,
		outer: transformPoints(m, flatten(outer)),
		inner: innerPts,
		paint: r.devicePaint(paint),
	})
}

func (r *Raster) Fill(shape graphics.Shape, paint graphics.Paint, blurRadius float64) {
	if paint.Validate() != nil {
		return
	}
	r.ops = append(r.ops, rasterOp{
		kind:  rasterFill,
		z:     r.z,
		clip:  r.clip,
		outer: transformPoints(r.device(), flatten(shape)),
		paint: r.devicePaint(paint),
	})
}

func (r *Raster) DrawText(layout *TextLayout, origin graphics.Offset) {
	if layout == nil || layout.Face == nil {
		return
	}
	r.ops = append(r.ops, rasterOp{
		kind:   rasterText,
		z:      r.z,
		clip:   r.clip,
		layout: layout,
		origin: r.device().Apply(origin),
	})
}

// devicePaint maps gradient endpoints into device space.
func (r *Raster) devicePaint(p graphics.Paint) graphics.Paint {
	if p.Kind == graphics.PaintLinearGradient {
		m := r.device()
		p.Start = m.Apply(p.Start)
		p.End = m.Apply(p.End)
	}
	return p
}

// Finish hands the frame to the backend worker and waits for it.
func (r *Raster) Finish(ctx context.Context) (image.Image, error) {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return nil, errors.New("rendering.Raster.Finish", errors.KindRender, errors.ErrNoAdapter)
	}

	ops := make([]rasterOp, len(r.ops))
	copy(ops, r.ops)
	job := rasterJob{width: r.width, height: r.height, ops: ops, reply: make(chan *image.RGBA, 1)}

	select {
	case r.jobs <- job:
	case <-ctx.Done():
		return nil, errors.New("rendering.Raster.Finish", errors.KindRender, ctx.Err())
	}

	var img *image.RGBA
	select {
	case img = <-job.reply:
	case <-ctx.Done():
		return nil, errors.New("rendering.Raster.Finish", errors.KindRender, ctx.Err())
	}

	if r.capture {
		return img, nil
	}
	r.mu.Lock()
	r.front = img
	r.mu.Unlock()
	if r.Present != nil {
		r.Present(img)
	}
	return nil, nil
}

func (r *Raster) loop() {
	for job := range r.jobs {
		job.reply <- rasterize(job)
	}
}

func rasterize(job rasterJob) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, job.width, job.height))
	slices.SortStableFunc(job.ops, func(a, b rasterOp) int {
		switch {
		case a.z < b.z:
			return -1
		case a.z > b.z:
			return 1
		}
		return 0
	})
	for _, op := range job.ops {
		clip := op.clip.Intersect(dst.Bounds())
		if clip.Empty() {
			continue
		}
		switch op.kind {
		case rasterFill, rasterStroke:
			drawPolygons(dst, clip, op)
		case rasterText:
			drawText(dst, clip, op)
		}
	}
	return dst
}

func drawPolygons(dst *image.RGBA, clip image.Rectangle, op rasterOp) {
	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	dx, dy := float64(clip.Min.X), float64(clip.Min.Y)
	addPolygon(z, op.outer, dx, dy)
	if len(op.inner) > 0 {
		addPolygon(z, op.inner, dx, dy)
	}
	var src image.Image
	if op.paint.Kind == graphics.PaintLinearGradient {
		src = gradientImage{paint: op.paint}
	} else {
		src = image.NewUniform(op.paint.Color.NRGBA())
	}
	z.Draw(dst, clip, src, clip.Min)
}

func addPolygon(z *vector.Rasterizer, pts []graphics.Offset, dx, dy float64) {
	if len(pts) < 3 {
		return
	}
	z.MoveTo(float32(pts[0].X-dx), float32(pts[0].Y-dy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-dx), float32(p.Y-dy))
	}
	z.ClosePath()
}

func drawText(dst *image.RGBA, clip image.Rectangle, op rasterOp) {
	sub, ok := dst.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}
	d := &font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(op.layout.Style.Color.NRGBA()),
		Face: op.layout.Face,
	}
	ascent := d.Face.Metrics().Ascent
	lineHeight := d.Face.Metrics().Height
	y := fixed.I(int(math.Round(op.origin.Y))) + ascent
	for _, line := range op.layout.Lines {
		d.Dot = fixed.Point26_6{X: fixed.I(int(math.Round(op.origin.X))), Y: y}
		d.DrawString(line.Text)
		y += lineHeight
	}
}

// gradientImage evaluates a device-space linear gradient per pixel.
type gradientImage struct {
	paint graphics.Paint
}

func (g gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g gradientImage) Bounds() image.Rectangle {
	return image.Rect(-maxRasterDimension, -maxRasterDimension, maxRasterDimension, maxRasterDimension)
}

func (g gradientImage) At(x, y int) color.Color {
	return g.paint.ColorAt(graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}).NRGBA()
}

// flatten converts a shape into a clockwise polygon in local coordinates.
func flatten(s graphics.Shape) []graphics.Offset {
	if s.Kind == graphics.ShapeCircle {
		if s.Radius <= 0 {
			return nil
		}
		pts := make([]graphics.Offset, 0, circleSegments)
		for i := 0; i < circleSegments; i++ {
			a := 2 * math.Pi * float64(i) / circleSegments
			pts = append(pts, graphics.Offset{
				X: s.Center.X + s.Radius*math.Cos(a),
				Y: s.Center.Y + s.Radius*math.Sin(a),
			})
		}
		return pts
	}

	r := s.Rect
	if r.IsEmpty() {
		return nil
	}
	radius := math.Min(s.Radius, math.Min(r.Width(), r.Height())/2)
	if radius <= 0 {
		return []graphics.Offset{
			{X: r.Left, Y: r.Top},
			{X: r.Right, Y: r.Top},
			{X: r.Right, Y: r.Bottom},
			{X: r.Left, Y: r.Bottom},
		}
	}
	corners := []struct {
		center graphics.Offset
		start  float64
	}{
		{graphics.Offset{X: r.Right - radius, Y: r.Top + radius}, -math.Pi / 2},
		{graphics.Offset{X: r.Right - radius, Y: r.Bottom - radius}, 0},
		{graphics.Offset{X: r.Left + radius, Y: r.Bottom - radius}, math.Pi / 2},
		{graphics.Offset{X: r.Left + radius, Y: r.Top + radius}, math.Pi},
	}
	pts := make([]graphics.Offset, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + (math.Pi/2)*float64(i)/cornerSegments
			pts = append(pts, graphics.Offset{
				X: c.center.X + radius*math.Cos(a),
				Y: c.center.Y + radius*math.Sin(a),
			})
		}
	}
	return pts
}

func transformPoints(m graphics.Affine, pts []graphics.Offset) []graphics.Offset {
	for i, p := range pts {
		pts[i] = m.Apply(p)
	}
	return pts
}
