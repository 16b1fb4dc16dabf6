package rendering

import (
	"context"
	"fmt"
	"image"

	"github.com/go-drift/loom/pkg/graphics"
)

// OpKind identifies a recorded renderer call.
type OpKind int

const (
	OpBegin OpKind = iota
	OpTransform
	OpZIndex
	OpClip
	OpClearClip
	OpStroke
	OpFill
	OpText
	OpFinish
)

var opKindNames = []string{
	"begin", "transform", "z_index", "clip", "clear_clip", "stroke", "fill", "text", "finish",
}

// String returns a human-readable representation of the op kind.
func (k OpKind) String() string {
	if int(k) >= 0 && int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one recorded renderer call. Only the fields relevant to Kind are set.
type Op struct {
	Kind      OpKind
	Capture   bool
	Transform graphics.Affine
	Z         int32
	Shape     graphics.Shape
	Paint     graphics.Paint
	Width     float64 // stroke width or blur radius
	Text      *TextLayout
	Origin    graphics.Offset
}

// DisplayList is an immutable list of renderer calls.
// It can be replayed onto any Renderer implementation.
type DisplayList struct {
	ops []Op
}

// Ops returns the recorded operations.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Replay issues the recorded calls, excluding Begin and Finish, onto r.
func (d *DisplayList) Replay(r Renderer) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpTransform:
			r.Transform(op.Transform)
		case OpZIndex:
			r.SetZIndex(op.Z)
		case OpClip:
			r.Clip(op.Shape)
		case OpClearClip:
			r.ClearClip()
		case OpStroke:
			r.Stroke(op.Shape, op.Paint, op.Width)
		case OpFill:
			r.Fill(op.Shape, op.Paint, op.Width)
		case OpText:
			r.DrawText(op.Text, op.Origin)
		}
	}
}

// Recorder is a Renderer that records every call. It is the renderer used
// by tests and by hosts that replay frames onto another backend.
type Recorder struct {
	// Size is the surface size used when a captured frame is rasterized.
	Size graphics.Size

	ops     []Op
	frames  int
	capture bool
}

// NewRecorder creates a recorder for a surface of the given size.
func NewRecorder(size graphics.Size) *Recorder {
	return &Recorder{Size: size}
}

func (r *Recorder) append(op Op) {
	r.ops = append(r.ops, op)
}

func (r *Recorder) Begin(capture bool) {
	r.ops = r.ops[:0]
	r.capture = capture
	r.append(Op{Kind: OpBegin, Capture: capture})
}

func (r *Recorder) Transform(t graphics.Affine) {
	r.append(Op{Kind: OpTransform, Transform: t})
}

func (r *Recorder) SetZIndex(z int32) {
	r.append(Op{Kind: OpZIndex, Z: z})
}

func (r *Recorder) Clip(shape graphics.Shape) {
	r.append(Op{Kind: OpClip, Shape: shape})
}

func (r *Recorder) ClearClip() {
	r.append(Op{Kind: OpClearClip})
}

func (r *Recorder) Stroke(shape graphics.Shape, paint graphics.Paint, width float64) {
	r.append(Op{Kind: OpStroke, Shape: shape, Paint: paint, Width: width})
}

func (r *Recorder) Fill(shape graphics.Shape, paint graphics.Paint, blurRadius float64) {
	r.append(Op{Kind: OpFill, Shape: shape, Paint: paint, Width: blurRadius})
}

func (r *Recorder) DrawText(layout *TextLayout, origin graphics.Offset) {
	r.append(Op{Kind: OpText, Text: layout, Origin: origin})
}

// Finish ends the frame. A captured frame is rasterized by replaying the
// recording onto a Raster of the recorder's Size.
func (r *Recorder) Finish(ctx context.Context) (image.Image, error) {
	r.append(Op{Kind: OpFinish})
	r.frames++
	if !r.capture {
		return nil, nil
	}
	raster, err := NewRaster(int(r.Size.Width), int(r.Size.Height), 1)
	if err != nil {
		return nil, err
	}
	defer raster.Close()
	raster.Begin(true)
	r.DisplayList().Replay(raster)
	return raster.Finish(ctx)
}

// DisplayList returns a copy of the calls recorded for the current frame.
func (r *Recorder) DisplayList() *DisplayList {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops}
}

// Ops returns the calls recorded for the current frame.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Frames returns the number of frames finished so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Count returns how many recorded calls of the given kind the current frame
// contains.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
