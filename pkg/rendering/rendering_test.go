package rendering

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/go-drift/loom/pkg/graphics"
	"github.com/google/go-cmp/cmp"
)

var (
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueBlue  = color.RGBA{B: 255, A: 255}
	transparent = color.RGBA{}
)

func captureFrame(t *testing.T, w, h int, draw func(r Renderer)) *image.RGBA {
	t.Helper()
	r, err := NewRaster(w, h, 1)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer r.Close()
	r.Begin(true)
	draw(r)
	img, err := r.Finish(context.Background())
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("Finish returned %T, want *image.RGBA", img)
	}
	return rgba
}

func TestRasterFill(t *testing.T) {
	img := captureFrame(t, 10, 10, func(r Renderer) {
		r.Fill(graphics.RectShape(graphics.RectFromLTWH(2, 2, 4, 4), 0), graphics.SolidPaint(graphics.ColorRed), 0)
	})

	if got := img.RGBAAt(3, 3); got != opaqueRed {
		t.Errorf("inside pixel = %v, want %v", got, opaqueRed)
	}
	if got := img.RGBAAt(8, 8); got != transparent {
		t.Errorf("outside pixel = %v, want %v", got, transparent)
	}
}

func TestRasterTransform(t *testing.T) {
	img := captureFrame(t, 10, 10, func(r Renderer) {
		r.Transform(graphics.Translation(5, 5))
		r.Fill(graphics.RectShape(graphics.RectFromLTWH(0, 0, 2, 2), 0), graphics.SolidPaint(graphics.ColorRed), 0)
	})

	if got := img.RGBAAt(6, 6); got != opaqueRed {
		t.Errorf("translated pixel = %v, want %v", got, opaqueRed)
	}
	if got := img.RGBAAt(1, 1); got != transparent {
		t.Errorf("origin pixel = %v, want %v", got, transparent)
	}
}

func TestRasterZOrder(t *testing.T) {
	img := captureFrame(t, 10, 10, func(r Renderer) {
		full := graphics.RectShape(graphics.RectFromLTWH(0, 0, 10, 10), 0)
		r.SetZIndex(1)
		r.Fill(full, graphics.SolidPaint(graphics.ColorBlue), 0)
		r.SetZIndex(0)
		r.Fill(full, graphics.SolidPaint(graphics.ColorRed), 0)
	})

	if got := img.RGBAAt(5, 5); got != opaqueBlue {
		t.Errorf("pixel = %v, want higher z color %v", got, opaqueBlue)
	}
}

func TestRasterClip(t *testing.T) {
	img := captureFrame(t, 10, 10, func(r Renderer) {
		r.Clip(graphics.RectShape(graphics.RectFromLTWH(0, 0, 5, 10), 0))
		r.Fill(graphics.RectShape(graphics.RectFromLTWH(0, 0, 10, 10), 0), graphics.SolidPaint(graphics.ColorRed), 0)
	})

	if got := img.RGBAAt(2, 5); got != opaqueRed {
		t.Errorf("clipped-in pixel = %v, want %v", got, opaqueRed)
	}
	if got := img.RGBAAt(7, 5); got != transparent {
		t.Errorf("clipped-out pixel = %v, want %v", got, transparent)
	}
}

func TestRasterStroke(t *testing.T) {
	img := captureFrame(t, 10, 10, func(r Renderer) {
		r.Stroke(graphics.RectShape(graphics.RectFromLTWH(2, 2, 6, 6), 0), graphics.SolidPaint(graphics.ColorRed), 2)
	})

	if got := img.RGBAAt(2, 5); got != opaqueRed {
		t.Errorf("edge pixel = %v, want %v", got, opaqueRed)
	}
	if got := img.RGBAAt(5, 5); got != transparent {
		t.Errorf("interior pixel = %v, want %v", got, transparent)
	}
}

func TestRasterSkipsDegenerateGradient(t *testing.T) {
	img := captureFrame(t, 4, 4, func(r Renderer) {
		p := graphics.LinearGradientPaint(graphics.Offset{}, graphics.Offset{}, graphics.ColorRed, graphics.ColorBlue)
		r.Fill(graphics.RectShape(graphics.RectFromLTWH(0, 0, 4, 4), 0), p, 0)
	})

	if got := img.RGBAAt(1, 1); got != transparent {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestRasterPresentsWithoutCapture(t *testing.T) {
	r, err := NewRaster(4, 4, 1)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer r.Close()

	var presented *image.RGBA
	r.Present = func(img *image.RGBA) { presented = img }
	r.Begin(false)
	img, err := r.Finish(context.Background())
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if img != nil {
		t.Errorf("Finish returned %v, want nil for a presented frame", img)
	}
	if presented == nil || presented != r.Front() {
		t.Errorf("presented frame not recorded as front buffer")
	}
}

func TestRasterErrors(t *testing.T) {
	if _, err := NewRaster(0, 10, 1); err == nil {
		t.Errorf("NewRaster(0, 10) succeeded, want error")
	}

	r, err := NewRaster(4, 4, 1)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	r.Close()
	r.Close()
	r.Begin(true)
	if _, err := r.Finish(context.Background()); err == nil {
		t.Errorf("Finish after Close succeeded, want error")
	}
}

func TestRecorderOps(t *testing.T) {
	rec := NewRecorder(graphics.Size{Width: 10, Height: 10})
	shape := graphics.RectShape(graphics.RectFromLTWH(0, 0, 4, 4), 0)

	rec.Begin(false)
	rec.Transform(graphics.Translation(1, 2))
	rec.Fill(shape, graphics.SolidPaint(graphics.ColorRed), 0)
	rec.Stroke(shape, graphics.SolidPaint(graphics.ColorBlue), 1)
	if _, err := rec.Finish(context.Background()); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	var kinds []OpKind
	for _, op := range rec.Ops() {
		kinds = append(kinds, op.Kind)
	}
	want := []OpKind{OpBegin, OpTransform, OpFill, OpStroke, OpFinish}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if got := rec.Count(OpFill); got != 1 {
		t.Errorf("Count(OpFill) = %d, want 1", got)
	}
	if got := rec.Frames(); got != 1 {
		t.Errorf("Frames() = %d, want 1", got)
	}

	rec.Begin(false)
	if got := len(rec.Ops()); got != 1 {
		t.Errorf("ops after Begin = %d, want 1", got)
	}
}

func TestDisplayListReplay(t *testing.T) {
	src := NewRecorder(graphics.Size{Width: 10, Height: 10})
	src.Begin(false)
	src.SetZIndex(3)
	src.Clip(graphics.RectShape(graphics.RectFromLTWH(0, 0, 5, 5), 0))
	src.Fill(graphics.CircleShape(graphics.Offset{X: 2, Y: 2}, 2), graphics.SolidPaint(graphics.ColorGreen), 0)
	src.ClearClip()

	dst := NewRecorder(graphics.Size{Width: 10, Height: 10})
	dst.Begin(false)
	src.DisplayList().Replay(dst)

	if diff := cmp.Diff(src.Ops(), dst.Ops()); diff != "" {
		t.Errorf("replayed ops mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorderCapture(t *testing.T) {
	rec := NewRecorder(graphics.Size{Width: 8, Height: 6})
	rec.Begin(true)
	rec.Fill(graphics.RectShape(graphics.RectFromLTWH(0, 0, 8, 6), 0), graphics.SolidPaint(graphics.ColorRed), 0)
	img, err := rec.Finish(context.Background())
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 8, 6); got != want {
		t.Errorf("captured bounds = %v, want %v", got, want)
	}
	if got := img.(*image.RGBA).RGBAAt(4, 3); got != opaqueRed {
		t.Errorf("captured pixel = %v, want %v", got, opaqueRed)
	}
}

func TestBasicMeasurer(t *testing.T) {
	m := NewBasicMeasurer()
	style := TextStyle{FontSize: 13}

	tests := []struct {
		name      string
		text      string
		maxWidth  float64
		wantLines []string
		wantSize  graphics.Size
	}{
		{"single line", "hello", 0, []string{"hello"}, graphics.Size{Width: 35, Height: 13}},
		{"wraps words", "aa bb cc", 40, []string{"aa bb", "cc"}, graphics.Size{Width: 35, Height: 26}},
		{"explicit newline", "a\nbcd", 0, []string{"a", "bcd"}, graphics.Size{Width: 21, Height: 26}},
		{"empty", "", 0, []string{""}, graphics.Size{Width: 0, Height: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := m.LayoutText(tt.text, style, tt.maxWidth)
			var lines []string
			for _, l := range layout.Lines {
				lines = append(lines, l.Text)
			}
			if diff := cmp.Diff(tt.wantLines, lines); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if layout.Size != tt.wantSize {
				t.Errorf("Size = %v, want %v", layout.Size, tt.wantSize)
			}
		})
	}
}

func TestBasicMeasurerDefaultSize(t *testing.T) {
	layout := NewBasicMeasurer().LayoutText("x", TextStyle{}, 0)
	if layout.Style.FontSize != DefaultFontSize {
		t.Errorf("FontSize = %v, want %v", layout.Style.FontSize, DefaultFontSize)
	}
}

func TestRaster_ResizeClamps(t *testing.T) {
	r, err := NewRaster(4, 4, 1)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer r.Close()

	tests := []struct {
		name          string
		width, height int
		want          image.Rectangle
	}{
		{"grow", 8, 6, image.Rect(0, 0, 8, 6)},
		{"keep on zero", 0, -1, image.Rect(0, 0, 8, 6)},
		{"clamp", 1 << 30, maxRasterDimension + 1, image.Rect(0, 0, maxRasterDimension, maxRasterDimension)},
	}
	for _, tt := range tests {
		r.Resize(tt.width, tt.height, 1)
		if got := r.surface(); got != tt.want {
			t.Errorf("%s: surface = %v, want %v", tt.name, got, tt.want)
		}
	}
}
