package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
)

// DisplayOp represents a serialized renderer call.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializeOps converts recorded renderer calls to DisplayOps. Begin and
// Finish are omitted.
func serializeOps(ops []rendering.Op) []DisplayOp {
	out := make([]DisplayOp, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case rendering.OpTransform:
			out = append(out, DisplayOp{Op: op.Kind.String(), Params: serializeAffine(op.Transform)})
		case rendering.OpZIndex:
			out = append(out, DisplayOp{Op: op.Kind.String(), Params: sortedMap("z", op.Z)})
		case rendering.OpClip:
			out = append(out, DisplayOp{Op: op.Kind.String(), Params: serializeShape(op.Shape)})
		case rendering.OpClearClip:
			out = append(out, DisplayOp{Op: op.Kind.String()})
		case rendering.OpFill, rendering.OpStroke:
			params := serializeShape(op.Shape)
			params["paint"] = serializePaint(op.Paint)
			if op.Width != 0 {
				params["width"] = round2(op.Width)
			}
			out = append(out, DisplayOp{Op: op.Kind.String(), Params: params})
		case rendering.OpText:
			params := sortedMap("x", round2(op.Origin.X), "y", round2(op.Origin.Y))
			if op.Text != nil {
				params["text"] = op.Text.Text
				params["color"] = serializeColor(op.Text.Style.Color)
			}
			out = append(out, DisplayOp{Op: op.Kind.String(), Params: params})
		}
	}
	return out
}

// --- Serialization helpers ---

func serializeAffine(t graphics.Affine) map[string]any {
	return sortedMap(
		"a", round2(t.A), "b", round2(t.B),
		"c", round2(t.C), "d", round2(t.D),
		"e", round2(t.E), "f", round2(t.F),
	)
}

func serializeShape(s graphics.Shape) map[string]any {
	switch s.Kind {
	case graphics.ShapeCircle:
		return sortedMap(
			"shape", s.Kind.String(),
			"center", sortedMap("x", round2(s.Center.X), "y", round2(s.Center.Y)),
			"radius", round2(s.Radius),
		)
	default:
		params := sortedMap("shape", s.Kind.String(), "rect", serializeRect(s.Rect))
		if s.Radius != 0 {
			params["radius"] = round2(s.Radius)
		}
		return params
	}
}

func serializePaint(p graphics.Paint) map[string]any {
	if p.Kind == graphics.PaintLinearGradient {
		return sortedMap(
			"kind", p.Kind.String(),
			"start", sortedMap("x", round2(p.Start.X), "y", round2(p.Start.Y)),
			"end", sortedMap("x", round2(p.End.X), "y", round2(p.End.Y)),
			"inner", serializeColor(p.InnerColor),
			"outer", serializeColor(p.OuterColor),
		)
	}
	return sortedMap("kind", p.Kind.String(), "color", serializeColor(p.Color))
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. The snapshot
// encoder writes map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
