// Package region provides a conservative dirty-area accumulator.
//
// A Region is an unmerged list of rectangles. Overlapping rectangles are kept
// as-is: queries answer "does any stored rect satisfy X", so the region never
// under-reports the area it covers.
package region

import "github.com/go-drift/loom/pkg/graphics"

// Region is a set of rectangles describing an area that must be repainted.
// The zero value is the empty region.
type Region struct {
	rects []graphics.Rect
}

// FromRect returns a region covering a single rectangle.
func FromRect(rect graphics.Rect) Region {
	var r Region
	r.AddRect(rect)
	return r
}

// Rects returns the rectangles making up the region.
// The slice is owned by the region and must not be modified.
func (r *Region) Rects() []graphics.Rect {
	return r.rects
}

// AddRect adds a rectangle to the region. Empty rectangles are ignored.
func (r *Region) AddRect(rect graphics.Rect) {
	if rect.IsEmpty() {
		return
	}
	r.rects = append(r.rects, rect)
}

// SetRect replaces the region with a single rectangle.
func (r *Region) SetRect(rect graphics.Rect) {
	r.Clear()
	r.AddRect(rect)
}

// Clear empties the region, keeping its backing storage for reuse.
func (r *Region) Clear() {
	r.rects = r.rects[:0]
}

// BoundingBox returns the smallest rectangle containing the region, or the
// zero rect if the region is empty.
func (r *Region) BoundingBox() graphics.Rect {
	if len(r.rects) == 0 {
		return graphics.Rect{}
	}
	box := r.rects[0]
	for _, rect := range r.rects[1:] {
		box = box.Union(rect)
	}
	return box
}

// Intersects reports whether any rectangle in the region overlaps rect.
func (r *Region) Intersects(rect graphics.Rect) bool {
	for _, other := range r.rects {
		if rect.Overlaps(other) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the region covers no area.
func (r *Region) IsEmpty() bool {
	// Only non-empty rects are ever stored.
	return len(r.rects) == 0
}

// UnionWith adds every rectangle of other to r.
func (r *Region) UnionWith(other *Region) {
	r.rects = append(r.rects, other.rects...)
}
