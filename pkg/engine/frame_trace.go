package engine

import (
	"sync"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each frame phase (ms).
type FramePhaseTimings struct {
	DispatchMs float64 `json:"dispatchMs"`
	UpdateMs   float64 `json:"updateMs"`
	RenderMs   float64 `json:"renderMs"`
}

// FrameCounts captures per-frame workload indicators.
type FrameCounts struct {
	DirtyRects  int `json:"dirtyRects"`
	LayoutBoxes int `json:"layoutBoxes"`
	StateCells  int `json:"stateCells"`
	AccessNodes int `json:"accessNodes"`
}

// FrameSample is a single frame trace sample.
type FrameSample struct {
	Timestamp int64             `json:"ts"`
	FrameMs   float64           `json:"frameMs"`
	Phases    FramePhaseTimings `json:"phases"`
	Counts    FrameCounts       `json:"counts"`
}

// FrameTimeline is a chronological view of the trace.
type FrameTimeline struct {
	Samples       []FrameSample `json:"samples"`
	DroppedFrames int           `json:"droppedFrames"`
	ThresholdMs   float64       `json:"thresholdMs"`
}

// FrameTraceBuffer stores recent frame samples. It is safe for concurrent
// use so the debug server can read while frames run.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   ring[FrameSample]
	dropped   int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a buffer holding capacity samples. Frames
// slower than threshold count as dropped.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{samples: newRing[FrameSample](capacity), threshold: threshold}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples.items)
}

// Add records a frame sample.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples.add(sample)
	if frameDuration > b.threshold {
		b.dropped++
	}
}

// Snapshot returns the samples oldest first, with the dropped frame count.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FrameTimeline{
		Samples:       b.samples.ordered(),
		DroppedFrames: b.dropped,
		ThresholdMs:   durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
