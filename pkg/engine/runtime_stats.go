package engine

import (
	"runtime"
	"sync"
	"time"
)

const (
	runtimeSampleIntervalDefault = 5 * time.Second
	runtimeSampleMinInterval     = 100 * time.Millisecond
	runtimeSampleMaxSamples      = 120
)

// RuntimeSample captures a snapshot of runtime memory and GC stats.
type RuntimeSample struct {
	Timestamp    int64  `json:"ts"`
	HeapAlloc    uint64 `json:"heapAlloc"`
	HeapInuse    uint64 `json:"heapInuse"`
	NumGC        uint32 `json:"numGC"`
	PauseTotalNs uint64 `json:"pauseTotalNs"`
	LastPauseNs  uint64 `json:"lastPauseNs"`
	Goroutines   int    `json:"goroutines"`
}

// runtimeSampler keeps the most recent runtime samples while the debug
// server runs.
type runtimeSampler struct {
	mu       sync.RWMutex
	samples  ring[RuntimeSample]
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func newRuntimeSampler(interval time.Duration) *runtimeSampler {
	if interval <= 0 {
		interval = runtimeSampleIntervalDefault
	}
	if interval < runtimeSampleMinInterval {
		interval = runtimeSampleMinInterval
	}
	return &runtimeSampler{
		samples:  newRing[RuntimeSample](runtimeSampleMaxSamples),
		interval: interval,
	}
}

func (s *runtimeSampler) add(sample RuntimeSample) {
	s.mu.Lock()
	s.samples.add(sample)
	s.mu.Unlock()
}

func (s *runtimeSampler) snapshot() []RuntimeSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.samples.ordered()
}

// start takes one sample immediately, then one per interval until close.
func (s *runtimeSampler) start() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.add(readRuntimeSample())

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.add(readRuntimeSample())
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *runtimeSampler) close() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
}

func readRuntimeSample() RuntimeSample {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	lastPause := uint64(0)
	if stats.NumGC > 0 {
		lastPause = stats.PauseNs[(stats.NumGC+255)%256]
	}

	return RuntimeSample{
		Timestamp:    time.Now().UnixMilli(),
		HeapAlloc:    stats.HeapAlloc,
		HeapInuse:    stats.HeapInuse,
		NumGC:        stats.NumGC,
		PauseTotalNs: stats.PauseTotalNs,
		LastPauseNs:  lastPause,
		Goroutines:   runtime.NumGoroutine(),
	}
}
