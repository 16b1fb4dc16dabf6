package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-drift/loom/pkg/semantics"
)

// debugServer serves read-only inspection endpoints for a running
// application.
type debugServer struct {
	server   *http.Server
	listener net.Listener
	runtime  *runtimeSampler
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SemanticsNode is the JSON form of one accessibility node.
type SemanticsNode struct {
	ID       uint64       `json:"id"`
	Role     string       `json:"role"`
	Name     string       `json:"name,omitempty"`
	Value    string       `json:"value,omitempty"`
	Bounds   [4]SafeFloat `json:"bounds"`
	Children []uint64     `json:"children,omitempty"`
}

// StartDebugServer starts the HTTP inspection server on addr and returns
// the address it listens on (useful when addr asks for an ephemeral port).
func (a *Application) StartDebugServer(addr string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.debug != nil {
		return a.debug.listener.Addr().String(), nil
	}

	// Bind listener first to fail fast on port conflicts
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("debug server listen: %w", err)
	}

	sampler := newRuntimeSampler(a.cfg.RuntimeInterval)
	server := &http.Server{Handler: a.debugHandler(sampler)}
	a.debug = &debugServer{server: server, listener: listener, runtime: sampler}
	sampler.start()

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			fmt.Printf("debug server error: %v\n", err)
		}
	}()

	return listener.Addr().String(), nil
}

// StopDebugServer gracefully shuts down the debug server, if running.
func (a *Application) StopDebugServer() {
	a.mu.Lock()
	srv := a.debug
	a.debug = nil
	a.mu.Unlock()

	if srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	srv.server.Shutdown(ctx)
	srv.runtime.close()
}

func (a *Application) debugHandler(sampler *runtimeSampler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/debug", a.handleDebug)
	mux.HandleFunc("/frames", a.handleFrameTimeline)
	mux.HandleFunc("/semantics", a.handleSemantics)
	mux.HandleFunc("/runtime", func(w http.ResponseWriter, r *http.Request) {
		handleRuntime(w, r, sampler)
	})
	return mux
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleDebug returns the window and store sizes of the last update.
func (a *Application) handleDebug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := a.published()
	info := struct {
		Width       SafeFloat `json:"width"`
		Height      SafeFloat `json:"height"`
		Scale       SafeFloat `json:"scale"`
		Title       string    `json:"title"`
		StateCells  int       `json:"stateCells"`
		LayoutBoxes int       `json:"layoutBoxes"`
	}{
		Width:       SafeFloat(snap.Size.Width),
		Height:      SafeFloat(snap.Size.Height),
		Scale:       SafeFloat(snap.Scale),
		Title:       snap.Title,
		StateCells:  snap.StateCells,
		LayoutBoxes: snap.LayoutBoxes,
	}
	writeJSON(w, info)
}

// handleFrameTimeline returns recent frame timing samples as JSON.
func (a *Application) handleFrameTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := a.trace.Snapshot()
	applyFrameFilters(r, &resp)
	writeJSON(w, resp)
}

// handleSemantics returns the accessibility nodes of the last update.
func (a *Application) handleSemantics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries := a.published().Semantics
	nodes := make([]SemanticsNode, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, serializeSemantics(e))
	}
	writeJSON(w, nodes)
}

// handleRuntime returns recent runtime memory samples as JSON. The window
// query parameter keeps only samples from the last N seconds.
func handleRuntime(w http.ResponseWriter, r *http.Request, sampler *runtimeSampler) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	samples := sampler.snapshot()
	if seconds := parseFloatQuery(r, "window"); seconds > 0 {
		cutoff := time.Now().Add(-time.Duration(seconds * float64(time.Second))).UnixMilli()
		filtered := make([]RuntimeSample, 0, len(samples))
		for _, s := range samples {
			if s.Timestamp >= cutoff {
				filtered = append(filtered, s)
			}
		}
		samples = filtered
	}

	resp := struct {
		Samples []RuntimeSample `json:"samples"`
	}{
		Samples: samples,
	}
	writeJSON(w, resp)
}

func serializeSemantics(e semantics.Entry) SemanticsNode {
	b := e.Node.Bounds
	node := SemanticsNode{
		ID:     uint64(e.ID),
		Role:   e.Node.Role.String(),
		Name:   e.Node.Name,
		Value:  e.Node.Value,
		Bounds: [4]SafeFloat{SafeFloat(b.Left), SafeFloat(b.Top), SafeFloat(b.Right), SafeFloat(b.Bottom)},
	}
	for _, child := range e.Node.Children {
		node.Children = append(node.Children, uint64(child))
	}
	return node
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to buffer first so we can catch errors
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func applyFrameFilters(r *http.Request, resp *FrameTimeline) {
	limit := 0
	if value := r.URL.Query().Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var filters []func(FrameSample) bool

	if v := parseFloatQuery(r, "min_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.FrameMs >= v })
	}
	if v := parseFloatQuery(r, "dispatch_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.Phases.DispatchMs >= v })
	}
	if v := parseFloatQuery(r, "update_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.Phases.UpdateMs >= v })
	}
	if v := parseFloatQuery(r, "render_ms"); v > 0 {
		filters = append(filters, func(s FrameSample) bool { return s.Phases.RenderMs >= v })
	}

	if len(filters) > 0 {
		filtered := make([]FrameSample, 0, len(resp.Samples))
	outer:
		for _, sample := range resp.Samples {
			for _, f := range filters {
				if !f(sample) {
					continue outer
				}
			}
			filtered = append(filtered, sample)
		}
		resp.Samples = filtered
	}

	if limit > 0 && len(resp.Samples) > limit {
		resp.Samples = resp.Samples[len(resp.Samples)-limit:]
	}
}

func parseFloatQuery(r *http.Request, key string) float64 {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
