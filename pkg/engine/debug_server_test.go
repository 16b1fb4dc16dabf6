package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/widgets"
)

func newDebugApp(t *testing.T) *Application {
	t.Helper()
	root := widgets.VStackOf(widgets.TextOf("first"), widgets.TextOf("second"))
	app, err := New(nil, &fakePlatform{}, rendering.NewRecorder(graphics.Size{}), root)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Close)
	ctx := context.Background()
	if err := app.Step(ctx); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := app.Render(ctx); err != nil {
			t.Fatal(err)
		}
	}
	return app
}

func handlerFor(app *Application) http.Handler {
	sampler := newRuntimeSampler(0)
	sampler.add(readRuntimeSample())
	return app.debugHandler(sampler)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDebugHandler_Semantics(t *testing.T) {
	app := newDebugApp(t)
	rec := get(t, handlerFor(app), "/semantics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var nodes []SemanticsNode
	if err := json.Unmarshal(rec.Body.Bytes(), &nodes); err != nil {
		t.Fatal(err)
	}
	names := map[string]string{}
	for _, n := range nodes {
		names[n.Name] = n.Role
	}
	for _, name := range []string{"first", "second"} {
		if names[name] != "label" {
			t.Errorf("node %q role = %q, want label", name, names[name])
		}
	}
}

func TestDebugHandler_Frames(t *testing.T) {
	app := newDebugApp(t)

	var all FrameTimeline
	if err := json.Unmarshal(get(t, handlerFor(app), "/frames").Body.Bytes(), &all); err != nil {
		t.Fatal(err)
	}
	if len(all.Samples) != 3 {
		t.Errorf("samples = %d, want 3", len(all.Samples))
	}

	var limited FrameTimeline
	if err := json.Unmarshal(get(t, handlerFor(app), "/frames?limit=1").Body.Bytes(), &limited); err != nil {
		t.Fatal(err)
	}
	if len(limited.Samples) != 1 {
		t.Errorf("limited samples = %d, want 1", len(limited.Samples))
	}

	var slow FrameTimeline
	if err := json.Unmarshal(get(t, handlerFor(app), "/frames?min_ms=60000").Body.Bytes(), &slow); err != nil {
		t.Fatal(err)
	}
	if len(slow.Samples) != 0 {
		t.Errorf("slow samples = %d, want 0", len(slow.Samples))
	}
}

func TestDebugHandler_Debug(t *testing.T) {
	app := newDebugApp(t)

	var info struct {
		Width       float64 `json:"width"`
		Title       string  `json:"title"`
		LayoutBoxes int     `json:"layoutBoxes"`
	}
	if err := json.Unmarshal(get(t, handlerFor(app), "/debug").Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if info.Width != 800 || info.Title != "loom" {
		t.Errorf("debug = %+v, want width 800 and title loom", info)
	}
	if info.LayoutBoxes != 3 {
		t.Errorf("layoutBoxes = %d, want 3", info.LayoutBoxes)
	}
}

func TestDebugHandler_Runtime(t *testing.T) {
	app := newDebugApp(t)

	var resp struct {
		Samples []RuntimeSample `json:"samples"`
	}
	if err := json.Unmarshal(get(t, handlerFor(app), "/runtime?window=60").Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Samples) != 1 {
		t.Fatalf("samples = %d, want 1", len(resp.Samples))
	}
	if resp.Samples[0].HeapAlloc == 0 || resp.Samples[0].Goroutines == 0 {
		t.Errorf("sample = %+v, want heap and goroutine counts", resp.Samples[0])
	}
}

func TestRuntimeSampler_Wraps(t *testing.T) {
	s := newRuntimeSampler(time.Hour)
	for i := range runtimeSampleMaxSamples + 5 {
		s.add(RuntimeSample{Timestamp: int64(i)})
	}
	got := s.snapshot()
	if len(got) != runtimeSampleMaxSamples {
		t.Fatalf("len = %d, want %d", len(got), runtimeSampleMaxSamples)
	}
	if got[0].Timestamp != 5 || got[len(got)-1].Timestamp != runtimeSampleMaxSamples+4 {
		t.Errorf("range = [%d, %d], want [5, %d]", got[0].Timestamp, got[len(got)-1].Timestamp, runtimeSampleMaxSamples+4)
	}
}

func TestDebugHandler_MethodNotAllowed(t *testing.T) {
	app := newDebugApp(t)
	for _, path := range []string{"/health", "/debug", "/frames", "/semantics", "/runtime"} {
		rec := httptest.NewRecorder()
		handlerFor(app).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s status = %d, want %d", path, rec.Code, http.StatusMethodNotAllowed)
		}
	}
}

func TestDebugServer_StartStop(t *testing.T) {
	app := newDebugApp(t)
	addr, err := app.StartDebugServer("127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start debug server: %v", err)
	}
	defer app.StopDebugServer()

	again, err := app.StartDebugServer("127.0.0.1:0")
	if err != nil || again != addr {
		t.Errorf("second start = %q, %v; want %q", again, err, addr)
	}

	url := fmt.Sprintf("http://%s/health", addr)
	var resp *http.Response
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err = http.Get(url)
		if err == nil || time.Now().After(deadline) {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("failed to reach health endpoint: %v", err)
	}
	defer resp.Body.Close()

	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", health["status"])
	}
}
