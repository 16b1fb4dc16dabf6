// Package engine runs a view tree as an application: it pumps platform
// events into the view tree, runs the per-frame passes and hands frames to
// a renderer.
package engine

import (
	"context"
	stderrors "errors"
	"image"
	"log"
	"math"
	"sync"
	"time"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/graphics"
	"github.com/go-drift/loom/pkg/rendering"
	"github.com/go-drift/loom/pkg/semantics"
)

var (
	errNoPlatform = stderrors.New("no platform")
	errNoRoot     = stderrors.New("no root view")
	errClosed     = stderrors.New("application closed")
)

// resizer is implemented by renderers whose surface follows the window.
type resizer interface {
	Resize(width, height int, scale float64)
}

// closer is implemented by renderers that own a worker or device.
type closer interface {
	Close()
}

// Application drives a root view against a Platform and a Renderer.
//
// Application is NOT thread-safe: Run, Step, Dispatch and Capture must be
// called from one goroutine. Only the debug server reads from others, and it
// sees published snapshots.
type Application struct {
	cfg      *Resolved
	platform Platform
	renderer rendering.Renderer
	root     core.View
	cx       *core.Context

	size    graphics.Size
	scale   float64
	title   string
	pending bool
	closing bool
	closed  bool

	trace *FrameTraceBuffer
	frame FrameSample

	mu       sync.Mutex
	snapshot appSnapshot
	debug    *debugServer
}

// appSnapshot is the state published to the debug server after each update.
type appSnapshot struct {
	Size        graphics.Size     `json:"size"`
	Scale       float64           `json:"scale"`
	Title       string            `json:"title"`
	StateCells  int               `json:"stateCells"`
	LayoutBoxes int               `json:"layoutBoxes"`
	Semantics   []semantics.Entry `json:"-"`
}

// New creates an application. The renderer, platform and root view are
// required; a nil cfg uses DefaultConfig.
func New(cfg *Resolved, platform Platform, renderer rendering.Renderer, root core.View) (*Application, error) {
	const op = "engine.New"
	if renderer == nil {
		return nil, errors.New(op, errors.KindInit, errors.ErrNoAdapter)
	}
	if platform == nil {
		return nil, errors.New(op, errors.KindInit, errNoPlatform)
	}
	if root == nil {
		return nil, errors.New(op, errors.KindInit, errNoRoot)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	cx := core.NewContext()
	cx.SetWindowTitle(cfg.Title)
	a := &Application{
		cfg:      cfg,
		platform: platform,
		renderer: renderer,
		root:     root,
		cx:       cx,
		size:     cfg.Size,
		scale:    cfg.Scale,
		trace:    NewFrameTraceBuffer(cfg.TraceSamples, 0),
	}
	a.resizeRenderer()
	return a, nil
}

// Context returns the context holding the application's layout and state.
func (a *Application) Context() *core.Context {
	return a.cx
}

// Size returns the current window size in logical pixels.
func (a *Application) Size() graphics.Size {
	return a.size
}

// Frames returns the recent frame trace.
func (a *Application) Frames() FrameTimeline {
	return a.trace.Snapshot()
}

// Run pumps platform events until the window is closed or ctx is done. An
// addressing error in the view tree stops the loop and is returned; other
// per-frame errors are reported and the loop continues.
func (a *Application) Run(ctx context.Context) error {
	const op = "engine.Application.Run"
	if a.closed {
		return errors.New(op, errors.KindInit, errClosed)
	}
	defer a.Close()

	if a.cfg.Verbose {
		defer errors.SetHandler(errors.SetHandler(&errors.LogHandler{Verbose: true}))
	}
	if a.cfg.DebugAddr != "" {
		addr, err := a.StartDebugServer(a.cfg.DebugAddr)
		if err != nil {
			log.Printf("loom: %v", err)
		} else {
			log.Printf("loom: debug server listening on %s", addr)
		}
	}
	log.Printf("loom: starting %q at %gx%g (scale %g)", a.cx.WindowTitle(), a.size.Width, a.size.Height, a.scale)

	if _, err := a.Update(); err != nil && fatal(err) {
		return err
	}
	for !a.closing {
		event, err := a.platform.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("loom: stopping: %v", ctx.Err())
				return nil
			}
			return errors.New(op, errors.KindPlatform, err)
		}
		if err := a.Apply(ctx, event); err != nil && fatal(err) {
			return err
		}
	}
	log.Printf("loom: window closed")
	return nil
}

// Apply handles one platform event.
func (a *Application) Apply(ctx context.Context, event PlatformEvent) error {
	switch e := event.(type) {
	case Resize:
		a.resize(e)
		_, err := a.Update()
		return err
	case Input:
		return a.Dispatch(e.Event)
	case KeyPressed:
		key, ok := core.MapKey(e.Key, a.cx.Modifiers())
		if !ok {
			return nil
		}
		return a.Dispatch(core.KeyEvent{Key: key})
	case ModifiersChanged:
		a.cx.SetModifiers(e.Mods)
	case CloseRequested:
		a.closing = true
	case RedrawRequested:
		return a.Render(ctx)
	}
	return nil
}

// Dispatch delivers a view event to the tree and runs an update so the
// effects are visible to the next frame.
func (a *Application) Dispatch(event core.Event) error {
	start := time.Now()
	err := a.cx.Process(a.root, event)
	a.frame.Phases.DispatchMs += durationToMillis(time.Since(start))
	if err != nil {
		return err
	}
	_, err = a.Update()
	return err
}

// Update runs layout, dirty computation, accessibility and commands. When
// anything changed it asks the platform for a redraw and leaves GC to the
// render; otherwise nothing will be painted and GC runs right away.
func (a *Application) Update() (bool, error) {
	start := time.Now()
	dirty, err := a.cx.Update(a.root, a.size)
	if err == nil && !dirty && !a.pending {
		err = a.cx.GC(a.root)
	}
	a.frame.Phases.UpdateMs += durationToMillis(time.Since(start))
	if err != nil {
		return false, err
	}
	a.syncTitle()
	a.publish()
	if dirty && !a.pending {
		a.pending = true
		a.platform.RequestRedraw()
	}
	return dirty, nil
}

// Render draws a frame to the window, collects nodes that left the tree and
// records the frame in the frame trace.
func (a *Application) Render(ctx context.Context) error {
	start := time.Now()
	_, err := a.draw(ctx, false)
	a.pending = false
	a.frame.Phases.RenderMs += durationToMillis(time.Since(start))
	a.recordFrame()
	return err
}

// draw paints the tree and then runs GC, so every frame goes layout, paint,
// GC. The wait for the renderer is bounded by the capture timeout.
func (a *Application) draw(ctx context.Context, capture bool) (image.Image, error) {
	rctx, cancel := context.WithTimeout(ctx, a.cfg.CaptureTimeout)
	defer cancel()
	img, err := a.cx.Render(rctx, a.renderer, a.root, capture)
	if err != nil {
		reportRender(err)
		return nil, err
	}
	if err := a.cx.GC(a.root); err != nil {
		return nil, err
	}
	a.publish()
	return img, nil
}

// Step runs one frame without a platform loop: an update, then a render if
// anything needs drawing.
func (a *Application) Step(ctx context.Context) error {
	if _, err := a.Update(); err != nil {
		return err
	}
	if !a.pending {
		return nil
	}
	return a.Render(ctx)
}

// Capture renders the current tree off-screen and returns the image. The
// wait is bounded by the configured capture timeout.
func (a *Application) Capture(ctx context.Context) (image.Image, error) {
	if _, err := a.Update(); err != nil {
		return nil, err
	}
	return a.draw(ctx, true)
}

// Close stops the debug server and releases the renderer. It is safe to
// call more than once.
func (a *Application) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.StopDebugServer()
	if c, ok := a.renderer.(closer); ok {
		c.Close()
	}
}

func (a *Application) resize(e Resize) {
	if e.Width > 0 && e.Height > 0 {
		a.size = graphics.Size{Width: e.Width, Height: e.Height}
	}
	if e.Scale > 0 {
		a.scale = e.Scale
	}
	a.resizeRenderer()
}

func (a *Application) resizeRenderer() {
	r, ok := a.renderer.(resizer)
	if !ok {
		return
	}
	w := int(math.Ceil(a.size.Width * a.scale))
	h := int(math.Ceil(a.size.Height * a.scale))
	r.Resize(w, h, a.scale)
}

func (a *Application) syncTitle() {
	title := a.cx.WindowTitle()
	if title == a.title {
		return
	}
	a.title = title
	a.platform.SetTitle(title)
}

func (a *Application) publish() {
	nodes := a.cx.AccessNodes()
	entries := make([]semantics.Entry, len(nodes))
	copy(entries, nodes)

	a.mu.Lock()
	a.snapshot = appSnapshot{
		Size:        a.size,
		Scale:       a.scale,
		Title:       a.title,
		StateCells:  a.cx.StateCount(),
		LayoutBoxes: a.cx.LayoutCount(),
		Semantics:   entries,
	}
	a.mu.Unlock()
}

func (a *Application) published() appSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot
}

func (a *Application) recordFrame() {
	sample := a.frame
	sample.Timestamp = time.Now().UnixMilli()
	sample.FrameMs = sample.Phases.DispatchMs + sample.Phases.UpdateMs + sample.Phases.RenderMs
	sample.Counts = FrameCounts{
		DirtyRects:  len(a.cx.DirtyRegion().Rects()),
		LayoutBoxes: a.cx.LayoutCount(),
		StateCells:  a.cx.StateCount(),
		AccessNodes: len(a.cx.AccessNodes()),
	}
	a.trace.Add(sample, time.Duration(sample.FrameMs*float64(time.Millisecond)))
	a.frame = FrameSample{}
}

// fatal reports whether err must stop the run loop.
func fatal(err error) bool {
	switch errors.KindOf(err) {
	case errors.KindAddressing, errors.KindInit, errors.KindPlatform:
		return true
	}
	return false
}

// reportRender reports backend failures; the context already reports
// addressing and re-entrancy errors.
func reportRender(err error) {
	var le *errors.LoomError
	if stderrors.As(err, &le) && le.Kind == errors.KindRender {
		errors.Report(le)
	}
}
