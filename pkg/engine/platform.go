package engine

import (
	"context"

	"github.com/go-drift/loom/pkg/core"
)

// Platform is the windowing collaborator that feeds the application events
// and presents window state. Implementations wrap a native event loop.
type Platform interface {
	// Poll blocks until the next event is available or ctx is done.
	Poll(ctx context.Context) (PlatformEvent, error)
	// SetTitle updates the window title.
	SetTitle(title string)
	// RequestRedraw asks the platform to deliver a RedrawRequested event.
	RequestRedraw()
}

// PlatformEvent is an event reported by the Platform.
// Use a type switch to handle specific event types.
type PlatformEvent interface {
	isPlatformEvent()
}

// Resize reports a new window size in logical pixels and the device scale.
type Resize struct {
	Width  float64
	Height float64
	Scale  float64
}

// Input carries a view event, with positions in logical pixels.
type Input struct {
	Event core.Event
}

// KeyPressed reports a physical key press. The application maps it to a
// logical key using the current modifier state.
type KeyPressed struct {
	Key core.PhysicalKey
}

// ModifiersChanged reports the current keyboard modifier state.
type ModifiersChanged struct {
	Mods core.KeyboardModifiers
}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// RedrawRequested asks the application to draw a frame.
type RedrawRequested struct{}

func (Resize) isPlatformEvent()           {}
func (Input) isPlatformEvent()            {}
func (KeyPressed) isPlatformEvent()       {}
func (ModifiersChanged) isPlatformEvent() {}
func (CloseRequested) isPlatformEvent()   {}
func (RedrawRequested) isPlatformEvent()  {}
