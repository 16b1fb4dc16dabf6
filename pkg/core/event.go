package core

import "github.com/go-drift/loom/pkg/graphics"

// Event is the base interface for input events delivered to the view tree.
// Use a type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// TouchBegin starts a touch sequence. Mouse presses use touch id 0.
type TouchBegin struct {
	ID       int
	Position graphics.Offset
}

// TouchMove reports movement of an active touch.
type TouchMove struct {
	ID       int
	Position graphics.Offset
	Delta    graphics.Offset
}

// TouchEnd ends a touch sequence and releases any gesture capture.
type TouchEnd struct {
	ID       int
	Position graphics.Offset
}

// KeyEvent is a key press. It is broadcast to the whole tree.
type KeyEvent struct {
	Key Key
}

// CommandEvent selects a menu command by name.
type CommandEvent struct {
	Name string
}

func (TouchBegin) isEvent()   {}
func (TouchMove) isEvent()    {}
func (TouchEnd) isEvent()     {}
func (KeyEvent) isEvent()     {}
func (CommandEvent) isEvent() {}

// LocalEvent converts event positions into a child's coordinate space, given
// the child's offset from its parent. Events without a position are returned
// unchanged.
func LocalEvent(event Event, offset graphics.Offset) Event {
	if offset == (graphics.Offset{}) {
		return event
	}
	switch e := event.(type) {
	case TouchBegin:
		e.Position = e.Position.Sub(offset)
		return e
	case TouchMove:
		e.Position = e.Position.Sub(offset)
		return e
	case TouchEnd:
		e.Position = e.Position.Sub(offset)
		return e
	}
	return event
}
