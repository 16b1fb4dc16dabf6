package testing

import (
	"fmt"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// nextTouchID is incremented for each simulated touch to avoid collisions.
var nextTouchID int

func allocTouchID() int {
	nextTouchID++
	return nextTouchID
}

// Tap simulates a tap at the center of the accessibility node named name.
func (t *ViewTester) Tap(name string) error {
	entry, ok := t.FindByName(name)
	if !ok {
		return fmt.Errorf("Tap: no node named %q", name)
	}
	return t.TapAt(entry.Node.Bounds.Center())
}

// TapAt simulates a tap at the given logical position.
func (t *ViewTester) TapAt(pos graphics.Offset) error {
	id := allocTouchID()
	if err := t.SendTouchBegin(pos, id); err != nil {
		return err
	}
	return t.SendTouchEnd(pos, id)
}

// DragFrom simulates a drag from start by delta, moving in steps moves.
func (t *ViewTester) DragFrom(start, delta graphics.Offset, steps int) error {
	if steps < 1 {
		steps = 1
	}
	id := allocTouchID()
	if err := t.SendTouchBegin(start, id); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		}
		if err := t.SendTouchMove(pos, id); err != nil {
			return err
		}
	}
	return t.SendTouchEnd(start.Add(delta), id)
}

// SendTouchBegin starts touch id at pos and runs a frame.
func (t *ViewTester) SendTouchBegin(pos graphics.Offset, id int) error {
	t.pointers[id] = pos
	return t.send(core.TouchBegin{ID: id, Position: pos})
}

// SendTouchMove moves touch id to pos and runs a frame. Moves of a touch
// that has not begun are ignored.
func (t *ViewTester) SendTouchMove(pos graphics.Offset, id int) error {
	last, ok := t.pointers[id]
	if !ok {
		return nil
	}
	t.pointers[id] = pos
	return t.send(core.TouchMove{ID: id, Position: pos, Delta: pos.Sub(last)})
}

// SendTouchEnd ends touch id at pos and runs a frame.
func (t *ViewTester) SendTouchEnd(pos graphics.Offset, id int) error {
	if _, ok := t.pointers[id]; !ok {
		return nil
	}
	delete(t.pointers, id)
	return t.send(core.TouchEnd{ID: id, Position: pos})
}

// SendKey delivers a key press and runs a frame.
func (t *ViewTester) SendKey(key core.Key) error {
	return t.send(core.KeyEvent{Key: key})
}

// SendCommand selects the menu command named name and runs a frame.
func (t *ViewTester) SendCommand(name string) error {
	return t.send(core.CommandEvent{Name: name})
}

func (t *ViewTester) send(event core.Event) error {
	if t.view == nil {
		return fmt.Errorf("no view mounted")
	}
	if err := t.cx.Process(t.view, event); err != nil {
		return err
	}
	return t.Pump()
}
