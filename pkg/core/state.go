package core

import "reflect"

// stateKey addresses a state cell: one cell per (view, value type).
type stateKey struct {
	id  ViewID
	typ reflect.Type
}

// GetState returns the state cell of type T owned by id, creating it with
// init on first access. A nil init yields the zero value. Repeated calls,
// within a frame or across frames, return the same storage until the owner
// is dropped by GC.
func GetState[T any](cx *Context, id ViewID, init func() T) *T {
	key := stateKey{id: id, typ: reflect.TypeFor[T]()}
	if v, ok := cx.states[key]; ok {
		if p, ok := v.(*T); ok {
			return p
		}
	}
	var v T
	if init != nil {
		v = init()
	}
	p := &v
	cx.states[key] = p
	return p
}

// HasState reports whether id owns a state cell of type T.
func HasState[T any](cx *Context, id ViewID) bool {
	_, ok := cx.states[stateKey{id: id, typ: reflect.TypeFor[T]()}]
	return ok
}

// StateHandle is a binding to one state cell. It is a small value that can
// be captured by closures built in the same frame.
type StateHandle[T any] struct {
	id   ViewID
	init func() T
}

// NewStateHandle returns a handle to the cell of type T owned by id.
func NewStateHandle[T any](id ViewID, init func() T) StateHandle[T] {
	return StateHandle[T]{id: id, init: init}
}

// ID returns the owning view id.
func (h StateHandle[T]) ID() ViewID {
	return h.id
}

// Get returns the current value.
func (h StateHandle[T]) Get(cx *Context) T {
	return *GetState(cx, h.id, h.init)
}

// Set replaces the value and schedules the owner for repaint.
func (h StateHandle[T]) Set(cx *Context, value T) {
	*GetState(cx, h.id, h.init) = value
	cx.Invalidate(h.id)
}

// Update mutates the value in place and schedules the owner for repaint.
func (h StateHandle[T]) Update(cx *Context, fn func(*T)) {
	fn(GetState(cx, h.id, h.init))
	cx.Invalidate(h.id)
}

// Ref returns a pointer to the stored value. Writes through the pointer do
// not schedule a repaint; the pointer must not be retained past the current
// traversal.
func (h StateHandle[T]) Ref(cx *Context) *T {
	return GetState(cx, h.id, h.init)
}
