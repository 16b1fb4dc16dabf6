// Package binding provides two-way accessors into application state.
//
// A Binding reads and writes a value through the Context. The root of every
// binding chain is usually a core.StateHandle; Lens steps narrow it to a part
// of the value:
//
//	type settings struct {
//	    Volume float64
//	    Muted  bool
//	}
//
//	volume := binding.Bind[settings](handle, binding.Field(func(s *settings) *float64 {
//	    return &s.Volume
//	}))
//	volume.Set(cx, 0.8) // writes settings.Volume, leaves Muted alone
package binding

import "github.com/go-drift/loom/pkg/core"

// Binding is a get/set capability over a value reachable from the Context.
type Binding[T any] interface {
	Get(cx *core.Context) T
	Set(cx *core.Context, value T)
}

// Referencer is implemented by bindings that can expose their value in place.
// Ref returns nil when no stable storage backs the value.
type Referencer[T any] interface {
	Ref(cx *core.Context) *T
}

var _ Binding[int] = core.StateHandle[int]{}
var _ Referencer[int] = core.StateHandle[int]{}

// derived narrows an inner binding through a lens.
type derived[W, P any] struct {
	inner Binding[W]
	lens  Lens[W, P]
}

// Bind returns a binding to the part of inner's value selected by lens.
// Setting it reads the whole value, replaces the part and writes the whole
// value back through inner.
func Bind[W, P any](inner Binding[W], lens Lens[W, P]) Binding[P] {
	return derived[W, P]{inner: inner, lens: lens}
}

func (d derived[W, P]) Get(cx *core.Context) P {
	return d.lens.Get(d.inner.Get(cx))
}

func (d derived[W, P]) Set(cx *core.Context, value P) {
	whole := d.inner.Get(cx)
	d.lens.Set(&whole, value)
	d.inner.Set(cx, whole)
}

func (d derived[W, P]) Ref(cx *core.Context) *P {
	ref, ok := d.inner.(Referencer[W])
	if !ok {
		return nil
	}
	proj, ok := d.lens.(Projector[W, P])
	if !ok {
		return nil
	}
	whole := ref.Ref(cx)
	if whole == nil {
		return nil
	}
	return proj.Project(whole)
}

// funcBinding adapts a pair of closures.
type funcBinding[T any] struct {
	get func(cx *core.Context) T
	set func(cx *core.Context, value T)
}

// Func returns a binding backed by get and set. A nil set makes the binding
// read-only: writes are ignored.
func Func[T any](get func(cx *core.Context) T, set func(cx *core.Context, value T)) Binding[T] {
	return funcBinding[T]{get: get, set: set}
}

func (f funcBinding[T]) Get(cx *core.Context) T {
	return f.get(cx)
}

func (f funcBinding[T]) Set(cx *core.Context, value T) {
	if f.set != nil {
		f.set(cx, value)
	}
}

// WithRef calls fn with a read-only view of b's current value. When b can
// expose its storage the value is not copied. The pointer must not be
// retained or written through.
func WithRef[T, R any](cx *core.Context, b Binding[T], fn func(value *T) R) R {
	if ref, ok := b.(Referencer[T]); ok {
		if p := ref.Ref(cx); p != nil {
			return fn(p)
		}
	}
	value := b.Get(cx)
	return fn(&value)
}
