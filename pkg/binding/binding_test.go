package binding

import (
	"testing"

	"github.com/go-drift/loom/pkg/core"
	"github.com/google/go-cmp/cmp"
)

type point struct {
	X, Y float64
}

type shape struct {
	Name   string
	Origin point
	Tags   []string
}

var (
	originLens = Field(func(s *shape) *point { return &s.Origin })
	xLens      = Field(func(p *point) *float64 { return &p.X })
	nameLens   = NewLens(
		func(s shape) string { return s.Name },
		func(s *shape, name string) { s.Name = name },
	)
)

func sample() shape {
	return shape{Name: "a", Origin: point{X: 1, Y: 2}, Tags: []string{"t"}}
}

func TestFieldLens(t *testing.T) {
	s := sample()
	if got := xLens.Get(s.Origin); got != 1 {
		t.Errorf("Get = %v, want 1", got)
	}

	xLens.Set(&s.Origin, 5)
	want := sample()
	want.Origin.X = 5
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Set touched sibling fields (-want +got):\n%s", diff)
	}
}

func TestComposeLaws(t *testing.T) {
	originX := Compose(originLens, xLens)
	s := sample()

	if got, want := originX.Get(s), xLens.Get(originLens.Get(s)); got != want {
		t.Errorf("composed Get = %v, want %v", got, want)
	}

	// set(a, get(a)) is a no-op.
	before := sample()
	originX.Set(&s, originX.Get(s))
	if diff := cmp.Diff(before, s); diff != "" {
		t.Errorf("round trip changed value (-want +got):\n%s", diff)
	}

	originX.Set(&s, 9)
	if s.Origin.X != 9 || s.Origin.Y != 2 || s.Name != "a" {
		t.Errorf("composed Set = %+v, want only Origin.X changed", s)
	}

	// Composition is associative.
	type wrapper struct{ S shape }
	wrap := Field(func(w *wrapper) *shape { return &w.S })
	left := Compose(Compose(wrap, originLens), xLens)
	right := Compose(wrap, Compose(originLens, xLens))
	w := wrapper{S: sample()}
	if left.Get(w) != right.Get(w) {
		t.Errorf("associativity: %v != %v", left.Get(w), right.Get(w))
	}
}

func TestNewLensCompose(t *testing.T) {
	s := sample()
	nameLen := Compose(nameLens, NewLens(
		func(name string) int { return len(name) },
		func(name *string, n int) { *name = string(make([]byte, n)) },
	))
	if got := nameLen.Get(s); got != 1 {
		t.Errorf("Get = %d, want 1", got)
	}
	if p, ok := nameLen.(Projector[shape, int]); ok && p.Project(&s) != nil {
		t.Errorf("non-projecting lens composition exposed a reference")
	}
}

func TestBindStateHandle(t *testing.T) {
	cx := core.NewContext()
	var path core.IdPath
	path.Push(0)
	handle := core.NewStateHandle(cx.ViewID(&path), sample)

	x := Bind(Bind[shape](handle, originLens), xLens)
	if got := x.Get(cx); got != 1 {
		t.Errorf("Get = %v, want 1", got)
	}

	x.Set(cx, 4)
	got := handle.Get(cx)
	want := sample()
	want.Origin.X = 4
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("state after Set (-want +got):\n%s", diff)
	}
	if !cx.IsInvalid(handle.ID()) {
		t.Errorf("Set through lens did not invalidate the owner")
	}
}

func TestWithRefDoesNotCopy(t *testing.T) {
	cx := core.NewContext()
	var path core.IdPath
	handle := core.NewStateHandle(cx.ViewID(&path), sample)
	origin := Bind[shape](handle, originLens)

	same := WithRef(cx, origin, func(p *point) bool {
		return p == &handle.Ref(cx).Origin
	})
	if !same {
		t.Errorf("WithRef copied a value backed by a state cell")
	}

	name := Bind[shape](handle, nameLens)
	got := WithRef(cx, name, func(s *string) string { return *s })
	if got != "a" {
		t.Errorf("WithRef fallback = %q, want %q", got, "a")
	}
}

func TestFuncBinding(t *testing.T) {
	cx := core.NewContext()
	value := 1
	b := Func(func(*core.Context) int { return value }, func(_ *core.Context, v int) { value = v })
	b.Set(cx, 3)
	if b.Get(cx) != 3 {
		t.Errorf("Get = %d, want 3", b.Get(cx))
	}

	readOnly := Func(func(*core.Context) int { return 7 }, nil)
	readOnly.Set(cx, 8)
	if readOnly.Get(cx) != 7 {
		t.Errorf("read-only binding accepted a write")
	}
}
