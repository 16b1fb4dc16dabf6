package binding

// Lens maps a whole value to one of its parts and back. Set replaces the
// part in place and leaves the rest of the whole untouched.
type Lens[W, P any] interface {
	Get(whole W) P
	Set(whole *W, part P)
}

// Projector is implemented by lenses that address the part by reference.
type Projector[W, P any] interface {
	Project(whole *W) *P
}

// fieldLens addresses a field through a pointer projection.
type fieldLens[W, P any] struct {
	project func(*W) *P
}

// Field declares a lens for one field of W:
//
//	binding.Field(func(p *Point) *float64 { return &p.X })
//
// The projection must return a pointer into its argument.
func Field[W, P any](project func(*W) *P) Lens[W, P] {
	return fieldLens[W, P]{project: project}
}

func (f fieldLens[W, P]) Get(whole W) P {
	return *f.project(&whole)
}

func (f fieldLens[W, P]) Set(whole *W, part P) {
	*f.project(whole) = part
}

func (f fieldLens[W, P]) Project(whole *W) *P {
	return f.project(whole)
}

// funcLens is a hand-written accessor pair.
type funcLens[W, P any] struct {
	get func(W) P
	set func(*W, P)
}

// NewLens returns a lens from a getter and an in-place setter.
func NewLens[W, P any](get func(W) P, set func(*W, P)) Lens[W, P] {
	return funcLens[W, P]{get: get, set: set}
}

func (f funcLens[W, P]) Get(whole W) P {
	return f.get(whole)
}

func (f funcLens[W, P]) Set(whole *W, part P) {
	f.set(whole, part)
}

// composed chains two lenses.
type composed[A, B, C any] struct {
	outer Lens[A, B]
	inner Lens[B, C]
}

// Compose returns the lens A→C that applies outer then inner. Composition is
// associative.
func Compose[A, B, C any](outer Lens[A, B], inner Lens[B, C]) Lens[A, C] {
	return composed[A, B, C]{outer: outer, inner: inner}
}

func (c composed[A, B, C]) Get(whole A) C {
	return c.inner.Get(c.outer.Get(whole))
}

func (c composed[A, B, C]) Set(whole *A, part C) {
	mid := c.outer.Get(*whole)
	c.inner.Set(&mid, part)
	c.outer.Set(whole, mid)
}

func (c composed[A, B, C]) Project(whole *A) *C {
	outer, ok := c.outer.(Projector[A, B])
	if !ok {
		return nil
	}
	inner, ok := c.inner.(Projector[B, C])
	if !ok {
		return nil
	}
	return inner.Project(outer.Project(whole))
}
