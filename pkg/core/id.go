package core

import (
	"fmt"

	"github.com/go-drift/loom/pkg/semantics"
)

// IdPath is the route from the root of the view tree to the node being
// visited: one child index per composition level.
//
// A traversal pushes a child's index before descending into it and pops it
// on return. The path is only valid for the duration of one traversal.
type IdPath struct {
	ids       []uint64
	underflow int
}

// Push appends a child index.
func (p *IdPath) Push(index int) {
	p.ids = append(p.ids, uint64(index))
}

// Pop removes the last child index. Popping an empty path leaves it empty
// and counts an underflow, which fails the traversal when it returns.
func (p *IdPath) Pop() {
	if len(p.ids) == 0 {
		p.underflow++
		return
	}
	p.ids = p.ids[:len(p.ids)-1]
}

// Len returns the depth of the path.
func (p *IdPath) Len() int {
	return len(p.ids)
}

// Reset empties the path, keeping its storage, and clears the underflow
// count.
func (p *IdPath) Reset() {
	p.ids = p.ids[:0]
	p.underflow = 0
}

// Balanced reports whether every Push since the last Reset was matched by
// exactly one Pop.
func (p *IdPath) Balanced() bool {
	return len(p.ids) == 0 && p.underflow == 0
}

// String returns the path as a slash-separated list of indices.
func (p *IdPath) String() string {
	s := ""
	for i, id := range p.ids {
		if i > 0 {
			s += "/"
		}
		s += fmt.Sprint(id)
	}
	return "/" + s
}

// ViewID is the storage key of a node, derived from its IdPath.
//
// Identity is positional: structurally identical trees produce identical
// ids, and a change in shape above a node shifts its id.
type ViewID uint64

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// ViewIDOf hashes path with FNV-1a. It does not allocate.
func ViewIDOf(path *IdPath) ViewID {
	h := uint64(fnvOffset64)
	for _, id := range path.ids {
		for shift := 0; shift < 64; shift += 8 {
			h ^= (id >> shift) & 0xff
			h *= fnvPrime64
		}
	}
	return ViewID(h)
}

// AccessID maps the id into the accessibility node id space.
func (id ViewID) AccessID() semantics.NodeID {
	return semantics.NodeID(id)
}

// String returns the id in hexadecimal.
func (id ViewID) String() string {
	return fmt.Sprintf("ViewID(%016x)", uint64(id))
}
