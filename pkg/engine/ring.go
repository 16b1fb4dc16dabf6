package engine

// ring is a fixed-capacity buffer that overwrites its oldest item.
type ring[T any] struct {
	items []T
	next  int
	count int
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{items: make([]T, capacity)}
}

func (r *ring[T]) add(item T) {
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
	r.count = min(r.count+1, len(r.items))
}

// ordered returns the items oldest first.
func (r *ring[T]) ordered() []T {
	out := make([]T, 0, r.count)
	start := (r.next - r.count + len(r.items)) % len(r.items)
	for i := range r.count {
		out = append(out, r.items[(start+i)%len(r.items)])
	}
	return out
}
