package search

// frontier holds discovered-but-unexpanded entries. Pushes always go to the
// back; pops come from the front (FIFO, BFS) or the back (LIFO, DFS).
type frontier[T any] struct {
	items []T
	head  int // index of the oldest live entry
	lifo  bool
}

func newFrontier[T any](algo Algorithm, capacity int) *frontier[T] {
	return &frontier[T]{
		items: make([]T, 0, capacity),
		lifo:  algo == DFS,
	}
}

// Len returns the number of live entries.
func (f *frontier[T]) Len() int {
	return len(f.items) - f.head
}

// Push appends v.
func (f *frontier[T]) Push(v T) {
	f.items = append(f.items, v)
}

// Pop removes and returns the next entry. It panics on an empty frontier.
func (f *frontier[T]) Pop() T {
	var zero T
	if f.lifo {
		last := len(f.items) - 1
		v := f.items[last]
		f.items[last] = zero
		f.items = f.items[:last]
		return v
	}
	v := f.items[f.head]
	f.items[f.head] = zero
	f.head++
	if f.head == len(f.items) {
		// drained: reuse the backing array
		f.items = f.items[:0]
		f.head = 0
	}
	return v
}
