package pqueue

import "errors"

// ErrDuplicate is the panic value raised when Push receives an element
// that is already queued.
var ErrDuplicate = errors.New("pqueue: element already queued")

// ScoreFunc returns the ordering key of an element; lower scores pop first.
type ScoreFunc[T comparable] func(T) float64

// BinaryHeap is a min-heap over elements of type T.
type BinaryHeap[T comparable] struct {
	items []T
	pos   map[T]int // element -> current slot in items
	score ScoreFunc[T]
}

// New returns an empty heap ordered by score, pre-sized for capacity elements.
func New[T comparable](score ScoreFunc[T], capacity int) *BinaryHeap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &BinaryHeap[T]{
		items: make([]T, 0, capacity),
		pos:   make(map[T]int, capacity),
		score: score,
	}
}

// Len returns the number of queued elements.
func (h *BinaryHeap[T]) Len() int { return len(h.items) }

// Contains reports whether x is currently queued.
func (h *BinaryHeap[T]) Contains(x T) bool {
	_, ok := h.pos[x]
	return ok
}

// Push appends x and sifts it toward the root while its score is strictly
// below its parent's. It panics with ErrDuplicate if x is already queued.
func (h *BinaryHeap[T]) Push(x T) {
	if _, ok := h.pos[x]; ok {
		panic(ErrDuplicate)
	}
	h.items = append(h.items, x)
	n := len(h.items) - 1
	h.pos[x] = n
	h.up(n)
}

// Peek returns the minimum element without removing it.
func (h *BinaryHeap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// PopMin removes and returns the minimum element. The second result is
// false when the heap is empty.
func (h *BinaryHeap[T]) PopMin() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	top := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	delete(h.pos, top)
	if n > 1 {
		h.items[0] = last
		h.pos[last] = 0
		h.down(0)
	}

	return top, true
}

// Rescore restores heap order after x's score decreased, by sifting x up
// from its current slot. It reports false if x is not queued.
func (h *BinaryHeap[T]) Rescore(x T) bool {
	i, ok := h.pos[x]
	if !ok {
		return false
	}
	h.up(i)
	return true
}

// Fix restores heap order after x's score changed in either direction.
// It reports false if x is not queued.
func (h *BinaryHeap[T]) Fix(x T) bool {
	i, ok := h.pos[x]
	if !ok {
		return false
	}
	if !h.up(i) {
		h.down(i)
	}
	return true
}

// Reset empties the heap, keeping allocated capacity.
func (h *BinaryHeap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:0]
	clear(h.pos)
}

// up sifts the element at slot i toward the root and reports whether it moved.
func (h *BinaryHeap[T]) up(i int) bool {
	start := i
	x := h.items[i]
	s := h.score(x)
	for i > 0 {
		parent := (i - 1) / 2
		if s >= h.score(h.items[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}

	return i != start
}

// down sifts the element at slot i toward the leaves, each step swapping
// with the smaller child when that child scores strictly lower.
func (h *BinaryHeap[T]) down(i int) {
	n := len(h.items)
	s := h.score(h.items[i])
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest, best := i, s
		if ls := h.score(h.items[left]); ls < best {
			smallest, best = left, ls
		}
		if right := left + 1; right < n {
			if rs := h.score(h.items[right]); rs < best {
				smallest = right
			}
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *BinaryHeap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}
