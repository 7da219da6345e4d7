// Package pqueue provides a binary min-heap keyed by a caller-supplied
// score function, with in-place re-ordering of queued elements.
//
// Overview:
//
//   - BinaryHeap[T] stores elements in a dense slice laid out as a complete
//     binary tree: children of slot i live at 2i+1 and 2i+2.
//   - The score of an element is read through ScoreFunc every time it is
//     compared, so callers mutate the key outside the heap and then call
//     Rescore (key decreased) or Fix (key changed either way).
//   - A position map tracks the slot of every queued element, so Rescore,
//     Fix and Contains find an element without scanning the slice.
//
// Unlike a container/heap queue with lazy decrease-key (duplicate pushes),
// an element is never queued twice: Push panics with ErrDuplicate instead.
//
// Complexity:
//
//   - Push, PopMin, Rescore, Fix: O(log n).
//   - Peek, Len, Contains:        O(1).
//   - Memory:                     O(n).
//
// Ties in score are broken arbitrarily; no stability is guaranteed.
//
// BinaryHeap is not safe for concurrent use.
package pqueue
