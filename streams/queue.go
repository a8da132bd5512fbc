package streams

import (
	"container/heap"
	"iter"
	"slices"
)

// Queue is a binary-heap priority queue. Pop returns the least element.
type Queue[T any] struct {
	h queueHeap[T]
}

// NewQueue returns an empty queue ordered by less.
func NewQueue[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{h: queueHeap[T]{less: less}}
}

func (q *Queue[T]) Len() int { return len(q.h.items) }

// Push adds v to the queue.
func (q *Queue[T]) Push(v T) { heap.Push(&q.h, v) }

// Pop removes and returns the least element.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&q.h).(T), true
}

// Peek returns the least element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, false
	}
	return q.h.items[0], true
}

// All yields the elements in priority order without modifying the queue.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cp := queueHeap[T]{items: slices.Clone(q.h.items), less: q.h.less}
		for len(cp.items) > 0 {
			if !yield(heap.Pop(&cp).(T)) {
				return
			}
		}
	}
}

type queueHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *queueHeap[T]) Len() int           { return len(h.items) }
func (h *queueHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *queueHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *queueHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }

func (h *queueHeap[T]) Pop() any {
	n := len(h.items) - 1
	v := h.items[n]
	var zero T
	h.items[n] = zero
	h.items = h.items[:n]
	return v
}
