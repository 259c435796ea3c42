package utils

import (
	"iter"

	"github.com/oomph-ac/footing/oerror"
)

// CircularQueue is a fixed capacity queue that drops its oldest element when appended to while full.
type CircularQueue[T any] struct {
	items      []T
	head, size int
}

// NewCircularQueue returns an empty queue that holds up to capacity elements.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Append adds an item to the back of the queue, dropping the oldest one if the queue is full. It
// returns the dropped item and true if one was dropped.
func (q *CircularQueue[T]) Append(item T) (dropped T, ok bool, err error) {
	if len(q.items) == 0 {
		return dropped, false, oerror.New("circular queue has no capacity")
	}
	if q.size == len(q.items) {
		dropped, ok = q.items[q.head], true
		q.items[q.head] = item
		q.head = (q.head + 1) % len(q.items)
		return dropped, ok, nil
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	q.size++
	return dropped, false, nil
}

// Get returns the element at index, where 0 is the oldest element in the queue.
func (q *CircularQueue[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= q.size {
		return zero, false
	}
	return q.items[(q.head+index)%len(q.items)], true
}

// All iterates over the elements in the queue from oldest to newest.
func (q *CircularQueue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range q.size {
			if !yield(i, q.items[(q.head+i)%len(q.items)]) {
				return
			}
		}
	}
}

// Len returns the amount of elements in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum amount of elements the queue holds.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// Clear removes all elements from the queue.
func (q *CircularQueue[T]) Clear() {
	clear(q.items)
	q.head, q.size = 0, 0
}
