package collections

import (
	"fmt"
)

// Queue is a FIFO buffer.
type Queue[V any] interface {
	Push(vs ...V)
	Pop() (V, error)
	Peek() (V, error)
	Size() int
	Clear()
}

type queue[V any] struct {
	entries []V
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

func (q *queue[V]) Push(vs ...V) {
	q.entries = append(q.entries, vs...)
}

func (q *queue[V]) Pop() (v V, err error) {
	if len(q.entries) == 0 {
		return v, ErrEmptyQueue
	}
	ret := q.entries[0]
	q.entries = q.entries[1:]
	return ret, nil
}

func (q *queue[V]) Peek() (v V, err error) {
	if len(q.entries) == 0 {
		return v, ErrEmptyQueue
	}
	return q.entries[0], nil
}

func (q *queue[V]) Size() int {
	return len(q.entries)
}

func (q *queue[V]) Clear() {
	q.entries = q.entries[:0]
}

func (q queue[V]) String() string {
	return fmt.Sprint(q.entries)
}
