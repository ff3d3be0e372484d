package internal

import "errors"

// Nil marks the absence of a node.
const Nil = -1

var ErrExhausted = errors.New("arena exhausted")

type node struct {
	value int64
	next  int
	live  bool
}

// Arena stores singly-linked nodes addressed by index. Freed slots are reused.
type Arena struct {
	nodes []node
	free  []int
	limit int
	live  int
}

// NewArena returns an arena holding at most limit live nodes; limit <= 0 means unbounded.
func NewArena(limit int) *Arena {
	return &Arena{
		nodes: make([]node, 0),
		free:  make([]int, 0),
		limit: limit,
	}
}

func (a *Arena) Limit() int {
	return a.limit
}

func (a *Arena) Live() int {
	return a.live
}

func (a *Arena) Alloc(value int64, next int) (int, error) {
	if a.limit > 0 && a.live >= a.limit {
		return Nil, ErrExhausted
	}
	a.live++
	n := node{value: value, next: next, live: true}
	if k := len(a.free); k > 0 {
		i := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[i] = n
		return i, nil
	}
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1, nil
}

func (a *Arena) Free(i int) {
	if !a.valid(i) {
		return
	}
	a.nodes[i] = node{next: Nil}
	a.free = append(a.free, i)
	a.live--
}

func (a *Arena) Value(i int) int64 {
	return a.nodes[i].value
}

func (a *Arena) Next(i int) int {
	return a.nodes[i].next
}

func (a *Arena) SetNext(i, next int) {
	a.nodes[i].next = next
}

// Reset drops every node at once.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
	a.live = 0
}

func (a *Arena) valid(i int) bool {
	return i >= 0 && i < len(a.nodes) && a.nodes[i].live
}
