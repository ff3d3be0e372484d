// Package sets implements a finite set of int64 values kept as a singly-linked
// chain. Insert prepends, so traversal starts at the most recently inserted
// element (the head) and RemoveLast takes the element inserted earliest.
//
// Insert does not check membership. Add does, and every algebraic operation
// builds its result through membership checks, so derived sets never hold
// duplicates.
package sets

import (
	"fmt"
	"io"
	"strings"

	"github.com/tuannh982/intsets/sets/internal"
	"github.com/tuannh982/intsets/utils/math"

	log "github.com/sirupsen/logrus"
)

type Set struct {
	arena *internal.Arena
	head  int
	log   *log.Entry
}

// New returns a set holding the single element v.
func New(v int64, opts ...Option) (*Set, error) {
	s := NewEmpty(opts...)
	if err := s.Insert(v); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmpty returns a set with no elements.
func NewEmpty(opts ...Option) *Set {
	c := newConfig(opts)
	return &Set{
		arena: internal.NewArena(c.limit),
		head:  internal.Nil,
		log:   c.logger,
	}
}

// derive returns an empty set configured like s.
func (s *Set) derive() *Set {
	return &Set{
		arena: internal.NewArena(s.arena.Limit()),
		head:  internal.Nil,
		log:   s.log,
	}
}

func (s *Set) report(op string, err error) error {
	s.log.WithField("op", op).Debug(err)
	return err
}

func (s *Set) IsEmpty() bool {
	return s.head == internal.Nil
}

// Insert prepends v as the new head without checking membership.
func (s *Set) Insert(v int64) error {
	i, err := s.arena.Alloc(v, s.head)
	if err != nil {
		return s.report("insert", ErrAllocation)
	}
	s.head = i
	return nil
}

// Add inserts v unless it is already present.
func (s *Set) Add(v int64) error {
	if s.has(v) {
		return ErrValueExisted
	}
	return s.Insert(v)
}

// RemoveLast unlinks the structurally last node, i.e. the earliest inserted
// element, and returns its value.
func (s *Set) RemoveLast() (int64, error) {
	if s.IsEmpty() {
		return 0, s.report("remove_last", ErrEmptySet)
	}
	prev, cur := internal.Nil, s.head
	for s.arena.Next(cur) != internal.Nil {
		prev = cur
		cur = s.arena.Next(cur)
	}
	v := s.arena.Value(cur)
	s.arena.Free(cur)
	if prev == internal.Nil {
		s.head = internal.Nil
	} else {
		s.arena.SetNext(prev, internal.Nil)
	}
	return v, nil
}

// Clear releases every element.
func (s *Set) Clear() {
	s.arena.Reset()
	s.head = internal.Nil
}

func (s *Set) Size() int {
	n := 0
	for i := s.head; i != internal.Nil; i = s.arena.Next(i) {
		n++
	}
	return n
}

// ElementAt returns the element at position pos counted from the head.
// Positions past the end, and negative ones, yield the last element.
func (s *Set) ElementAt(pos int) (int64, error) {
	if s.IsEmpty() {
		return 0, s.report("element_at", ErrEmptySet)
	}
	cur := s.head
	for p := 0; p != pos && s.arena.Next(cur) != internal.Nil; p++ {
		cur = s.arena.Next(cur)
	}
	return s.arena.Value(cur), nil
}

// Contains reports whether v is an element of s. Every node, the last one
// included, is visited.
func (s *Set) Contains(v int64) (bool, error) {
	if s.IsEmpty() {
		return false, s.report("contains", ErrEmptySet)
	}
	return s.has(v), nil
}

func (s *Set) has(v int64) bool {
	for i := s.head; i != internal.Nil; i = s.arena.Next(i) {
		if s.arena.Value(i) == v {
			return true
		}
	}
	return false
}

// Each calls fn for every element from head to tail until fn returns false.
func (s *Set) Each(fn func(v int64) bool) {
	for i := s.head; i != internal.Nil; i = s.arena.Next(i) {
		if !fn(s.arena.Value(i)) {
			return
		}
	}
}

func (s *Set) Values() []int64 {
	arr := make([]int64, 0)
	s.Each(func(v int64) bool {
		arr = append(arr, v)
		return true
	})
	return arr
}

// Extent returns the smallest and largest elements.
func (s *Set) Extent() (min, max int64, err error) {
	if s.IsEmpty() {
		return 0, 0, s.report("extent", ErrEmptySet)
	}
	min, max = s.arena.Value(s.head), s.arena.Value(s.head)
	s.Each(func(v int64) bool {
		min = math.Min(min, v)
		max = math.Max(max, v)
		return true
	})
	return min, max, nil
}

// Print writes the elements as "{ a, b, c }" followed by a newline.
func (s *Set) Print(w io.Writer) error {
	if s.IsEmpty() {
		return s.report("print", ErrEmptySet)
	}
	_, err := fmt.Fprintln(w, s.String())
	return err
}

func (s *Set) String() string {
	if s.IsEmpty() {
		return "{ }"
	}
	elems := make([]string, 0)
	s.Each(func(v int64) bool {
		elems = append(elems, fmt.Sprint(v))
		return true
	})
	return "{ " + strings.Join(elems, ", ") + " }"
}
