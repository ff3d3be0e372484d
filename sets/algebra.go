package sets

import (
	"github.com/tuannh982/intsets/sets/internal"
	"github.com/tuannh982/intsets/utils/math"
)

// builder appends to the back of a fresh set so that results keep the order
// in which their elements were first seen.
type builder struct {
	set  *Set
	tail int
}

func newBuilder(like *Set) *builder {
	return &builder{
		set:  like.derive(),
		tail: internal.Nil,
	}
}

func (b *builder) push(v int64) error {
	i, err := b.set.arena.Alloc(v, internal.Nil)
	if err != nil {
		return ErrAllocation
	}
	if b.tail == internal.Nil {
		b.set.head = i
	} else {
		b.set.arena.SetNext(b.tail, i)
	}
	b.tail = i
	return nil
}

// pushUnique appends v unless the result already holds it.
func (b *builder) pushUnique(v int64) error {
	if b.set.has(v) {
		return nil
	}
	return b.push(v)
}

// collect appends every element of src accepted by keep.
func (b *builder) collect(src *Set, keep func(v int64) bool) (err error) {
	src.Each(func(v int64) bool {
		if keep(v) {
			err = b.pushUnique(v)
		}
		return err == nil
	})
	return err
}

func fail(s *Set, op string, err error) (*Set, error) {
	return nil, s.report(op, err)
}

func always(int64) bool { return true }

// Union returns the elements of a followed by the elements of b not in a.
func Union(a, b *Set) (*Set, error) {
	r := newBuilder(a)
	if err := r.collect(a, always); err != nil {
		return fail(a, "union", err)
	}
	if err := r.collect(b, always); err != nil {
		return fail(a, "union", err)
	}
	return r.set, nil
}

// Difference returns the elements of a that are not in b.
func Difference(a, b *Set) (*Set, error) {
	if a.IsEmpty() {
		return fail(a, "difference", ErrEmptySet)
	}
	r := newBuilder(a)
	if err := r.collect(a, func(v int64) bool { return !b.has(v) }); err != nil {
		return fail(a, "difference", err)
	}
	return r.set, nil
}

// SymmetricDifference returns the elements of a not in b followed by the
// elements of b not in a. It fails only when both operands are empty.
func SymmetricDifference(a, b *Set) (*Set, error) {
	if a.IsEmpty() && b.IsEmpty() {
		return fail(a, "symmetric_difference", ErrEmptySet)
	}
	r := newBuilder(a)
	if err := r.collect(a, func(v int64) bool { return !b.has(v) }); err != nil {
		return fail(a, "symmetric_difference", err)
	}
	if err := r.collect(b, func(v int64) bool { return !a.has(v) }); err != nil {
		return fail(a, "symmetric_difference", err)
	}
	return r.set, nil
}

// Intersection returns the elements of a that are also in b.
func Intersection(a, b *Set) (*Set, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return fail(a, "intersection", ErrEmptySet)
	}
	r := newBuilder(a)
	if err := r.collect(a, b.has); err != nil {
		return fail(a, "intersection", err)
	}
	return r.set, nil
}

// Complement returns, in ascending order, every integer strictly between min
// and max that is not an element of a.
func Complement(a *Set, min, max int64) (*Set, error) {
	if a.IsEmpty() {
		return fail(a, "complement", ErrEmptySet)
	}
	r := newBuilder(a)
	if min >= max {
		return r.set, nil
	}
	for v := min + 1; math.Between(v, min, max); v++ {
		if a.has(v) {
			continue
		}
		if err := r.push(v); err != nil {
			return fail(a, "complement", err)
		}
	}
	return r.set, nil
}

// ComplementOfExtent returns, in ascending order, every integer in the closed
// range [smallest, largest] of a that is not an element of a.
func ComplementOfExtent(a *Set) (*Set, error) {
	lo, hi, err := a.Extent()
	if err != nil {
		return nil, err
	}
	r := newBuilder(a)
	for v := lo; v < hi; v++ {
		if a.has(v) {
			continue
		}
		if err := r.push(v); err != nil {
			return fail(a, "complement_of_extent", err)
		}
	}
	return r.set, nil
}
