package sets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// fromHead builds a set whose traversal order is values.
func fromHead(t *testing.T, values ...int64) *Set {
	t.Helper()
	s := NewEmpty()
	for i := len(values) - 1; i >= 0; i-- {
		require.Nil(t, s.Insert(values[i]))
	}
	require.Equal(t, values, s.Values())
	return s
}

func sorted(s *Set) []int64 {
	v := s.Values()
	slices.Sort(v)
	return v
}

func TestUnion(t *testing.T) {
	t.Run("keeps first seen order", func(t *testing.T) {
		a := fromHead(t, 1, 2, 3)
		b := fromHead(t, 3, 4, 1, 5)
		u, err := Union(a, b)
		require.Nil(t, err)
		require.Equal(t, []int64{1, 2, 3, 4, 5}, u.Values())
		require.LessOrEqual(t, u.Size(), a.Size()+b.Size())
	})

	t.Run("drops duplicates inserted directly", func(t *testing.T) {
		a := fromHead(t, 1, 1, 2)
		b := fromHead(t, 2, 2)
		u, err := Union(a, b)
		require.Nil(t, err)
		require.Equal(t, []int64{1, 2}, u.Values())
	})

	t.Run("empty operands", func(t *testing.T) {
		u, err := Union(NewEmpty(), fromHead(t, 7))
		require.Nil(t, err)
		require.Equal(t, []int64{7}, u.Values())

		u, err = Union(NewEmpty(), NewEmpty())
		require.Nil(t, err)
		require.Equal(t, 0, u.Size())
	})

	t.Run("inputs untouched", func(t *testing.T) {
		a := fromHead(t, 1, 2)
		b := fromHead(t, 2, 3)
		_, _ = Union(a, b)
		require.Equal(t, []int64{1, 2}, a.Values())
		require.Equal(t, []int64{2, 3}, b.Values())
	})
}

func TestDifference(t *testing.T) {
	a := fromHead(t, 1, 2, 3, 4)
	b := fromHead(t, 4, 2, 9)
	d, err := Difference(a, b)
	require.Nil(t, err)
	require.Equal(t, []int64{1, 3}, d.Values())

	t.Run("with itself", func(t *testing.T) {
		d, err := Difference(a, a)
		require.Nil(t, err)
		require.NotNil(t, d)
		require.Equal(t, 0, d.Size())
	})

	t.Run("empty b", func(t *testing.T) {
		d, err := Difference(a, NewEmpty())
		require.Nil(t, err)
		require.Equal(t, a.Values(), d.Values())
	})

	t.Run("empty a", func(t *testing.T) {
		d, err := Difference(NewEmpty(), b)
		require.Equal(t, ErrEmptySet, err)
		require.Nil(t, d)
	})
}

func TestSymmetricDifference(t *testing.T) {
	a := fromHead(t, 1, 2, 3)
	b := fromHead(t, 3, 4, 1, 5)
	s, err := SymmetricDifference(a, b)
	require.Nil(t, err)
	require.Equal(t, []int64{2, 4, 5}, s.Values())

	t.Run("equals union of differences", func(t *testing.T) {
		ab, err := Difference(a, b)
		require.Nil(t, err)
		ba, err := Difference(b, a)
		require.Nil(t, err)
		u, err := Union(ab, ba)
		require.Nil(t, err)
		require.Equal(t, u.Values(), s.Values())
	})

	t.Run("one empty operand", func(t *testing.T) {
		s, err := SymmetricDifference(NewEmpty(), b)
		require.Nil(t, err)
		require.Equal(t, b.Values(), s.Values())
		s, err = SymmetricDifference(a, NewEmpty())
		require.Nil(t, err)
		require.Equal(t, a.Values(), s.Values())
	})

	t.Run("both empty", func(t *testing.T) {
		s, err := SymmetricDifference(NewEmpty(), NewEmpty())
		require.Equal(t, ErrEmptySet, err)
		require.Nil(t, s)
	})
}

func TestIntersection(t *testing.T) {
	a := fromHead(t, 5, 1, 3, 7)
	b := fromHead(t, 7, 3, 8)
	i, err := Intersection(a, b)
	require.Nil(t, err)
	require.Equal(t, []int64{3, 7}, i.Values())
	i.Each(func(v int64) bool {
		require.True(t, a.has(v) && b.has(v))
		return true
	})

	t.Run("disjoint is a valid empty set", func(t *testing.T) {
		i, err := Intersection(fromHead(t, 1, 2), fromHead(t, 3, 4))
		require.Nil(t, err)
		require.NotNil(t, i)
		require.Equal(t, 0, i.Size())
	})

	t.Run("empty operand is an error", func(t *testing.T) {
		i, err := Intersection(NewEmpty(), b)
		require.Equal(t, ErrEmptySet, err)
		require.Nil(t, i)
		i, err = Intersection(a, NewEmpty())
		require.Equal(t, ErrEmptySet, err)
		require.Nil(t, i)
	})
}

func TestComplement(t *testing.T) {
	t.Run("exclusive bounds", func(t *testing.T) {
		c, err := Complement(fromHead(t, 2, 4), 1, 5)
		require.Nil(t, err)
		require.Equal(t, []int64{3}, c.Values())
	})

	t.Run("ascending and disjoint from a", func(t *testing.T) {
		a := fromHead(t, 9, 0, 5)
		c, err := Complement(a, -3, 10)
		require.Nil(t, err)
		require.Equal(t, []int64{-2, -1, 1, 2, 3, 4, 6, 7, 8}, c.Values())
		require.Equal(t, sorted(c), c.Values())
	})

	t.Run("empty range", func(t *testing.T) {
		a := fromHead(t, 1)
		for _, r := range [][2]int64{{5, 5}, {5, 6}, {6, 5}} {
			c, err := Complement(a, r[0], r[1])
			require.Nil(t, err)
			require.Equal(t, 0, c.Size())
		}
	})

	t.Run("extreme bounds", func(t *testing.T) {
		const max = int64(^uint64(0) >> 1)
		c, err := Complement(fromHead(t, max-1), max-3, max)
		require.Nil(t, err)
		require.Equal(t, []int64{max - 2}, c.Values())
	})

	t.Run("empty a", func(t *testing.T) {
		c, err := Complement(NewEmpty(), 1, 5)
		require.Equal(t, ErrEmptySet, err)
		require.Nil(t, c)
	})

	t.Run("range over budget", func(t *testing.T) {
		a := NewEmpty(WithLimit(3))
		require.Nil(t, a.Insert(0))
		c, err := Complement(a, 0, 100)
		require.True(t, errors.Is(err, ErrAllocation))
		require.Nil(t, c)
	})
}

func TestComplementOfExtent(t *testing.T) {
	c, err := ComplementOfExtent(fromHead(t, 6, 2, 4))
	require.Nil(t, err)
	require.Equal(t, []int64{3, 5}, c.Values())

	c, err = ComplementOfExtent(fromHead(t, 1))
	require.Nil(t, err)
	require.Equal(t, 0, c.Size())

	_, err = ComplementOfExtent(NewEmpty())
	require.Equal(t, ErrEmptySet, err)
}

func TestResultInheritsLimit(t *testing.T) {
	a := NewEmpty(WithLimit(2))
	require.Nil(t, a.Insert(1))
	require.Nil(t, a.Insert(2))
	b := fromHead(t, 3)

	u, err := Union(a, b)
	require.Equal(t, ErrAllocation, err)
	require.Nil(t, u)

	d, err := Difference(a, b)
	require.Nil(t, err)
	require.Equal(t, ErrAllocation, d.Insert(9))
}

func TestEndToEnd(t *testing.T) {
	a, err := New(5)
	require.Nil(t, err)
	require.Nil(t, a.Insert(3))
	require.Nil(t, a.Insert(1))
	require.Equal(t, "{ 1, 3, 5 }", a.String())
	require.Equal(t, 3, a.Size())
	ok, err := a.Contains(3)
	require.Nil(t, err)
	require.Equal(t, true, ok)

	v, err := a.RemoveLast()
	require.Nil(t, err)
	require.Equal(t, int64(5), v)
	require.Equal(t, "{ 1, 3 }", a.String())
}
