package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/tuannh982/intsets/sets"
)

type binaryOp func(a, b *sets.Set) (*sets.Set, error)

var binaryOps = map[string]binaryOp{
	"union":        sets.Union,
	"difference":   sets.Difference,
	"symdiff":      sets.SymmetricDifference,
	"intersection": sets.Intersection,
}

// fromValues builds a set whose traversal order matches values.
func fromValues(values []int64, opts []sets.Option) (*sets.Set, error) {
	s := sets.NewEmpty(opts...)
	for i := len(values) - 1; i >= 0; i-- {
		if err := s.Insert(values[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// printResult prints a derived set, showing a valid empty result as "{ }".
func printResult(w io.Writer, s *sets.Set) error {
	err := s.Print(w)
	if errors.Is(err, sets.ErrEmptySet) {
		_, err = fmt.Fprintln(w, s)
	}
	return err
}
