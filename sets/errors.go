package sets

import "errors"

// Kind classifies the recoverable failures of set operations.
type Kind uint8

const (
	EmptySet Kind = iota + 1
	Allocation
)

func (k Kind) Error() string {
	switch k {
	case EmptySet:
		return "set is empty"
	case Allocation:
		return "cannot allocate set element"
	default:
		return "unknown set error"
	}
}

var (
	ErrEmptySet     error = EmptySet
	ErrAllocation   error = Allocation
	ErrValueExisted       = errors.New("value existed")
)
