package collections

import "golang.org/x/exp/constraints"

// Map is keyed by an ordered type so Keys can be listed deterministically.
type Map[K constraints.Ordered, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
}
