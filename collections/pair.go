package collections

import "fmt"

// Entry is one (key, value) pair of an [Iterable].
// It is the element type produced by [Entries].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
