package collections

import (
	"fmt"
	"iter"
	"reflect"
)

// Iterable is the traversal contract shared by ordered sequences and
// mappings: a collection that can yield its (key, value) pairs.
//
// Every combinator in this package is written against Iterable only, so it
// behaves the same for a [Seq] (keys are indices, in order) and a [Dict]
// (keys are map keys, in unspecified order).
type Iterable[K comparable, V any] interface {
	// All yields every (key, value) pair once.
	All() iter.Seq2[K, V]

	// Len returns the number of entries.
	Len() int
}

// Seq is the ordered-sequence backend of [Iterable]; keys are indices.
type Seq[T any] []T

// All yields (index, value) pairs in order.
func (s Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Len returns len(s).
func (s Seq[T]) Len() int { return len(s) }

// Dict is the mapping backend of [Iterable].
type Dict[K comparable, V any] map[K]V

// All yields (key, value) pairs in map iteration order.
func (d Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range d {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Len returns len(d).
func (d Dict[K, V]) Len() int { return len(d) }

// FromSlice wraps items as an [Iterable]. The result is typed as the
// interface so that K and V can be inferred at call sites:
//
//	collections.Contains(collections.FromSlice(names), "bob")
func FromSlice[T any](items []T) Iterable[int, T] { return Seq[T](items) }

// FromMap wraps m as an [Iterable].
func FromMap[K comparable, V any](m map[K]V) Iterable[K, V] { return Dict[K, V](m) }

// Of adapts a slice, array or map whose type is only known at run time.
// Any other value, nil included, fails with [ErrNotIterable].
func Of(v any) (Iterable[any, any], error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return reflected{rv}, nil
	}
	return nil, fmt.Errorf("%w: got %T", ErrNotIterable, v)
}

type reflected struct{ v reflect.Value }

func (r reflected) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if r.v.Kind() == reflect.Map {
			it := r.v.MapRange()
			for it.Next() {
				if !yield(it.Key().Interface(), it.Value().Interface()) {
					return
				}
			}
			return
		}
		for i := 0; i < r.v.Len(); i++ {
			if !yield(i, r.v.Index(i).Interface()) {
				return
			}
		}
	}
}

func (r reflected) Len() int { return r.v.Len() }
