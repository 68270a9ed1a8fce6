package arr

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten recursively flattens nested into a single []any, left to right.
// Any slice or array found at any depth is expanded, including typed ones
// such as a []int held in a []any. Other values, strings included, are leaves.
//
//	arr.Flatten([]any{1, []any{2, []any{3, []int{4}}, 5}}) // → [1 2 3 4 5]
//
// Returns [ErrNotSequence] when nested itself is not a slice or array, and
// [ErrCyclic] when a slice contains itself at any depth. The same slice
// appearing twice side by side is not a cycle and is expanded both times.
func Flatten(nested any) ([]any, error) {
	rv := reflect.ValueOf(nested)
	if !isSequence(rv) {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, nested)
	}
	out := make([]any, 0, rv.Len())
	active := make(map[sliceID]struct{})
	var flatten func(v reflect.Value, depth int) error
	flatten = func(v reflect.Value, depth int) error {
		if v.Kind() == reflect.Slice && v.Len() > 0 {
			id := sliceID{v.Pointer(), v.Len(), v.Type()}
			if _, ok := active[id]; ok {
				return fmt.Errorf("%w: at depth %d", ErrCyclic, depth)
			}
			active[id] = struct{}{}
			defer delete(active, id)
		}
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() == reflect.Interface {
				if elem.IsNil() {
					out = append(out, nil)
					continue
				}
				elem = elem.Elem()
			}
			if isSequence(elem) {
				if err := flatten(elem, depth+1); err != nil {
					return err
				}
				continue
			}
			out = append(out, elem.Interface())
		}
		return nil
	}
	if err := flatten(rv, 0); err != nil {
		return nil, err
	}
	return out, nil
}

// sliceID identifies a slice header on the current descent path.
type sliceID struct {
	data uintptr
	len  int
	typ  reflect.Type
}

// FlattenOf is [Flatten] with every leaf asserted to T.
// A leaf of another type fails with [ErrElementType].
func FlattenOf[T any](nested any) ([]T, error) {
	flat, err := Flatten(nested)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(flat))
	for i, v := range flat {
		t, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: leaf %d is %T, want %v", ErrElementType, i, v, reflect.TypeFor[T]())
		}
		out[i] = t
	}
	return out, nil
}

func isSequence(rv reflect.Value) bool {
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Slot is one position of a [Zip] tuple. OK is false when the source
// sequence was too short to supply a value at that position.
type Slot[T any] struct {
	Value T
	OK    bool
}

// String returns the value, or "<missing>" for an empty slot.
func (s Slot[T]) String() string {
	if !s.OK {
		return "<missing>"
	}
	return fmt.Sprint(s.Value)
}

// Zip groups the elements sharing an index. There is one tuple per position
// of the longest sequence and every tuple has len(seqs) slots; shorter
// sequences contribute empty slots.
//
//	arr.Zip([]any{"a", "b", "c"}, []any{1, 2}) // → [[a 1] [b 2] [c <missing>]]
func Zip[T any](seqs ...[]T) [][]Slot[T] {
	n := 0
	for _, seq := range seqs {
		n = max(n, len(seq))
	}
	out := make([][]Slot[T], n)
	for i := range out {
		tuple := make([]Slot[T], len(seqs))
		for k, seq := range seqs {
			if i < len(seq) {
				tuple[k] = Slot[T]{Value: seq[i], OK: true}
			}
		}
		out[i] = tuple
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a copy of items sorted ascending by key. The sort is stable.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return out
}

// Shuffle returns a randomly permuted copy of items. Every permutation is
// equally likely. items is not modified.
func Shuffle[T any](items []T) []T {
	return fisherYates(items, rand.IntN)
}

// ShuffleWith is [Shuffle] drawing from r, for reproducible permutations.
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	return fisherYates(items, r.IntN)
}

func fisherYates[T any](items []T, intN func(int) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
