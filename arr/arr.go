package arr

import "github.com/hasbyte1/go-underscore/internal/truth"

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a new slice holding the first min(n, len(items)) elements.
// FirstN(items, 0) is an empty slice, never the single first element.
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a new slice holding the last min(n, len(items)) elements,
// in their original order.
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first occurrence of target, or -1.
func IndexOf[T comparable](items []T, target T) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

// Contains reports whether items holds target.
func Contains[T comparable](items []T, target T) bool {
	return IndexOf(items, target) >= 0
}

// Filter returns a new slice with the elements for which pred returns true.
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns a new slice with the elements for which pred returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, pred func(T) bool) []T {
	return Filter(items, func(item T) bool { return !pred(item) })
}

// Every reports whether every element satisfies preds[0].
// It is true for an empty slice and when no predicate is given.
func Every[T any](items []T, preds ...func(T) bool) bool {
	if len(preds) == 0 {
		return true
	}
	for _, item := range items {
		if !preds[0](item) {
			return false
		}
	}
	return true
}

// Some reports whether at least one element satisfies preds[0]. Without a
// predicate it reports whether any element is truthy (not its type's zero
// value). It is false for an empty slice.
func Some[T any](items []T, preds ...func(T) bool) bool {
	pred := truth.Of[T]
	if len(preds) > 0 {
		pred = preds[0]
	}
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice of the same length.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Pluck returns the value stored under key in every element, skipping
// elements where the key is absent or holds a falsy value.
//
//	arr.Pluck([]map[string]int{{"age": 30}, {"age": 0}, {}}, "age") // → [30]
func Pluck[M ~map[K]V, K comparable, V any](items []M, key K) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		if v, ok := item[key]; ok && truth.Of(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds items from left to right with fn(acc, item).
//
// When initial is omitted the accumulator starts at the zero value of U
// (0 for numbers), NOT at the first element:
//
//	arr.Reduce([]int{1, 2, 3}, add)    // 0+1+2+3 = 6
//	arr.Reduce([]int{2, 3}, multiply)  // 0*2*3 = 0
func Reduce[T, U any](items []T, fn func(U, T) U, initial ...U) U {
	var acc U
	if len(initial) > 0 {
		acc = initial[0]
	}
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}
