package collections

import (
	"reflect"

	"github.com/hasbyte1/go-underscore/internal/truth"
)

// This file holds the combinators that must work identically over ordered
// sequences and mappings. Each one is written against [Iterable] alone.

// Each calls fn(value, key, coll) for every entry of coll.
//
//	collections.Each(collections.FromMap(prices), func(p float64, item string, _ collections.Iterable[string, float64]) {
//	    fmt.Println(item, p)
//	})
func Each[K comparable, V any](coll Iterable[K, V], fn func(V, K, Iterable[K, V])) {
	for k, v := range coll.All() {
		fn(v, k, coll)
	}
}

// Contains reports whether any value of coll equals target.
// Values whose dynamic type cannot be compared never match.
func Contains[K comparable, V comparable](coll Iterable[K, V], target V) bool {
	eq := equalFunc[V]()
	for _, v := range coll.All() {
		if eq(v, target) {
			return true
		}
	}
	return false
}

// equalFunc returns == for V, guarded against the run-time panic == raises
// when V is an interface holding an uncomparable value such as a slice.
//
// A comparable dynamic type can still panic: a struct or array with an
// interface field holding a slice. That panic is recovered as a mismatch.
func equalFunc[V comparable]() func(a, b V) bool {
	if reflect.TypeFor[V]().Kind() != reflect.Interface {
		return func(a, b V) bool { return a == b }
	}
	return func(a, b V) (eq bool) {
		ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
		if ta != tb || (ta != nil && !ta.Comparable()) {
			return false
		}
		defer func() {
			if recover() != nil {
				eq = false
			}
		}()
		return a == b
	}
}

// Filter returns, in traversal order, the values of coll for which pred
// returns true.
func Filter[K comparable, V any](coll Iterable[K, V], pred func(V, K) bool) []V {
	out := make([]V, 0, coll.Len())
	for k, v := range coll.All() {
		if pred(v, k) {
			out = append(out, v)
		}
	}
	return out
}

// Every reports whether every value satisfies preds[0]. It is true for an
// empty collection and when no predicate is given.
func Every[K comparable, V any](coll Iterable[K, V], preds ...func(V) bool) bool {
	if len(preds) == 0 {
		return true
	}
	for _, v := range coll.All() {
		if !preds[0](v) {
			return false
		}
	}
	return true
}

// Some reports whether any value satisfies preds[0], or is truthy when no
// predicate is given. It is false for an empty collection.
func Some[K comparable, V any](coll Iterable[K, V], preds ...func(V) bool) bool {
	pred := truth.Of[V]
	if len(preds) > 0 {
		pred = preds[0]
	}
	for _, v := range coll.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Reduce folds the values of coll with fn(acc, value) in traversal order.
// Without initial, the accumulator starts at the zero value of U rather than
// at the first value.
func Reduce[K comparable, V, U any](coll Iterable[K, V], fn func(U, V) U, initial ...U) U {
	var acc U
	if len(initial) > 0 {
		acc = initial[0]
	}
	for _, v := range coll.All() {
		acc = fn(acc, v)
	}
	return acc
}

// Keys returns the keys of coll in traversal order.
func Keys[K comparable, V any](coll Iterable[K, V]) []K {
	out := make([]K, 0, coll.Len())
	for k := range coll.All() {
		out = append(out, k)
	}
	return out
}

// Values returns the values of coll in traversal order.
func Values[K comparable, V any](coll Iterable[K, V]) []V {
	out := make([]V, 0, coll.Len())
	for _, v := range coll.All() {
		out = append(out, v)
	}
	return out
}

// Entries returns the (key, value) pairs of coll in traversal order.
func Entries[K comparable, V any](coll Iterable[K, V]) []Entry[K, V] {
	out := make([]Entry[K, V], 0, coll.Len())
	for k, v := range coll.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// GroupBy groups the values of coll by the key fn extracts from each.
// Within a group, values keep traversal order.
//
//	byLen := collections.GroupBy(collections.FromSlice(words),
//	    func(w string) int { return len(w) })
func GroupBy[K comparable, V any, G comparable](coll Iterable[K, V], fn func(V) G) map[G][]V {
	groups := make(map[G][]V)
	for _, v := range coll.All() {
		g := fn(v)
		groups[g] = append(groups[g], v)
	}
	return groups
}

// CountBy counts the values of coll per key extracted by fn.
func CountBy[K comparable, V any, G comparable](coll Iterable[K, V], fn func(V) G) map[G]int {
	counts := make(map[G]int)
	for _, v := range coll.All() {
		counts[fn(v)]++
	}
	return counts
}
