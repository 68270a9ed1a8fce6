// Package collections defines the iteration contract shared by ordered
// sequences and key-value mappings, and the combinators written against it.
//
// # Overview
//
// The central type is [Iterable][K, V]: anything that can yield its
// (key, value) pairs. Two backends are provided:
//
//   - [Seq][T] for slices; keys are indices and traversal is in order.
//   - [Dict][K, V] for maps; keys are map keys and order is unspecified.
//
// [Each], [Contains], [Filter], [Every], [Some], [Reduce], [GroupBy] and the
// rest depend only on Iterable, so a caller can hand them either kind of
// container:
//
//	found := collections.Contains(collections.FromSlice([]int{1, 2, 3}), 2)   // true
//	found  = collections.Contains(collections.FromMap(map[string]int{"a": 4}), 4) // true
//
// Use [FromSlice] and [FromMap] at call sites: they return the Iterable
// interface type, which lets Go infer K and V.
//
// # Chaining
//
// [Collection] wraps a slice of comparable values with chainable methods that
// return new collections. It is an Iterable too:
//
//	evens := collections.New(1, 2, 2, 4).Unique().Filter(isEven) // [2 4]
//	collections.Reduce(evens, add)                                // 6
//
// # Values of unknown shape
//
// [Of] adapts any slice, array or map through reflection and rejects every
// other value with [ErrNotIterable].
//
// # Zero-seeded Reduce
//
// Like arr.Reduce, [Reduce] without an initial value starts from the zero
// value of the accumulator type, not from the first value.
package collections
