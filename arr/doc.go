// Package arr provides standalone generic combinators over plain Go slices:
// accessors, predicates, transforms, set algebra and structural reshaping.
//
// # Slice helpers
//
// Every helper operates on a plain []T, no wrapper type required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	top2  := arr.FirstN([]string{"a", "b", "c"}, 2)          // → [a b]
//	both  := arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}) // → [2 3]
//
// # Copying and mutation
//
// Helpers return new slices and leave their input untouched. The one
// exception is [UniqInPlace], which compacts the caller's backing array and
// is named to say so; [Uniq] is its copying counterpart.
//
// # Equality
//
// Set-like helpers ([IndexOf], [Contains], [Uniq], [Intersection],
// [Difference]) compare with ==. Pointers compare by identity, so two
// distinct *User values with equal fields are different elements.
//
// With an interface element type such as any, == panics when two elements
// hold the same uncomparable dynamic type, and the map-backed helpers panic
// on any such element: arr.Uniq([]any{[]int{1}}) panics with "hash of
// unhashable type". Keep slices, maps and funcs out of these inputs, or use
// collections.Contains, which treats them as never equal.
//
// # Zero-seeded Reduce
//
// [Reduce] without an initial value starts from the zero value of the
// accumulator type instead of the first element. Callers depend on this, so
// it is kept; pass an explicit initial value when a different seed is wanted.
//
// # Reflective helpers
//
// [Flatten], [PluckField] and [Invoke] accept values whose shape is only known
// at run time. They report misuse through the sentinel errors in this package
// rather than panicking.
package arr
