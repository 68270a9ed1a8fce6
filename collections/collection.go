package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/hasbyte1/go-underscore/arr"
)

// Collection is a chainable wrapper around an ordered [Seq] of comparable
// values.
//
// Every method that transforms the collection returns a new Collection and
// leaves the receiver unchanged, so a Collection may be read from several
// goroutines at once.
//
//	top := collections.New(3, 1, 3, 2, 5).
//	    Unique().
//	    Filter(func(n int) bool { return n > 1 }).
//	    Take(2) // [3 2]
//
// A *Collection is itself an [Iterable], so the package-level combinators
// accept it directly:
//
//	collections.GroupBy(top, func(n int) bool { return n%2 == 0 })
//
// Operations that change the element type stay package-level functions
// (arr.Map, [GroupBy]), since methods cannot introduce type parameters.
type Collection[T comparable] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection holding a copy of items.
func New[T comparable](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a copy of items.
func From[T comparable](items []T) *Collection[T] {
	return wrap(slices.Clone(items))
}

// Empty creates an empty Collection.
func Empty[T comparable]() *Collection[T] {
	return wrap[T](nil)
}

// wrap takes ownership of items.
func wrap[T comparable](items []T) *Collection[T] {
	if items == nil {
		items = []T{}
	}
	return &Collection[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All yields (index, value) pairs in order.
func (c *Collection[T]) All() iter.Seq2[int, T] { return Seq[T](c.items).All() }

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// IsEmpty reports whether the collection has no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Items returns a copy of the underlying slice.
func (c *Collection[T]) Items() []T { return slices.Clone(c.items) }

// First returns the first item, or false when the collection is empty.
func (c *Collection[T]) First() (T, bool) { return arr.First(c.items) }

// Last returns the last item, or false when the collection is empty.
func (c *Collection[T]) Last() (T, bool) { return arr.Last(c.items) }

// Take returns the first n items. A non-positive n gives an empty collection.
func (c *Collection[T]) Take(n int) *Collection[T] { return wrap(arr.FirstN(c.items, n)) }

// TakeLast returns the last n items in their existing order.
func (c *Collection[T]) TakeLast(n int) *Collection[T] { return wrap(arr.LastN(c.items, n)) }

// IndexOf returns the position of the first item equal to target, or -1.
func (c *Collection[T]) IndexOf(target T) int { return arr.IndexOf(c.items, target) }

// Contains reports whether any item equals target.
func (c *Collection[T]) Contains(target T) bool { return Contains[int, T](c, target) }

// ToJSON serialises the items as a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) { return json.Marshal(c.items) }

// String returns the JSON form of the items, falling back to %v when they
// cannot be marshalled.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// Tap calls fn(c) for side effects and returns c.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the items pred accepts.
func (c *Collection[T]) Filter(pred func(T) bool) *Collection[T] {
	return wrap(arr.Filter(c.items, pred))
}

// Reject drops the items pred accepts.
func (c *Collection[T]) Reject(pred func(T) bool) *Collection[T] {
	return wrap(arr.Reject(c.items, pred))
}

// Every reports whether every item passes. Without a predicate it tests
// truthiness.
func (c *Collection[T]) Every(preds ...func(T) bool) bool { return arr.Every(c.items, preds...) }

// Some reports whether at least one item passes. Without a predicate it
// tests truthiness.
func (c *Collection[T]) Some(preds ...func(T) bool) bool { return arr.Some(c.items, preds...) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item. Use arr.Map to change the element type.
func (c *Collection[T]) Map(fn func(T) T) *Collection[T] {
	return wrap(arr.Map(c.items, fn))
}

// Reduce folds the items left to right. Without initial the accumulator
// starts at the zero value of T, not the first item.
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial ...T) T {
	return arr.Reduce(c.items, fn, initial...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Set Operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique keeps the first occurrence of each item.
func (c *Collection[T]) Unique() *Collection[T] { return wrap(arr.Uniq(c.items)) }

// Intersect keeps the items of c present in every other collection.
// Duplicates in c are kept.
func (c *Collection[T]) Intersect(others ...*Collection[T]) *Collection[T] {
	return wrap(arr.Intersection(c.with(others)...))
}

// Diff keeps the items of c present in none of the other collections.
func (c *Collection[T]) Diff(others ...*Collection[T]) *Collection[T] {
	return wrap(arr.Difference(c.items, c.with(others)[1:]...))
}

// Zip pairs the items of c with those of others by position. The result is
// as long as the longest input; short inputs leave empty slots.
func (c *Collection[T]) Zip(others ...*Collection[T]) [][]arr.Slot[T] {
	return arr.Zip(c.with(others)...)
}

func (c *Collection[T]) with(others []*Collection[T]) [][]T {
	seqs := make([][]T, 0, len(others)+1)
	seqs = append(seqs, c.items)
	for _, o := range others {
		if o == nil {
			seqs = append(seqs, nil)
			continue
		}
		seqs = append(seqs, o.items)
	}
	return seqs
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns the items ordered by cmp. The sort is stable.
func (c *Collection[T]) Sort(cmp func(a, b T) int) *Collection[T] {
	out := slices.Clone(c.items)
	slices.SortStableFunc(out, cmp)
	return wrap(out)
}

// Reverse returns the items in reverse order.
func (c *Collection[T]) Reverse() *Collection[T] {
	out := slices.Clone(c.items)
	slices.Reverse(out)
	return wrap(out)
}

// Shuffle returns a uniformly random permutation of the items.
func (c *Collection[T]) Shuffle() *Collection[T] { return wrap(arr.Shuffle(c.items)) }

// ShuffleWith is [Collection.Shuffle] drawing from r.
func (c *Collection[T]) ShuffleWith(r *rand.Rand) *Collection[T] {
	return wrap(arr.ShuffleWith(c.items, r))
}
