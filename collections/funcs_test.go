package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/collections"
)

func TestEachSequence(t *testing.T) {
	letters := collections.FromSlice([]string{"a", "b", "c"})

	var keys []int
	var values []string
	collections.Each(letters, func(v string, k int, coll collections.Iterable[int, string]) {
		require.Equal(t, letters, coll)
		keys = append(keys, k)
		values = append(values, v)
	})
	require.Equal(t, []int{0, 1, 2}, keys)
	require.Equal(t, []string{"a", "b", "c"}, values)
}

func TestEachMapping(t *testing.T) {
	ages := map[string]int{"moe": 40, "larry": 50}

	seen := map[string]int{}
	collections.Each(collections.FromMap(ages), func(v int, k string, _ collections.Iterable[string, int]) {
		seen[k] = v
	})
	require.Equal(t, ages, seen)
}

func TestEachEmpty(t *testing.T) {
	calls := 0
	collections.Each(collections.FromSlice([]int(nil)), func(int, int, collections.Iterable[int, int]) { calls++ })
	collections.Each(collections.FromMap(map[int]int{}), func(int, int, collections.Iterable[int, int]) { calls++ })
	require.Zero(t, calls)
}

func TestContains(t *testing.T) {
	require.True(t, collections.Contains(collections.FromSlice([]int{1, 2, 3}), 2))
	require.False(t, collections.Contains(collections.FromSlice([]int{1, 2, 3}), 4))
	require.True(t, collections.Contains(collections.FromMap(map[string]int{"a": 4}), 4))
	require.False(t, collections.Contains(collections.FromMap(map[string]int{"a": 4}), 0))
	require.False(t, collections.Contains(collections.FromMap(map[string]string{"a": "b"}), "a"), "keys are not values")
}

func TestContainsUncomparableValues(t *testing.T) {
	coll := collections.FromSlice([]any{[]int{1}, map[string]int{}, 3})
	require.True(t, collections.Contains(coll, any(3)))
	require.False(t, collections.Contains(coll, any([]int{1})))
	require.False(t, collections.Contains(coll, any(nil)))
	require.True(t, collections.Contains(collections.FromSlice([]any{nil}), any(nil)))
}

type boxed struct{ v any }

func TestContainsNestedUncomparableValues(t *testing.T) {
	coll := collections.FromSlice([]any{boxed{[]int{1}}, [1]any{map[string]int{}}, boxed{2}})

	require.NotPanics(t, func() {
		require.False(t, collections.Contains(coll, any(boxed{[]int{1}})))
		require.False(t, collections.Contains(coll, any([1]any{map[string]int{}})))
	})
	require.True(t, collections.Contains(coll, any(boxed{2})))
	require.False(t, collections.Contains(coll, any(boxed{3})))
}

func TestFilter(t *testing.T) {
	odd := func(v, _ int) bool { return v%2 == 1 }
	require.Equal(t, []int{1, 3}, collections.Filter(collections.FromSlice([]int{1, 2, 3}), odd))
	require.ElementsMatch(t, []int{1, 3}, collections.Filter(collections.FromMap(map[int]int{10: 1, 20: 2, 30: 3}), odd))

	byKey := collections.Filter(collections.FromSlice([]string{"a", "b", "c"}), func(_ string, i int) bool { return i > 0 })
	require.Equal(t, []string{"b", "c"}, byKey)
}

func TestEveryAndSome(t *testing.T) {
	positive := func(n int) bool { return n > 0 }
	m := collections.FromMap(map[string]int{"a": 1, "b": 0})

	require.False(t, collections.Every(m, positive))
	require.True(t, collections.Some(m, positive))
	require.True(t, collections.Every(m))
	require.True(t, collections.Some(m))
	require.False(t, collections.Some(collections.FromSlice([]int{0, 0})))
	require.True(t, collections.Every(collections.FromSlice([]int{}), positive))
	require.False(t, collections.Some(collections.FromSlice([]int{}), positive))
}

func TestReduce(t *testing.T) {
	add := func(acc, n int) int { return acc + n }
	require.Equal(t, 6, collections.Reduce(collections.FromSlice([]int{1, 2, 3}), add))
	require.Equal(t, 16, collections.Reduce(collections.FromSlice([]int{1, 2, 3}), add, 10))
	require.Equal(t, 6, collections.Reduce(collections.FromMap(map[string]int{"a": 1, "b": 2, "c": 3}), add))
}

func TestKeysValuesEntries(t *testing.T) {
	s := collections.FromSlice([]string{"x", "y"})
	require.Equal(t, []int{0, 1}, collections.Keys(s))
	require.Equal(t, []string{"x", "y"}, collections.Values(s))
	require.Equal(t, []collections.Entry[int, string]{{Key: 0, Value: "x"}, {Key: 1, Value: "y"}}, collections.Entries(s))

	m := collections.FromMap(map[string]bool{"on": true, "off": false})
	require.ElementsMatch(t, []string{"on", "off"}, collections.Keys(m))
	require.ElementsMatch(t, []bool{true, false}, collections.Values(m))
	require.Len(t, collections.Entries(m), 2)
}

func TestEntryString(t *testing.T) {
	require.Equal(t, "a: 1", collections.Entry[string, int]{Key: "a", Value: 1}.String())
}

func TestGroupByAndCountBy(t *testing.T) {
	words := collections.FromSlice([]string{"one", "two", "three", "four", "six"})
	length := func(w string) int { return len(w) }

	require.Equal(t, map[int][]string{
		3: {"one", "two", "six"},
		5: {"three"},
		4: {"four"},
	}, collections.GroupBy(words, length))
	require.Equal(t, map[int]int{3: 3, 5: 1, 4: 1}, collections.CountBy(words, length))
}
