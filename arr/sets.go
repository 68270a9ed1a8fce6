package arr

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
//
// Equality is Go's ==: values for primitives and plain structs, identity for
// pointers. Nothing here compares deeply.
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, keeping the first
// occurrence of each value in its original relative order. items is not
// modified; see [UniqInPlace] for the mutating variant.
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqInPlace removes duplicates from items by compacting its backing array.
// It returns the shortened slice and zeroes the vacated tail, so callers must
// use the return value, as with [slices.Compact]. The caller's original slice
// header still spans the old length.
func UniqInPlace[S ~[]T, T comparable](items S) S {
	seen := make(map[T]struct{}, len(items))
	n := 0
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		items[n] = item
		n++
	}
	clear(items[n:])
	return items[:n]
}

// Intersection returns the elements of seqs[0] that occur in every other
// sequence, in seqs[0]'s order. Duplicates within seqs[0] are kept as they
// are. Zero sequences yield an empty slice.
//
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}, []int{2, 3}) // → [2 3]
func Intersection[T comparable](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	sets := make([]map[T]struct{}, len(seqs)-1)
	for i, seq := range seqs[1:] {
		sets[i] = toSet(seq)
	}
	return Filter(seqs[0], func(item T) bool {
		for _, set := range sets {
			if _, ok := set[item]; !ok {
				return false
			}
		}
		return true
	})
}

// Difference returns the elements of first that occur in none of rest,
// preserving first's order and any duplicates that survive.
//
//	arr.Difference([]int{1, 2, 2, 3, 4}, []int{2, 4}) // → [1 3]
//	arr.Difference([]int{0, 1, 1}, []int{5})          // → [0 1 1]
func Difference[T comparable](first []T, rest ...[]T) []T {
	exclude := make(map[T]struct{})
	for _, seq := range rest {
		for _, item := range seq {
			exclude[item] = struct{}{}
		}
	}
	return Filter(first, func(item T) bool {
		_, found := exclude[item]
		return !found
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
