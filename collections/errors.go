package collections

import "errors"

// ErrNotIterable is returned by [Of] when the value is not a slice, array or
// map.
var ErrNotIterable = errors.New("collections: value is not a slice, array or map")
