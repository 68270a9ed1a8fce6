// Package obj provides merge helpers for maps.
//
// # Extend and Defaults
//
// Both helpers mutate and return their destination, like their Laravel and
// underscore namesakes:
//
//	opts := obj.Defaults(userOpts, map[string]any{"retries": 3, "verbose": false})
//
// [Extend] lets later sources win; [Defaults] fills only keys that are absent,
// so a key already present with a zero or nil value is kept.
//
// Merges are shallow: nested maps are shared, not copied.
package obj
