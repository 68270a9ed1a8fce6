package obj

// Extend copies every key of every source into dst and returns dst. Later
// sources overwrite earlier ones, and all of them overwrite keys already in
// dst. Nil sources are skipped. When dst is nil a new map is allocated and
// returned, since a nil map cannot be written to.
func Extend[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults fills in the keys of dst that are missing, taking each from the
// first source that provides it. Keys already present in dst are never
// overwritten, even when they hold the zero value. Returns dst, allocating
// it when nil.
func Defaults[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range srcs {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}
