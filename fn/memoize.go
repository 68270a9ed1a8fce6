package fn

import "sync"

// Memo caches the results of a single-argument function by argument. Create
// it with [Memoize]. Entries are never evicted.
type Memo[K comparable, R any] struct {
	mu    sync.Mutex
	f     func(K) R
	cache map[K]R
}

// Memoize returns a caching wrapper around f.
//
//	var fib *fn.Memo[int, int]
//	fib = fn.Memoize(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib.Call(n-1) + fib.Call(n-2)
//	})
func Memoize[K comparable, R any](f func(K) R) *Memo[K, R] {
	return &Memo[K, R]{f: f, cache: make(map[K]R)}
}

// Call returns the cached result for key, computing and storing it on first
// use. The lock is not held while f runs, so f may call back into the same
// Memo. Two goroutines racing on a new key may both run f; the first result
// stored wins and is returned to both.
func (m *Memo[K, R]) Call(key K) R {
	m.mu.Lock()
	if r, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return r
	}
	m.mu.Unlock()

	r := m.f(key)

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.cache[key]; ok {
		return cached
	}
	m.cache[key] = r
	return r
}

// Len returns the number of cached entries.
func (m *Memo[K, R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// Func returns Call as a plain function value.
func (m *Memo[K, R]) Func() func(K) R { return m.Call }
