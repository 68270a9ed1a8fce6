package fn

import "sync"

// OnceFunc wraps a function so that it runs at most once. Create it with
// [Once].
type OnceFunc[A, R any] struct {
	mu     sync.Mutex
	f      func(A) R
	done   bool
	result R
}

// Once returns a wrapper around f. The first [OnceFunc.Call] runs f with its
// argument; every later call returns that first result and ignores its own
// argument.
//
//	initialize := fn.Once(func(cfg Config) *Client { return dial(cfg) })
//	c := initialize.Call(cfg) // dials
//	c = initialize.Call(other) // same client, other is ignored
func Once[A, R any](f func(A) R) *OnceFunc[A, R] {
	return &OnceFunc[A, R]{f: f}
}

// Call runs the wrapped function on the first call and returns its cached
// result on every call. If the wrapped function panics, it is still
// considered done and later calls return the zero value of R.
//
// Calling Call from inside the wrapped function deadlocks.
func (o *OnceFunc[A, R]) Call(arg A) R {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.done {
		f := o.f
		o.f = nil
		o.done = true
		o.result = f(arg)
	}
	return o.result
}

// Done reports whether the wrapped function has been called.
func (o *OnceFunc[A, R]) Done() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.done
}

// Func returns Call as a plain function value.
func (o *OnceFunc[A, R]) Func() func(A) R { return o.Call }
