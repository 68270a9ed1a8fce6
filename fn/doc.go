// Package fn provides function combinators that wrap a function together
// with private state: run-once, memoization and delayed invocation.
//
// # Run once
//
// [Once] returns an [OnceFunc] that runs the wrapped function on its first
// call and replays that result afterwards:
//
//	setup := fn.Once(func(path string) error { return load(path) })
//	_ = setup.Call("a.toml") // loads
//	_ = setup.Call("b.toml") // returns the first error; b.toml is never read
//
// # Memoize
//
// [Memoize] caches results per argument for the lifetime of the returned
// [Memo]. There is no eviction.
//
// # Delay
//
// [Delay] and [DelayFunc] schedule a call on the package [Scheduler] and
// return a [Handle]. Cancelling the handle before the wait elapses guarantees
// the call never runs; otherwise it runs exactly once, no earlier than the
// wait. Create a dedicated Scheduler with [NewScheduler] to inject a clock or
// logger:
//
//	mock := clock.NewMock()
//	s := fn.NewScheduler(fn.WithClock(mock), fn.WithLogger(logger))
//	h := s.After(time.Second, flush)
//	mock.Add(time.Second) // flush runs
//	<-h.Done()
//
// All wrappers are safe for concurrent use.
package fn
