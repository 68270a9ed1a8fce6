package fn

import (
	"context"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// ─────────────────────────────────────────────────────────────────────────────
// Scheduler
// ─────────────────────────────────────────────────────────────────────────────

// Scheduler runs functions once after a delay. Every scheduled call gets a
// [Handle] that can cancel it before it fires.
//
// The zero value is not usable; create one with [NewScheduler].
type Scheduler struct {
	clock  clock.Clock
	logger *slog.Logger
}

// Option configures a [Scheduler].
type Option func(*Scheduler)

// WithClock sets the time source. Tests pass a [clock.Mock] to fire timers
// deterministically. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// WithLogger sets the logger used to report panics in delayed calls.
// Defaults to [slog.Default] at the time of logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// NewScheduler creates a Scheduler with the given options applied.
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{clock: clock.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultScheduler = NewScheduler()

// Default returns the Scheduler used by [Delay] and [DelayFunc].
func Default() *Scheduler { return defaultScheduler }

// After schedules f to run once, on its own goroutine, no earlier than wait
// from now. A non-positive wait schedules it as soon as possible.
//
// A panic in f is recovered and logged at error level; the handle still
// completes.
func (s *Scheduler) After(wait time.Duration, f func()) *Handle {
	h := &Handle{done: make(chan struct{})}
	h.timer = s.clock.AfterFunc(wait, func() { s.fire(h, f) })
	return h
}

// AfterContext is [Scheduler.After] with the call also cancelled when ctx is
// done before it fires.
func (s *Scheduler) AfterContext(ctx context.Context, wait time.Duration, f func()) *Handle {
	h := s.After(wait, f)
	if ctx.Done() == nil {
		return h
	}
	go func() {
		select {
		case <-ctx.Done():
			h.Cancel()
		case <-h.done:
		}
	}()
	return h
}

func (s *Scheduler) fire(h *Handle, f func()) {
	if !h.state.CompareAndSwap(statePending, stateRunning) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log().Error("delayed call panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
		h.state.Store(stateFired)
		close(h.done)
	}()
	f()
}

func (s *Scheduler) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}

// ─────────────────────────────────────────────────────────────────────────────
// Handle
// ─────────────────────────────────────────────────────────────────────────────

const (
	statePending int32 = iota
	stateCancelled
	stateRunning
	stateFired
)

// Handle is the cancellation token of one scheduled call.
type Handle struct {
	state atomic.Int32
	timer *clock.Timer
	done  chan struct{}
}

// Cancel prevents the call from running. It reports true when it did so, and
// false when the call had already started, finished or been cancelled.
func (h *Handle) Cancel() bool {
	if !h.state.CompareAndSwap(statePending, stateCancelled) {
		return false
	}
	h.timer.Stop()
	close(h.done)
	return true
}

// Done returns a channel that is closed once the call has returned or been
// cancelled.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Fired reports whether the call has started running.
func (h *Handle) Fired() bool { return h.state.Load() >= stateRunning }

// Cancelled reports whether [Handle.Cancel] stopped the call.
func (h *Handle) Cancelled() bool { return h.state.Load() == stateCancelled }

// ─────────────────────────────────────────────────────────────────────────────
// Package-level helpers
// ─────────────────────────────────────────────────────────────────────────────

// DelayFunc schedules f on the [Default] scheduler after wait.
func DelayFunc(f func(), wait time.Duration) *Handle {
	return defaultScheduler.After(wait, f)
}

// Delay schedules f(args...) on the [Default] scheduler after wait. args are
// copied, so later changes to the caller's slice do not reach f.
//
//	h := fn.Delay(func(names ...string) { greet(names) }, 500*time.Millisecond, "a", "b")
//	h.Cancel() // before 500ms: greet never runs
func Delay[A any](f func(...A), wait time.Duration, args ...A) *Handle {
	args = slices.Clone(args)
	return defaultScheduler.After(wait, func() { f(args...) })
}
