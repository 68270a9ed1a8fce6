package fn_test

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/hasbyte1/go-underscore/fn"
)

func ExampleOnce() {
	greet := fn.Once(func(name string) string { return "hello " + name })
	fmt.Println(greet.Call("moe"))
	fmt.Println(greet.Call("curly"))
	// Output:
	// hello moe
	// hello moe
}

func ExampleMemoize() {
	calls := 0
	square := fn.Memoize(func(n int) int {
		calls++
		return n * n
	})
	fmt.Println(square.Call(4), square.Call(4), square.Call(5), calls)
	// Output: 16 16 25 2
}

func ExampleScheduler_After() {
	mock := clock.NewMock()
	s := fn.NewScheduler(fn.WithClock(mock))

	h := s.After(time.Second, func() { fmt.Println("fired") })
	mock.Add(time.Second)
	<-h.Done()

	cancelled := s.After(time.Second, func() { fmt.Println("never") })
	fmt.Println(cancelled.Cancel())
	mock.Add(time.Second)
	// Output:
	// fired
	// true
}
