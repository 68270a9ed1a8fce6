package fn_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/fn"
)

func TestOnce(t *testing.T) {
	calls := 0
	inc := fn.Once(func(n int) int {
		calls++
		return n * 10
	})

	require.False(t, inc.Done())
	require.Equal(t, 10, inc.Call(1))
	require.Equal(t, 10, inc.Call(2), "later arguments are ignored")
	require.Equal(t, 10, inc.Func()(3))
	require.Equal(t, 1, calls)
	require.True(t, inc.Done())
}

func TestOnceConcurrent(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	once := fn.Once(func(struct{}) string {
		mu.Lock()
		calls++
		mu.Unlock()
		return "ready"
	})

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "ready", once.Call(struct{}{}))
		}()
	}
	wg.Wait()
	require.Equal(t, 1, calls)
}

func TestOncePanicLeavesZeroValue(t *testing.T) {
	calls := 0
	once := fn.Once(func(int) int {
		calls++
		panic("boom")
	})

	require.Panics(t, func() { once.Call(1) })
	require.NotPanics(t, func() { require.Zero(t, once.Call(2)) })
	require.Equal(t, 1, calls)
}
