package obj_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/obj"
)

func TestExtend(t *testing.T) {
	dst := map[string]int{"a": 1, "b": 2}
	got := obj.Extend(dst, map[string]int{"b": 20, "c": 3}, nil, map[string]int{"c": 30})

	require.Equal(t, map[string]int{"a": 1, "b": 20, "c": 30}, got)
	require.Equal(t, got, dst, "dst is mutated in place")
}

func TestExtendNilDestination(t *testing.T) {
	got := obj.Extend(nil, map[string]string{"k": "v"})
	require.Equal(t, map[string]string{"k": "v"}, got)

	require.Empty(t, obj.Extend[map[string]int](nil))
}

func TestExtendNamedMapType(t *testing.T) {
	type headers map[string]string
	h := headers{"Accept": "*/*"}
	got := obj.Extend(h, headers{"Accept": "text/plain"})
	require.IsType(t, headers{}, got)
	require.Equal(t, "text/plain", h["Accept"])
}

func TestDefaults(t *testing.T) {
	dst := map[string]any{"flavor": "chocolate", "sprinkles": nil, "count": 0}
	got := obj.Defaults(dst,
		map[string]any{"flavor": "vanilla", "sprinkles": "lots", "size": "large"},
		map[string]any{"size": "small", "cone": true},
	)

	require.Equal(t, map[string]any{
		"flavor":    "chocolate",
		"sprinkles": nil,
		"count":     0,
		"size":      "large",
		"cone":      true,
	}, got)
	require.Equal(t, got, dst)
}

func TestDefaultsNilDestination(t *testing.T) {
	got := obj.Defaults(nil, map[int]int{1: 1}, map[int]int{1: 2, 2: 2})
	require.Equal(t, map[int]int{1: 1, 2: 2}, got)
}

func ExampleDefaults() {
	opts := obj.Defaults(map[string]int{"retries": 5}, map[string]int{"retries": 3, "timeout": 30})
	fmt.Println(opts["retries"], opts["timeout"])
	// Output: 5 30
}

func ExampleExtend() {
	opts := obj.Extend(map[string]int{"retries": 5}, map[string]int{"retries": 3, "timeout": 30})
	fmt.Println(opts["retries"], opts["timeout"])
	// Output: 3 30
}
