package truth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/internal/truth"
)

type point struct{ X, Y int }

func TestOf(t *testing.T) {
	var nilPtr *point
	var nilSlice []int
	var nilAny any

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil interface", nilAny, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"string", "a", true},
		{"zero int", 0, false},
		{"int", -3, true},
		{"zero uint8", uint8(0), false},
		{"zero float", 0.0, false},
		{"NaN", math.NaN(), false},
		{"float32 NaN", float32(math.NaN()), false},
		{"float", 0.5, true},
		{"nil pointer", nilPtr, false},
		{"pointer", &point{}, true},
		{"nil slice", nilSlice, false},
		{"empty slice", []int{}, true},
		{"zero struct", point{}, false},
		{"struct", point{X: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, truth.Of(tt.v))
		})
	}
}

func TestOfTyped(t *testing.T) {
	require.False(t, truth.Of[int64](0))
	require.True(t, truth.Of[int64](7))
	require.False(t, truth.Of[float64](math.NaN()))
	require.True(t, truth.Of("x"))
}
