package memstore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt64CodecRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MinInt64, math.MaxInt64, 42, -42} {
		require.Equal(t, v, decodeInt64(encodeInt64(v)), "value %d", v)
	}
}

func TestInt64CodecPreservesOrder(t *testing.T) {
	values := []int64{math.MinInt64, -100, -1, 0, 1, 100, math.MaxInt64}
	for i := 1; i < len(values); i++ {
		require.Less(t, encodeInt64(values[i-1]), encodeInt64(values[i]))
	}
}

func TestFloat64CodecRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1.5, -1.5, math.MaxFloat64, -math.MaxFloat64, 3.14159} {
		require.Equal(t, v, decodeFloat64(encodeFloat64(v)))
	}
}

func TestFloat64CodecPreservesOrder(t *testing.T) {
	values := []float64{-math.MaxFloat64, -100.5, -0.001, 0, 0.001, 100.5, math.MaxFloat64}
	for i := 1; i < len(values); i++ {
		require.Less(t, encodeFloat64(values[i-1]), encodeFloat64(values[i]))
	}
}
