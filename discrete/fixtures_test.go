// SPDX-License-Identifier: MIT

package discrete_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/discrete"
)

func seq(from, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(from + i)
	}
	return out
}

func mustNew(t *testing.T, scope []string, card []int, values []float64, opts ...discrete.Option) *discrete.Factor {
	t.Helper()
	f, err := discrete.New(scope, card, values, opts...)
	require.NoError(t, err)
	return f
}

// phi1 is φ(x1:2, x2:3, x3:2) = 0..11.
func phi1(t *testing.T) *discrete.Factor {
	return mustNew(t, []string{"x1", "x2", "x3"}, []int{2, 3, 2}, seq(0, 12))
}

// productWant is φ1(x1,x2,x3)·φ2(x3,x4,x1) laid out over [x1 x2 x3 x4].
var productWant = []float64{
	0, 0, 4, 6,
	0, 4, 12, 18,
	0, 8, 20, 30,
	6, 18, 35, 49,
	8, 24, 45, 63,
	10, 30, 55, 77,
}

// divideWant is φ1(x1,x2,x3) / φ2(x3,x1) with φ2 = 1..4.
var divideWant = []float64{
	0, 1.0 / 3,
	2, 1,
	4, 5.0 / 3,
	3, 1.75,
	4, 2.25,
	5, 2.75,
}
