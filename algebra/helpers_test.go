// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/discrete"
	"github.com/katalvlaran/lvpgm/factor"
)

const tol = 1e-9

// otherRep is a second representation: it satisfies the contract through the
// embedded dense factor but is a distinct concrete type.
type otherRep struct{ *discrete.Factor }

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

func asDense(t *testing.T, phi factor.Factor) *discrete.Factor {
	t.Helper()
	d, ok := phi.(*discrete.Factor)
	require.Truef(t, ok, "want *discrete.Factor, got %T", phi)
	return d
}

// requireEqual compares two factors up to variable order.
func requireEqual(t *testing.T, want, got *discrete.Factor) {
	t.Helper()
	require.Truef(t, want.Equal(got, tol), "factors differ:\nwant %v %v\ngot  %v %v",
		want.Scope(), want.Values(), got.Scope(), got.Values())
}
