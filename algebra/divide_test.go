// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/algebra"
	"github.com/katalvlaran/lvpgm/discrete"
	"github.com/katalvlaran/lvpgm/factor"
)

func TestDivide_ReferenceFixture(t *testing.T) {
	p1 := mustNew(t, []string{"x1", "x2", "x3"}, []int{2, 3, 2}, seq(0, 12))
	p2 := mustNew(t, []string{"x3", "x1"}, []int{2, 2}, seq(1, 4))

	got, err := algebra.Divide(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "x3"}, got.Scope())
	assert.Equal(t, []int{2, 3, 2}, got.Cardinality())

	want := []float64{0, 1.0 / 3, 2, 1, 4, 5.0 / 3, 3, 1.75, 4, 2.25, 5, 2.75}
	if diff := cmp.Diff(want, got.Values(), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("divide mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, seq(0, 12), p1.Values(), "dividend must be untouched")
}

func TestDivide_InvertsProduct(t *testing.T) {
	p1 := mustNew(t, []string{"A", "B"}, []int{2, 3}, []float64{0.1, 0, 0.3, 0.2, 0.25, 0.15})
	p2 := mustNew(t, []string{"B"}, []int{3}, []float64{0.5, 2, 4})

	prod, err := algebra.Product(p1, p2)
	require.NoError(t, err)
	back, err := algebra.Divide(prod, p2)
	require.NoError(t, err)
	requireEqual(t, p1, asDense(t, back))
}

func TestDivide_Guards(t *testing.T) {
	p := mustNew(t, []string{"a"}, []int{2}, seq(1, 2))

	_, err := algebra.Divide(nil, p)
	require.ErrorIs(t, err, factor.ErrNotFactor)
	_, err = algebra.Divide(p, nil)
	require.ErrorIs(t, err, factor.ErrNotFactor)
	_, err = algebra.Divide(p, otherRep{p})
	require.ErrorIs(t, err, factor.ErrMixedRepresentation)
}

func TestDivide_DelegatesScopeCheck(t *testing.T) {
	num := mustNew(t, []string{"a"}, []int{2}, seq(1, 2))
	den := mustNew(t, []string{"a", "b"}, []int{2, 2}, seq(1, 4))

	_, err := algebra.Divide(num, den)
	require.ErrorIs(t, err, discrete.ErrScopeNotSubset)
}
