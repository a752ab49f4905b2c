// SPDX-License-Identifier: MIT

package algebra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/algebra"
	"github.com/katalvlaran/lvpgm/factor"
)

func TestLogSum_EqualsLogOfProduct(t *testing.T) {
	a := mustNew(t, []string{"x", "y"}, []int{2, 2}, []float64{0.1, 0.2, 0.3, 0.4})
	b := mustNew(t, []string{"y", "z"}, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	c := mustNew(t, []string{"z"}, []int{3}, []float64{0.5, 0.25, 0.25})

	got, err := algebra.LogSum(a, b, c)
	require.NoError(t, err)

	prod, err := algebra.Product(a, b, c)
	require.NoError(t, err)
	want, err := prod.Log(false)
	require.NoError(t, err)

	requireEqual(t, asDense(t, want), asDense(t, got))
	assert.Equal(t, []string{"x", "y", "z"}, got.Scope())
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, a.Values(), "operands must be untouched")
}

func TestLogSum_SingleOperand(t *testing.T) {
	a := mustNew(t, []string{"x"}, []int{2}, []float64{1, math.E})

	got, err := algebra.LogSum(a)
	require.NoError(t, err)
	d := asDense(t, got)
	require.NotSame(t, a, d)
	assert.InDeltaSlice(t, []float64{0, 1}, d.Values(), tol)
	assert.Equal(t, []float64{1, math.E}, a.Values())
}

func TestLogSum_Guards(t *testing.T) {
	a := mustNew(t, []string{"x"}, []int{2}, []float64{1, 2})

	_, err := algebra.LogSum()
	require.ErrorIs(t, err, factor.ErrNoFactors)
	_, err = algebra.LogSum(a, nil)
	require.ErrorIs(t, err, factor.ErrNotFactor)
	_, err = algebra.LogSum(otherRep{a}, a)
	require.ErrorIs(t, err, factor.ErrMixedRepresentation)
}
