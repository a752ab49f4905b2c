// SPDX-License-Identifier: MIT

package discrete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/discrete"
	"github.com/katalvlaran/lvpgm/factor"
)

func TestMarginalize(t *testing.T) {
	f := phi1(t)

	got, err := f.Marginalize([]string{"x2"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x3"}, got.Scope())
	assert.Equal(t, []int{2, 2}, got.Cardinality())
	assert.Equal(t, []float64{6, 9, 24, 27}, got.Values())
	assert.NotContains(t, got.StateNames(), "x2")
	assert.Equal(t, []string{"x1", "x2", "x3"}, f.Scope())

	all, err := f.Marginalize([]string{"x1", "x2", "x3"}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{66}, all.Values())

	_, err = f.Marginalize([]string{"nope"}, false)
	require.ErrorIs(t, err, factor.ErrUnknownVariable)
}

func TestNormalize(t *testing.T) {
	f := mustNew(t, []string{"a"}, []int{4}, []float64{1, 1, 1, 1})
	got, err := f.Normalize(false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, got.Values())

	zero := mustNew(t, []string{"a"}, []int{2}, []float64{0, 0})
	_, err = zero.Normalize(false)
	require.ErrorIs(t, err, discrete.ErrZeroMass)
}

func TestReduce(t *testing.T) {
	f := mustNew(t, []string{"x1", "x2", "x3"}, []int{2, 3, 2}, seq(0, 12),
		discrete.WithStateNames(map[string][]string{"x2": {"lo", "mid", "hi"}}))

	got, err := f.Reduce(map[string]string{"x2": "mid"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x3"}, got.Scope())
	assert.Equal(t, []float64{2, 3, 8, 9}, got.Values())

	point, err := f.Reduce(map[string]string{"x1": "1", "x2": "hi", "x3": "0"}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, point.Values())

	_, err = f.Reduce(map[string]string{"x9": "0"}, false)
	require.ErrorIs(t, err, factor.ErrUnknownVariable)
	_, err = f.Reduce(map[string]string{"x2": "max"}, false)
	require.ErrorIs(t, err, discrete.ErrUnknownState)
}
