// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom checks shape validation and that the input is copied.
func TestNewDenseFrom(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)
	src[0] = 100 // must not leak into m

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
}

func TestDataIsCopy(t *testing.T) {
	m, err := matrix.NewDenseFrom(1, 2, []float64{1, 2})
	require.NoError(t, err)

	d := m.Data()
	d[0] = 9
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestString(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2.5, 3, 4})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}
