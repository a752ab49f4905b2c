// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opMul     = "Mul"
	opFlatten = "Flatten"
)

// matrixErrorf tags an error with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product C = A·B as a fresh *Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: fast-path when both are *Dense: i→k→j loops over flat buffers.
//   - Stage 3: generic fallback via At/Set (i→j→k).
//
// Every product A[i,k]·B[k,j] is accumulated, zeros included, so 0·±Inf and
// 0·NaN yield NaN exactly as IEEE-754 multiplication does.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; identical inputs give bitwise identical outputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				rowA, rowR := i*aCols, i*bCols
				for k := 0; k < aCols; k++ {
					av := da.data[rowA+k]
					rowB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			var acc float64
			for k := 0; k < aCols; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Flatten returns the row-major contents of m as a fresh slice.
// Dense fast-path copies the buffer; other implementations are read via At.
// Complexity: O(r*c).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Data(), nil
	}

	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opFlatten, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}
