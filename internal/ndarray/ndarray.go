// SPDX-License-Identifier: MIT

// Package ndarray holds the row-major N-d index arithmetic shared by the
// contraction backend and the dense factor representation.
//
// Layout:
//   - data is a flat []float64; axis len(shape)-1 varies fastest.
//   - offset(idx) = Σ idx[k]*strides[k], strides from Strides(shape).
//   - An empty shape is a scalar holding exactly one value.
//
// Every function allocates its output; inputs are never written.
package ndarray

// Size returns Π shape (1 for a scalar shape).
// Complexity: O(len(shape)).
func Size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// Strides returns row-major strides for shape.
// Complexity: O(len(shape)).
func Strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= shape[k]
	}

	return st
}

// Walk visits every index of shape in row-major order. For each position it
// calls fn with the flat output position and, per operand, the offset
// Σ idx[k]*strides[op][k]. A zero stride broadcasts the operand along that axis.
// The offs slice is reused between calls; fn must not retain it.
// Complexity: O(Size(shape) * len(strides)).
func Walk(shape []int, strides [][]int, fn func(pos int, offs []int)) {
	n := Size(shape)
	idx := make([]int, len(shape))
	offs := make([]int, len(strides))

	for pos := 0; pos < n; pos++ {
		fn(pos, offs)

		// Odometer step: bump the fastest axis and carry.
		for ax := len(shape) - 1; ax >= 0; ax-- {
			idx[ax]++
			for k := range strides {
				offs[k] += strides[k][ax]
			}
			if idx[ax] < shape[ax] {
				break
			}
			for k := range strides {
				offs[k] -= strides[k][ax] * shape[ax]
			}
			idx[ax] = 0
		}
	}
}

// Gather materializes out[idx] = src[Σ idx[k]*strides[k]] over shape.
// With permuted strides it transposes; with zero strides it broadcasts.
// Complexity: O(Size(shape)).
func Gather(src []float64, shape []int, strides []int) []float64 {
	out := make([]float64, Size(shape))
	Walk(shape, [][]int{strides}, func(pos int, offs []int) {
		out[pos] = src[offs[0]]
	})

	return out
}

// Permute transposes data so that output axis k is input axis perm[k].
// Returns the new data and shape. perm must be a permutation of 0..len(shape)-1.
// Complexity: O(Size(shape)).
func Permute(data []float64, shape []int, perm []int) ([]float64, []int) {
	in := Strides(shape)
	outShape := make([]int, len(perm))
	st := make([]int, len(perm))
	for k, p := range perm {
		outShape[k] = shape[p]
		st[k] = in[p]
	}

	return Gather(data, outShape, st), outShape
}

// SumAxes sums data over every axis with drop[k] == true. The kept axes keep
// their relative order. Dropping every axis yields a scalar (one value).
// Complexity: O(Size(shape)).
func SumAxes(data []float64, shape []int, drop []bool) ([]float64, []int) {
	kept := make([]int, 0, len(shape))
	for k, d := range shape {
		if !drop[k] {
			kept = append(kept, d)
		}
	}
	keptStrides := Strides(kept)

	// Map every input axis onto the output: dropped axes contribute 0.
	st := make([]int, len(shape))
	j := 0
	for k := range shape {
		if drop[k] {
			continue
		}
		st[k] = keptStrides[j]
		j++
	}

	out := make([]float64, Size(kept))
	Walk(shape, [][]int{st}, func(pos int, offs []int) {
		out[offs[0]] += data[pos]
	})

	return out, kept
}

// AlignedStrides returns, for each axis of dst, the stride of the same-named
// axis in src, or 0 when src lacks it (broadcast).
// Complexity: O(len(src) + len(dst)).
func AlignedStrides(srcAxes []string, srcShape []int, dstAxes []string) []int {
	in := Strides(srcShape)
	byName := make(map[string]int, len(srcAxes))
	for k, a := range srcAxes {
		byName[a] = in[k]
	}

	st := make([]int, len(dstAxes))
	for k, a := range dstAxes {
		st[k] = byName[a] // missing → 0
	}

	return st
}
