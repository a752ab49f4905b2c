// SPDX-License-Identifier: MIT

package einsum

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/internal/ndarray"
	"github.com/katalvlaran/lvpgm/matrix"
)

// tensor is a working operand owned by Contract.
type tensor struct {
	data  []float64
	shape []int
	axes  []string
}

// Contract computes Σ_{labels ∉ output} Π operands, laid out in output order.
//
// Implementation:
//   - Stage 1: validate operands and output; collect label sizes.
//   - Stage 2: ask the optimizer for a path and check it.
//   - Stage 3: contract pairwise along the path.
//   - Stage 4: sum the survivor over non-output labels, transpose to output.
//
// Operands are never written. An empty output yields a scalar (Shape empty,
// one value). Complexity is dominated by the pairwise products chosen by the
// optimizer; see Cost.
func Contract(operands []Operand, output []string, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	sizes, err := validate(operands, output)
	if err != nil {
		return nil, fmt.Errorf("Contract: %w", err)
	}

	inputs := make([][]string, len(operands))
	live := make([]tensor, len(operands))
	for i, op := range operands {
		inputs[i] = op.Axes
		live[i] = tensor{data: op.Data, shape: op.Shape, axes: op.Axes}
	}

	path, err := o.optimizer.Path(inputs, output, sizes)
	if err != nil {
		return nil, fmt.Errorf("Contract: %s: %w", o.optimizer.Name(), err)
	}
	cost, err := Cost(inputs, output, sizes, path)
	if err != nil {
		return nil, fmt.Errorf("Contract: %s: %w", o.optimizer.Name(), err)
	}
	o.logger.Debug("einsum: contraction path",
		zap.String("optimizer", o.optimizer.Name()),
		zap.Int("operands", len(operands)),
		zap.Strings("output", output),
		zap.Any("path", path),
		zap.Int("cost", cost),
	)

	for _, st := range path {
		i, j := order(st)
		axes := make([][]string, len(live))
		for k, t := range live {
			axes[k] = t.axes
		}
		keep := keepSet(axes, i, j, output)

		res, err := contractPair(live[i], live[j], keep)
		if err != nil {
			return nil, fmt.Errorf("Contract: step %v: %w", st, err)
		}

		next := make([]tensor, 0, len(live)-1)
		for k, t := range live {
			if k != i && k != j {
				next = append(next, t)
			}
		}
		live = append(next, res)
	}

	return finalize(live[0], output), nil
}

// finalize sums the last operand over labels not in output and transposes
// the remaining axes into output order.
func finalize(t tensor, output []string) *Result {
	want := make(map[string]bool, len(output))
	for _, ax := range output {
		want[ax] = true
	}
	t = sumOut(t, want)

	pos := make(map[string]int, len(t.axes))
	for k, ax := range t.axes {
		pos[ax] = k
	}
	perm := make([]int, len(output))
	for k, ax := range output {
		perm[k] = pos[ax]
	}
	data, shape := ndarray.Permute(t.data, t.shape, perm)

	return &Result{Data: data, Shape: shape, Axes: append([]string(nil), output...)}
}

// sumOut drops every axis of t whose label is not in keep. When nothing is
// dropped t is returned unchanged (no copy).
func sumOut(t tensor, keep map[string]bool) tensor {
	drop := make([]bool, len(t.axes))
	dropped := false
	axes := make([]string, 0, len(t.axes))
	for k, ax := range t.axes {
		if keep[ax] {
			axes = append(axes, ax)
			continue
		}
		drop[k] = true
		dropped = true
	}
	if !dropped {
		return t
	}
	data, shape := ndarray.SumAxes(t.data, t.shape, drop)

	return tensor{data: data, shape: shape, axes: axes}
}

// contractPair multiplies a and b and sums every shared label not in keep.
//
// Implementation:
//   - Stage 1: sum labels private to one side and absent from keep.
//   - Stage 2: classify labels: batch (shared, kept), contracted (shared,
//     dropped), freeA / freeB (private, kept).
//   - Stage 3: permute a → [batch, freeA, contr], b → [batch, contr, freeB].
//   - Stage 4: one (M×K)·(K×N) matrix product per batch slice.
//
// Result axes are [batch, freeA, freeB].
func contractPair(a, b tensor, keep map[string]bool) (tensor, error) {
	inA := make(map[string]bool, len(a.axes))
	for _, ax := range a.axes {
		inA[ax] = true
	}
	inB := make(map[string]bool, len(b.axes))
	for _, ax := range b.axes {
		inB[ax] = true
	}

	// Private labels survive only if kept; shared labels survive stage 1 always.
	a = sumOut(a, keepOrShared(keep, inB))
	b = sumOut(b, keepOrShared(keep, inA))

	sizeOf := make(map[string]int, len(a.axes)+len(b.axes))
	var batch, contr, freeA, freeB []string
	for k, ax := range a.axes {
		sizeOf[ax] = a.shape[k]
		switch {
		case inB[ax] && keep[ax]:
			batch = append(batch, ax)
		case inB[ax]:
			contr = append(contr, ax)
		default:
			freeA = append(freeA, ax)
		}
	}
	for k, ax := range b.axes {
		sizeOf[ax] = b.shape[k]
		if !inA[ax] {
			freeB = append(freeB, ax)
		}
	}

	aData := permuteTo(a, concat(batch, freeA, contr))
	bData := permuteTo(b, concat(batch, contr, freeB))

	nb, m := volumeOf(batch, sizeOf), volumeOf(freeA, sizeOf)
	kk, n := volumeOf(contr, sizeOf), volumeOf(freeB, sizeOf)

	out := make([]float64, nb*m*n)
	for bi := 0; bi < nb; bi++ {
		left, err := matrix.NewDenseFrom(m, kk, aData[bi*m*kk:(bi+1)*m*kk])
		if err != nil {
			return tensor{}, err
		}
		right, err := matrix.NewDenseFrom(kk, n, bData[bi*kk*n:(bi+1)*kk*n])
		if err != nil {
			return tensor{}, err
		}
		prod, err := matrix.Mul(left, right)
		if err != nil {
			return tensor{}, err
		}
		flat, err := matrix.Flatten(prod)
		if err != nil {
			return tensor{}, err
		}
		copy(out[bi*m*n:], flat)
	}

	axes := concat(batch, freeA, freeB)
	shape := make([]int, len(axes))
	for k, ax := range axes {
		shape[k] = sizeOf[ax]
	}

	return tensor{data: out, shape: shape, axes: axes}, nil
}

// keepOrShared marks labels to retain when pre-reducing one side of a pair.
func keepOrShared(keep, other map[string]bool) map[string]bool {
	out := make(map[string]bool, len(keep)+len(other))
	for ax := range keep {
		out[ax] = true
	}
	for ax := range other {
		out[ax] = true
	}

	return out
}

// permuteTo returns t's data transposed into the given label order.
func permuteTo(t tensor, axes []string) []float64 {
	pos := make(map[string]int, len(t.axes))
	for k, ax := range t.axes {
		pos[ax] = k
	}
	perm := make([]int, len(axes))
	identity := true
	for k, ax := range axes {
		perm[k] = pos[ax]
		if perm[k] != k {
			identity = false
		}
	}
	if identity {
		return t.data
	}
	data, _ := ndarray.Permute(t.data, t.shape, perm)

	return data
}

func volumeOf(axes []string, sizeOf map[string]int) int {
	v := 1
	for _, ax := range axes {
		v *= sizeOf[ax]
	}

	return v
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
