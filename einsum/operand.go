// SPDX-License-Identifier: MIT

package einsum

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/internal/ndarray"
)

// Operand is one input of a contraction: a dense row-major array and one
// label per axis.
type Operand struct {
	Data  []float64
	Shape []int
	Axes  []string
}

// Result is the contracted array; Axes equals the requested output order.
type Result struct {
	Data  []float64
	Shape []int
	Axes  []string
}

// operandErrorf tags a validation failure with the operand position.
func operandErrorf(pos int, err error) error {
	return fmt.Errorf("operand %d: %w", pos, err)
}

// validate checks every operand and the output labels, and returns the size
// bound to each label.
// Order of checks: count → rank/labels → data length → label sizes → output.
// Complexity: O(total rank + len(output)).
func validate(operands []Operand, output []string) (map[string]int, error) {
	if len(operands) == 0 {
		return nil, ErrNoOperands
	}

	sizes := make(map[string]int)
	for i, op := range operands {
		if len(op.Axes) != len(op.Shape) {
			return nil, operandErrorf(i, ErrAxesShape)
		}
		seen := make(map[string]struct{}, len(op.Axes))
		for k, ax := range op.Axes {
			if op.Shape[k] <= 0 {
				return nil, operandErrorf(i, fmt.Errorf("axis %q has dimension %d: %w", ax, op.Shape[k], ErrAxesShape))
			}
			if _, dup := seen[ax]; dup {
				return nil, operandErrorf(i, fmt.Errorf("axis %q: %w", ax, ErrRepeatedAxis))
			}
			seen[ax] = struct{}{}
		}
		if ndarray.Size(op.Shape) != len(op.Data) {
			return nil, operandErrorf(i, ErrDataShape)
		}
		for k, ax := range op.Axes {
			if d, ok := sizes[ax]; ok && d != op.Shape[k] {
				return nil, operandErrorf(i, fmt.Errorf("axis %q is %d, previously %d: %w", ax, op.Shape[k], d, ErrSizeMismatch))
			}
			sizes[ax] = op.Shape[k]
		}
	}

	seen := make(map[string]struct{}, len(output))
	for _, ax := range output {
		if _, dup := seen[ax]; dup {
			return nil, fmt.Errorf("output axis %q: %w", ax, ErrRepeatedAxis)
		}
		seen[ax] = struct{}{}
		if _, ok := sizes[ax]; !ok {
			return nil, fmt.Errorf("output axis %q: %w", ax, ErrUnknownAxis)
		}
	}

	return sizes, nil
}
