// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/discrete"
	"github.com/katalvlaran/lvpgm/einsum"
	"github.com/katalvlaran/lvpgm/factor"
)

// SumProduct computes Σ_{vars ∉ output} Π phis in a single contraction and
// returns a discrete factor over output, in that order.
//
// Implementation:
//   - Stage 1: contract check on every operand (factor.ErrNotFactor).
//   - Stage 2: merge state names; by default a later factor overwrites an
//     earlier one, WithStrictStateNames(true) rejects conflicts.
//   - Stage 3: every output variable must be known (factor.ErrUnknownVariable).
//   - Stage 4: hand (values, scope) pairs and output to einsum.Contract with
//     the configured optimizer.
//   - Stage 5: wrap the contracted array as a discrete factor.
//
// An empty output yields a scalar factor holding the total mass. Shape
// disagreements between factors sharing a variable surface as einsum errors.
func SumProduct(output []string, phis []factor.Factor, opts ...Option) (*discrete.Factor, error) {
	o := gatherOptions(opts...)

	if len(phis) == 0 {
		return nil, fmt.Errorf("%s: %w", opSumProduct, factor.ErrNoFactors)
	}
	if err := factor.CheckFactors(phis...); err != nil {
		return nil, fmt.Errorf("%s: %w", opSumProduct, err)
	}

	states, err := mergeStateNames(phis, o.strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSumProduct, err)
	}
	outStates := make(map[string][]string, len(output))
	for _, v := range output {
		labels, ok := states[v]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", opSumProduct, v, factor.ErrUnknownVariable)
		}
		outStates[v] = labels
	}

	operands := make([]einsum.Operand, len(phis))
	for i, phi := range phis {
		operands[i] = einsum.Operand{Data: phi.Values(), Shape: phi.Cardinality(), Axes: phi.Scope()}
	}
	o.logger.Debug("algebra: sum-product",
		zap.Int("factors", len(phis)),
		zap.Strings("output", output),
	)

	res, err := einsum.Contract(operands, output,
		einsum.WithOptimizer(o.optimizer),
		einsum.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSumProduct, err)
	}

	out, err := discrete.New(output, res.Shape, res.Data, discrete.WithStateNames(outStates))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSumProduct, err)
	}

	return out, nil
}

// mergeStateNames unions the state-name maps of phis in order. With strict
// unset the last factor mentioning a variable wins; with strict set a
// differing list is factor.ErrStateNameConflict.
func mergeStateNames(phis []factor.Factor, strict bool) (map[string][]string, error) {
	merged := make(map[string][]string)
	for i, phi := range phis {
		for v, labels := range phi.StateNames() {
			if prev, ok := merged[v]; ok && strict && !equalLabels(prev, labels) {
				return nil, fmt.Errorf("operand %d, variable %q: %v vs %v: %w", i, v, prev, labels, factor.ErrStateNameConflict)
			}
			merged[v] = labels
		}
	}

	return merged, nil
}

func equalLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
