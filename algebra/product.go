// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/factor"
)

const (
	opProduct    = "Product"
	opDivide     = "Divide"
	opLogSum     = "LogSum"
	opSumProduct = "SumProduct"
)

// Product returns the pointwise product of phis. The result scope is the
// union of all scopes in order of first appearance.
//
// Implementation:
//   - Stage 1: homogeneity guard (factor.ErrNotFactor, factor.ErrMixedRepresentation).
//   - Stage 2: one operand → a copy, never the operand itself.
//   - Stage 3: fold left-to-right into a private copy of phis[0] using the
//     representation's in-place product.
//
// Errors: factor.ErrNoFactors for an empty call, plus whatever the
// representation's product reports (e.g. cardinality mismatch).
func Product(phis ...factor.Factor) (factor.Factor, error) {
	if err := factor.CheckHomogeneous(phis...); err != nil {
		return nil, fmt.Errorf("%s: %w", opProduct, err)
	}

	switch len(phis) {
	case 0:
		return nil, fmt.Errorf("%s: %w", opProduct, factor.ErrNoFactors)
	case 1:
		return phis[0].Copy(), nil
	}

	return foldInto(opProduct, phis[0].Copy(), phis[1:], func(acc, next factor.Factor) (factor.Factor, error) {
		return acc.Product(next, true)
	})
}

// foldInto folds rest into acc, which must be owned by the caller.
func foldInto(tag string, acc factor.Factor, rest []factor.Factor, op func(acc, next factor.Factor) (factor.Factor, error)) (factor.Factor, error) {
	xs := make([]factor.Factor, 0, len(rest)+1)
	xs = append(xs, acc)
	xs = append(xs, rest...)

	res, err := factor.Fold(xs, op)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return res, nil
}
