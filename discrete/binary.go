// SPDX-License-Identifier: MIT

package discrete

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/factor"
	"github.com/katalvlaran/lvpgm/internal/ndarray"
)

const (
	opProduct = "Product"
	opDivide  = "Divide"
	opSum     = "Sum"
)

// Product implements factor.Factor: φ·ψ over the union of scopes.
func (f *Factor) Product(other factor.Factor, inplace bool) (factor.Factor, error) {
	return f.combine(opProduct, other, inplace, false, func(x, y float64) float64 { return x * y })
}

// Divide implements factor.Factor: φ/ψ with ψ's scope contained in φ's
// (ErrScopeNotSubset otherwise). 0/0 yields 0; x/0 yields ±Inf.
func (f *Factor) Divide(other factor.Factor, inplace bool) (factor.Factor, error) {
	return f.combine(opDivide, other, inplace, true, divide)
}

// Sum implements factor.Factor: φ+ψ over the union of scopes.
func (f *Factor) Sum(other factor.Factor, inplace bool) (factor.Factor, error) {
	return f.combine(opSum, other, inplace, false, func(x, y float64) float64 { return x + y })
}

func divide(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}

	return x / y
}

// combine applies op cell by cell after aligning other onto f by variable name.
//
// Implementation:
//   - Stage 1: reject a nil operand (factor.ErrNotFactor).
//   - Stage 2: build the union scope; shared variables must agree on
//     cardinality and state names; subset mode rejects extra variables.
//   - Stage 3: walk the union shape with broadcast strides for both sides.
//   - Stage 4: store into f (inplace) or a fresh factor.
//
// Complexity: O(Π union card).
func (f *Factor) combine(tag string, other factor.Factor, inplace, subset bool, op func(x, y float64) float64) (factor.Factor, error) {
	if factor.IsNil(other) {
		return nil, fmt.Errorf("%s: %w", tag, factor.ErrNotFactor)
	}

	oScope, oCard, oStates := other.Scope(), other.Cardinality(), other.StateNames()
	scope := append([]string(nil), f.scope...)
	card := append([]int(nil), f.card...)
	states := copyStates(f.states)

	for k, v := range oScope {
		if j := f.indexOf(v); j >= 0 {
			if f.card[j] != oCard[k] {
				return nil, fmt.Errorf("%s: %q is %d vs %d: %w", tag, v, f.card[j], oCard[k], ErrCardinalityMismatch)
			}
			if !sameLabels(f.states[v], oStates[v]) {
				return nil, fmt.Errorf("%s: %q: %w", tag, v, ErrStateNameMismatch)
			}
			continue
		}
		if subset {
			return nil, fmt.Errorf("%s: %q: %w", tag, v, ErrScopeNotSubset)
		}
		scope = append(scope, v)
		card = append(card, oCard[k])
		states[v] = append([]string(nil), oStates[v]...)
	}

	a, b := f.values, other.Values()
	strides := [][]int{
		ndarray.AlignedStrides(f.scope, f.card, scope),
		ndarray.AlignedStrides(oScope, oCard, scope),
	}
	out := make([]float64, ndarray.Size(card))
	ndarray.Walk(card, strides, func(pos int, offs []int) {
		out[pos] = op(a[offs[0]], b[offs[1]])
	})

	if inplace {
		f.scope, f.card, f.values, f.states = scope, card, out, states
		return f, nil
	}

	return &Factor{scope: scope, card: card, values: out, states: states}, nil
}
