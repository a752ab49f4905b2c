// SPDX-License-Identifier: MIT

package discrete

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpgm/factor"
	"github.com/katalvlaran/lvpgm/internal/ndarray"
)

// target returns f itself when inplace, otherwise a deep copy.
func (f *Factor) target(inplace bool) *Factor {
	if inplace {
		return f
	}

	return f.clone()
}

// Log implements factor.Factor: natural log of every cell.
// log 0 = -Inf and log of a negative value = NaN; no error is raised.
func (f *Factor) Log(inplace bool) (factor.Factor, error) {
	t := f.target(inplace)
	for i, x := range t.values {
		t.values[i] = math.Log(x)
	}

	return t, nil
}

// Marginalize sums out vars. Summing out every variable leaves a scalar factor.
// Errors: factor.ErrUnknownVariable for a variable outside the scope.
// Complexity: O(len(values)).
func (f *Factor) Marginalize(vars []string, inplace bool) (*Factor, error) {
	drop := make([]bool, len(f.scope))
	for _, v := range vars {
		k := f.indexOf(v)
		if k < 0 {
			return nil, fmt.Errorf("Marginalize: %q: %w", v, factor.ErrUnknownVariable)
		}
		drop[k] = true
	}

	values, card := ndarray.SumAxes(f.values, f.card, drop)
	scope := make([]string, 0, len(card))
	for k, v := range f.scope {
		if !drop[k] {
			scope = append(scope, v)
		}
	}

	t := f.target(inplace)
	for k, v := range f.scope {
		if drop[k] {
			delete(t.states, v)
		}
	}
	t.scope, t.card, t.values = scope, card, values

	return t, nil
}

// Normalize scales values so they sum to one.
// Errors: ErrZeroMass when the values sum to zero.
func (f *Factor) Normalize(inplace bool) (*Factor, error) {
	var total float64
	for _, x := range f.values {
		total += x
	}
	if total == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrZeroMass)
	}

	t := f.target(inplace)
	for i := range t.values {
		t.values[i] /= total
	}

	return t, nil
}

// Reduce fixes variables to the named states and drops them from the scope.
// Errors: factor.ErrUnknownVariable, ErrUnknownState.
// Complexity: O(len(result values)).
func (f *Factor) Reduce(assign map[string]string, inplace bool) (*Factor, error) {
	fixed := make([]int, len(f.scope))
	isFixed := make([]bool, len(f.scope))
	for v, label := range assign {
		k := f.indexOf(v)
		if k < 0 {
			return nil, fmt.Errorf("Reduce: %q: %w", v, factor.ErrUnknownVariable)
		}
		i, err := f.stateIndex(k, label)
		if err != nil {
			return nil, fmt.Errorf("Reduce: %w", err)
		}
		fixed[k], isFixed[k] = i, true
	}

	st := ndarray.Strides(f.card)
	base := 0
	var scope []string
	var card, keptStrides []int
	for k, v := range f.scope {
		if isFixed[k] {
			base += fixed[k] * st[k]
			continue
		}
		scope = append(scope, v)
		card = append(card, f.card[k])
		keptStrides = append(keptStrides, st[k])
	}
	values := ndarray.Gather(f.values[base:], card, keptStrides)

	t := f.target(inplace)
	for k, v := range f.scope {
		if isFixed[k] {
			delete(t.states, v)
		}
	}
	t.scope, t.card, t.values = scope, card, values

	return t, nil
}
