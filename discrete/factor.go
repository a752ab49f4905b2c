// SPDX-License-Identifier: MIT

package discrete

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpgm/factor"
	"github.com/katalvlaran/lvpgm/internal/ndarray"
)

// Factor is a dense table over discrete variables. The zero value is not
// usable; build factors with New.
type Factor struct {
	scope  []string
	card   []int
	values []float64
	states map[string][]string
}

var (
	_ factor.Factor = (*Factor)(nil)
	_ fmt.Stringer  = (*Factor)(nil)
)

// New builds a factor over scope with the given cardinalities and row-major
// values. All inputs are copied.
//
// Implementation:
//   - Stage 1: validate scope names (non-empty, unique) and cardinalities (≥ 1).
//   - Stage 2: validate len(values) == Π card.
//   - Stage 3: resolve state names (given or "0".."k-1") and validate them.
//
// An empty scope is legal and holds exactly one value.
// Complexity: O(len(values) + Σ card).
func New(scope []string, card []int, values []float64, opts ...Option) (*Factor, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	if len(scope) != len(card) {
		return nil, fmt.Errorf("New: %d variables, %d cardinalities: %w", len(scope), len(card), ErrBadCardinality)
	}
	seen := make(map[string]struct{}, len(scope))
	for k, v := range scope {
		if v == "" {
			return nil, fmt.Errorf("New: position %d: %w", k, ErrEmptyVariable)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("New: %q: %w", v, ErrDuplicateVariable)
		}
		seen[v] = struct{}{}
		if card[k] < 1 {
			return nil, fmt.Errorf("New: %q has cardinality %d: %w", v, card[k], ErrBadCardinality)
		}
	}
	if n := ndarray.Size(card); n != len(values) {
		return nil, fmt.Errorf("New: %d values, want %d: %w", len(values), n, ErrValuesShape)
	}

	states := make(map[string][]string, len(scope))
	for k, v := range scope {
		labels, ok := o.stateNames[v]
		if !ok {
			labels = defaultStates(card[k])
		}
		if err := checkStates(v, labels, card[k]); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		states[v] = labels
	}

	return &Factor{
		scope:  append([]string(nil), scope...),
		card:   append([]int(nil), card...),
		values: append([]float64(nil), values...),
		states: states,
	}, nil
}

func defaultStates(k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}

func checkStates(v string, labels []string, k int) error {
	if len(labels) != k {
		return fmt.Errorf("%q has %d state names, cardinality %d: %w", v, len(labels), k, ErrStateNames)
	}
	seen := make(map[string]struct{}, k)
	for _, s := range labels {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%q repeats state %q: %w", v, s, ErrStateNames)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// Scope returns a copy of the variable order.
func (f *Factor) Scope() []string { return append([]string(nil), f.scope...) }

// Cardinality returns a copy of the per-variable state counts.
func (f *Factor) Cardinality() []int { return append([]int(nil), f.card...) }

// Values returns a copy of the row-major values.
func (f *Factor) Values() []float64 { return append([]float64(nil), f.values...) }

// StateNames returns a deep copy of the state labels.
func (f *Factor) StateNames() map[string][]string { return copyStates(f.states) }

// Copy implements factor.Factor.
func (f *Factor) Copy() factor.Factor { return f.clone() }

func (f *Factor) clone() *Factor {
	return &Factor{
		scope:  append([]string(nil), f.scope...),
		card:   append([]int(nil), f.card...),
		values: append([]float64(nil), f.values...),
		states: copyStates(f.states),
	}
}

func copyStates(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for v, labels := range in {
		out[v] = append([]string(nil), labels...)
	}

	return out
}

// indexOf returns the axis of v or -1.
func (f *Factor) indexOf(v string) int {
	for k, s := range f.scope {
		if s == v {
			return k
		}
	}

	return -1
}

// stateIndex resolves the state label of variable at axis k.
func (f *Factor) stateIndex(k int, label string) (int, error) {
	for i, s := range f.states[f.scope[k]] {
		if s == label {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q has no state %q: %w", f.scope[k], label, ErrUnknownState)
}

// Get returns φ at a full assignment given by state names.
// Errors: factor.ErrUnknownVariable when a scope variable is unassigned,
// ErrUnknownState for an unknown label.
// Complexity: O(len(scope) · max card).
func (f *Factor) Get(assign map[string]string) (float64, error) {
	off := 0
	for k, v := range f.scope {
		label, ok := assign[v]
		if !ok {
			return 0, fmt.Errorf("Get: %q unassigned: %w", v, factor.ErrUnknownVariable)
		}
		i, err := f.stateIndex(k, label)
		if err != nil {
			return 0, fmt.Errorf("Get: %w", err)
		}
		off = off*f.card[k] + i
	}

	return f.values[off], nil
}

// Equal reports whether g holds the same function as f within tol: same
// variable set, cardinalities and state names, and values equal after
// aligning g onto f's variable order. NaNs compare equal to NaNs, infinities
// to same-signed infinities.
func (f *Factor) Equal(g *Factor, tol float64) bool {
	if g == nil || len(f.scope) != len(g.scope) {
		return false
	}
	for k, v := range f.scope {
		j := g.indexOf(v)
		if j < 0 || g.card[j] != f.card[k] || !sameLabels(f.states[v], g.states[v]) {
			return false
		}
	}

	aligned := ndarray.Gather(g.values, f.card, ndarray.AlignedStrides(g.scope, g.card, f.scope))
	for i, x := range f.values {
		if !approxEqual(x, aligned[i], tol) {
			return false
		}
	}

	return true
}

func approxEqual(x, y, tol float64) bool {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.IsNaN(x) && math.IsNaN(y)
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return x == y
	default:
		return math.Abs(x-y) <= tol
	}
}

func sameLabels(a, b []string) bool {
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

// String renders "phi(x1:2, x2:3)"; a scalar factor renders "phi()".
func (f *Factor) String() string {
	parts := make([]string, len(f.scope))
	for k, v := range f.scope {
		parts[k] = fmt.Sprintf("%s:%d", v, f.card[k])
	}

	return "phi(" + strings.Join(parts, ", ") + ")"
}
