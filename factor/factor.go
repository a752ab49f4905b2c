// SPDX-License-Identifier: MIT

package factor

// Factor is the capability contract a representation must satisfy to take
// part in product, sum-product, division and log-sum.
//
// Layout contract:
//   - Scope() lists unique variable names; its order is the axis order of Values().
//   - Cardinality()[i] is the number of states of Scope()[i].
//   - Values() is dense and row-major (last variable varies fastest),
//     len == Π Cardinality(). An empty scope holds exactly one value.
//   - StateNames()[v][k] labels state k of variable v.
//
// Accessors return copies; mutating them never affects the factor.
//
// Binary operators align operands by variable name. With inplace=true the
// receiver is updated and returned; otherwise a fresh factor is allocated and
// the receiver is left untouched.
type Factor interface {
	// IsValidCPD reports whether the values form a conditional distribution
	// of the first variable given the rest. It is a conformance marker only;
	// the algorithms never call it.
	IsValidCPD() bool

	// Copy returns an independent deep copy.
	Copy() Factor

	Scope() []string
	Cardinality() []int
	Values() []float64
	StateNames() map[string][]string

	// Product multiplies by other, broadcasting over the union of scopes.
	Product(other Factor, inplace bool) (Factor, error)

	// Divide divides by other, aligned on other's scope.
	Divide(other Factor, inplace bool) (Factor, error)

	// Sum adds other elementwise, broadcasting over the union of scopes.
	// It is the log-domain analogue of Product.
	Sum(other Factor, inplace bool) (Factor, error)

	// Log applies the natural logarithm to every value.
	Log(inplace bool) (Factor, error)
}
