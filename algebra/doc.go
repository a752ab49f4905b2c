// SPDX-License-Identifier: MIT

// Package algebra combines factors: the inner loop of variable elimination,
// belief propagation and junction-tree inference.
//
// Operations:
//   - Product: pointwise product over the union of scopes.
//   - SumProduct: Σ_{vars ∉ output} Π factors as one named-axis contraction,
//     so the full joint is never materialized.
//   - Divide: φ1/φ2 aligned on φ2's scope.
//   - LogSum: log-transform every operand, then add (log-domain product).
//   - SumProductAll: independent SumProduct queries run concurrently.
//
// Every operation is pure: operands are only read and a fresh factor is
// returned. Preconditions (factor contract, single representation) are
// checked before any arithmetic and reported as factor package sentinels.
//
// Example:
//
//	joint, err := algebra.Product(phi1, phi2, phi3)
//	marg, err := algebra.SumProduct([]string{"x1"}, []factor.Factor{phi1, phi2, phi3})
package algebra
