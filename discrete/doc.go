// SPDX-License-Identifier: MIT

// Package discrete is the dense table representation of a factor over
// discrete variables.
//
// Layout:
//
//	Values are stored row-major over Scope(): the last variable varies
//	fastest. A factor over [x1 x2] with cardinality [2 3] stores
//	φ(0,0) φ(0,1) φ(0,2) φ(1,0) φ(1,1) φ(1,2).
//
// Alignment:
//
//	Binary operators match axes by variable name, never by position. The
//	result scope is the receiver's scope followed by the other operand's
//	extra variables in their original order. Shared variables must agree on
//	cardinality and state names.
//
// Numeric conventions:
//   - Divide: 0/0 yields 0; x/0 for x≠0 yields ±Inf.
//   - Log: log 0 yields -Inf; log of a negative value yields NaN.
//
// *Factor satisfies factor.Factor and is the representation produced by
// algebra.SumProduct.
package discrete
