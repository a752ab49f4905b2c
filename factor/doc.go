// SPDX-License-Identifier: MIT

// Package factor defines the capability contract shared by every factor
// representation, together with the precondition checks and the fold helper
// used by the multi-operand algorithms in package algebra.
//
// What & Why:
//
//	A factor maps an assignment of a finite set of discrete variables to a
//	non-negative real (or a real, in log domain). Concrete storage lives in
//	representation packages (see package discrete); this package only states
//	what such a representation must expose so that product, sum-product,
//	division and log-sum can be written once.
//
// Guarantees:
//   - Guards run before any numeric work and return sentinel errors.
//   - Nothing here allocates factor storage or mutates an operand.
//
// Complexity:
//
//	CheckFactors and CheckHomogeneous are O(n) in the number of operands.
package factor
