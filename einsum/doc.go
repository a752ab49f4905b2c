// SPDX-License-Identifier: MIT

// Package einsum is a named-axis tensor contraction engine.
//
// What & Why:
//
//	Given operands (dense row-major data + one label per axis) and an output
//	label order, Contract computes the product of all operands summed over
//	every label absent from the output. The operands are folded pairwise in
//	an order chosen by a pluggable Optimizer, so that summed-out labels are
//	eliminated as early as possible instead of materializing the full joint.
//
// Pairwise step:
//   - labels private to one operand and not needed later are summed first;
//   - both operands are permuted to [batch, free, contracted] layout;
//   - each batch slice is one matrix product (matrix.Mul).
//
// Optimizers:
//   - Greedy: at each step contract the pair whose result removes the most
//     memory (result size minus operand sizes), preferring pairs sharing a label.
//   - Sequential: left-to-right fold in operand order.
//
// Errors are package sentinels (see errors.go); shapes and labels are fully
// validated before any arithmetic.
package einsum
