// SPDX-License-Identifier: MIT

// Package matrix provides the dense two-dimensional kernel used by the
// contraction engine: a row-major float64 matrix with bounds-checked access
// and a deterministic matrix product.
//
// What & Why:
//
//	Every pairwise tensor contraction reduces to a batch of matrix products
//	once the operands are permuted to [batch, free, contracted] layout.
//	Keeping that product here isolates the only O(M·K·N) loop of the engine.
//
// Complexity:
//
//	Rows/Cols/At/Set run in O(1); Clone and Flatten in O(r·c); Mul in O(r·k·c).
package matrix
