// Package lvpgm is an in-memory toolkit for discrete factor algebra, the
// arithmetic underneath exact inference in probabilistic graphical models.
//
// 🚀 What is inside?
//
//	factor/    capability contract, sentinel errors, homogeneity guard
//	discrete/  dense tabular factors: product, division, sum, log,
//	           marginalization, reduction, normalization
//	algebra/   n-ary Product, LogSum, Divide and the single-pass SumProduct,
//	           plus a concurrent batch of queries
//	einsum/    named-axis tensor contraction with greedy path search
//	matrix/    the dense 2-D matrix used by the contraction kernel
//
// ✨ Quick start
//
//	pa, _ := discrete.New([]string{"A"}, []int{2}, []float64{0.6, 0.4})
//	pba, _ := discrete.New([]string{"B", "A"}, []int{2, 2}, []float64{0.7, 0.2, 0.3, 0.8})
//	pb, _ := algebra.SumProduct([]string{"B"}, []factor.Factor{pa, pba})
//
// The factorctl command (cmd/factorctl) runs the same operations over YAML
// factor files.
package lvpgm
