// SPDX-License-Identifier: MIT

package discrete

import "math"

// cpdTol is the column-sum tolerance used by IsValidCPD.
const cpdTol = 1e-8

// IsValidCPD reports whether f is a conditional distribution of its first
// variable given the others: every value is finite and non-negative, and for
// each assignment of the remaining variables the values over the first
// variable sum to 1 within 1e-8. A scalar factor is never a CPD.
func (f *Factor) IsValidCPD() bool {
	if len(f.scope) == 0 {
		return false
	}
	for _, x := range f.values {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
			return false
		}
	}

	rest := len(f.values) / f.card[0]
	for r := 0; r < rest; r++ {
		var s float64
		for i := 0; i < f.card[0]; i++ {
			s += f.values[i*rest+r]
		}
		if math.Abs(s-1) > cpdTol {
			return false
		}
	}

	return true
}
