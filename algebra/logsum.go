// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/factor"
)

// LogSum log-transforms every operand and adds the results, aligned on the
// union of scopes exactly like Product. Σ log φi = log Π φi, so this is the
// numerically stable form of a long product.
//
// The transform is applied unconditionally: operands already holding
// log-values are logged again unless the representation's Log is idempotent.
// A single operand yields its log-transformed copy.
func LogSum(phis ...factor.Factor) (factor.Factor, error) {
	if err := factor.CheckHomogeneous(phis...); err != nil {
		return nil, fmt.Errorf("%s: %w", opLogSum, err)
	}
	if len(phis) == 0 {
		return nil, fmt.Errorf("%s: %w", opLogSum, factor.ErrNoFactors)
	}

	logs := make([]factor.Factor, len(phis))
	for i, phi := range phis {
		l, err := phi.Log(false)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %d: %w", opLogSum, i, err)
		}
		logs[i] = l
	}
	if len(logs) == 1 {
		return logs[0], nil
	}

	// logs are private copies: accumulate in place.
	return foldInto(opLogSum, logs[0], logs[1:], func(acc, next factor.Factor) (factor.Factor, error) {
		return acc.Sum(next, true)
	})
}
