// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/factor"
)

// Divide returns phi1 / phi2 aligned on phi2's scope, in a fresh factor.
// Both operands must satisfy the contract and share one representation;
// this is checked before any value is read. Scope containment and division
// by zero follow the representation's own rules (see package discrete).
func Divide(phi1, phi2 factor.Factor) (factor.Factor, error) {
	if err := factor.CheckHomogeneous(phi1, phi2); err != nil {
		return nil, fmt.Errorf("%s: %w", opDivide, err)
	}

	res, err := phi1.Divide(phi2, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDivide, err)
	}

	return res, nil
}
