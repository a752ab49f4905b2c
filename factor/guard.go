// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"reflect"
)

// guardErrorf tags a guard failure with the offending operand position.
func guardErrorf(tag string, pos int, err error) error {
	return fmt.Errorf("%s: operand %d: %w", tag, pos, err)
}

// IsNil reports whether phi is a nil interface or an interface holding a nil
// pointer, map, slice or func.
//
// Only the outermost value is inspected. A struct representation that embeds
// a nil pointer (struct{ *T }{nil}) is not nil here and passes the guards;
// its own methods are responsible for failing on use.
func IsNil(phi Factor) bool {
	if phi == nil {
		return true
	}
	v := reflect.ValueOf(phi)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// CheckFactors verifies that every operand satisfies the contract.
// Returns ErrNotFactor (wrapped with the operand index) for the first operand
// that IsNil reports: a nil interface or a typed nil pointer-like value.
// Complexity: O(n).
func CheckFactors(phis ...Factor) error {
	for i, phi := range phis {
		if IsNil(phi) {
			return guardErrorf("CheckFactors", i, ErrNotFactor)
		}
	}

	return nil
}

// CheckHomogeneous is the precondition of every multi-operand combination:
//   - Stage 1: every operand satisfies the contract (ErrNotFactor);
//   - Stage 2: all operands share one concrete representation
//     (ErrMixedRepresentation).
//
// It never touches values, so it short-circuits before any numeric work.
// Complexity: O(n).
func CheckHomogeneous(phis ...Factor) error {
	if err := CheckFactors(phis...); err != nil {
		return err
	}
	if len(phis) < 2 {
		return nil
	}

	want := reflect.TypeOf(phis[0])
	for i := 1; i < len(phis); i++ {
		if got := reflect.TypeOf(phis[i]); got != want {
			return fmt.Errorf("CheckHomogeneous: operand %d is %v, want %v: %w", i, got, want, ErrMixedRepresentation)
		}
	}

	return nil
}
