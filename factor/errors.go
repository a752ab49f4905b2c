// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// Every algorithm operating on factors returns these sentinels (optionally
// wrapped with fmt.Errorf("ctx: %w", ErrX)); tests match them via errors.Is.

package factor

import "errors"

var (
	// ErrNotFactor is returned when an operand does not satisfy the Factor
	// contract: a nil interface or a typed-nil pointer.
	ErrNotFactor = errors.New("factor: argument is not a factor")

	// ErrMixedRepresentation is returned when operands satisfy the contract
	// individually but are backed by different concrete representations.
	ErrMixedRepresentation = errors.New("factor: operands use different factor representations")

	// ErrNoFactors is returned when an operation requiring at least one
	// operand receives none.
	ErrNoFactors = errors.New("factor: at least one factor is required")

	// ErrUnknownVariable is returned when a requested variable is absent from
	// every input factor.
	ErrUnknownVariable = errors.New("factor: unknown variable")

	// ErrStateNameConflict is returned by a strict state-name merge when two
	// factors label the same variable differently.
	ErrStateNameConflict = errors.New("factor: conflicting state names")
)
