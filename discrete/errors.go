// SPDX-License-Identifier: MIT
// Package discrete: sentinel error set. Match with errors.Is.

package discrete

import "errors"

var (
	// ErrEmptyVariable indicates a variable with an empty name.
	ErrEmptyVariable = errors.New("discrete: empty variable name")

	// ErrDuplicateVariable indicates a variable listed twice in one scope.
	ErrDuplicateVariable = errors.New("discrete: duplicate variable in scope")

	// ErrBadCardinality indicates a non-positive cardinality or a cardinality
	// list whose length differs from the scope.
	ErrBadCardinality = errors.New("discrete: invalid cardinality")

	// ErrValuesShape indicates len(values) != Π cardinality.
	ErrValuesShape = errors.New("discrete: values do not match cardinality")

	// ErrStateNames indicates a state-name list of the wrong length or with
	// repeated labels.
	ErrStateNames = errors.New("discrete: invalid state names")

	// ErrCardinalityMismatch indicates a shared variable with different
	// cardinalities in two operands.
	ErrCardinalityMismatch = errors.New("discrete: cardinality mismatch on shared variable")

	// ErrStateNameMismatch indicates a shared variable labelled differently
	// in two operands.
	ErrStateNameMismatch = errors.New("discrete: state names mismatch on shared variable")

	// ErrScopeNotSubset indicates a divisor whose scope is not contained in
	// the dividend's scope.
	ErrScopeNotSubset = errors.New("discrete: divisor scope is not a subset of dividend scope")

	// ErrUnknownState indicates a state name the variable does not have.
	ErrUnknownState = errors.New("discrete: unknown state name")

	// ErrZeroMass indicates normalization of a factor whose values sum to zero.
	ErrZeroMass = errors.New("discrete: factor values sum to zero")
)
