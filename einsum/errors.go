// SPDX-License-Identifier: MIT
// Package einsum: sentinel error set. Match with errors.Is.

package einsum

import "errors"

var (
	// ErrNoOperands is returned when Contract receives no operands.
	ErrNoOperands = errors.New("einsum: no operands")

	// ErrAxesShape indicates an operand whose label count differs from its rank,
	// or that declares a non-positive dimension.
	ErrAxesShape = errors.New("einsum: axes do not match shape")

	// ErrDataShape indicates an operand whose data length differs from Π shape.
	ErrDataShape = errors.New("einsum: data length does not match shape")

	// ErrRepeatedAxis indicates a label repeated within one operand or the output.
	ErrRepeatedAxis = errors.New("einsum: repeated axis label")

	// ErrSizeMismatch indicates the same label bound to different dimensions.
	ErrSizeMismatch = errors.New("einsum: axis size mismatch")

	// ErrUnknownAxis indicates an output label that no operand carries.
	ErrUnknownAxis = errors.New("einsum: unknown output axis")

	// ErrBadPath indicates an optimizer produced an invalid contraction path.
	ErrBadPath = errors.New("einsum: invalid contraction path")
)
