// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with a call-site tag) and tests match them via errors.Is. Nothing in this
// package panics on user-supplied shapes or indices.

package tensor

import "errors"

// Every message is prefixed with "tensor: ..." so it can be grepped in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at call sites; never compare by string.

var (
	// ErrInvalidDimensions indicates that a dimension is non-positive.
	ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")

	// ErrSizeMismatch indicates that the buffer length differs from the
	// product of the requested dimensions.
	ErrSizeMismatch = errors.New("tensor: buffer length does not match shape")

	// ErrOutOfRange indicates that an index is outside valid bounds, or that
	// the number of indices differs from the rank.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDTypeMismatch indicates a read of the wrong element kind
	// (e.g. Float64s on an Int32 tensor).
	ErrDTypeMismatch = errors.New("tensor: dtype mismatch")

	// ErrNilTensor indicates that a nil tensor (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)
