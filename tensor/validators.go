// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Single source of truth for container checks shared by kernels.
//  - Return sentinels wrapped with the validator tag so call sites can add
//    their own context and still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond the error value.

package tensor

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures r is neither a nil interface nor a typed nil *Tensor.
// Complexity: O(1).
func ValidateNotNil(r Reader) error {
	if r == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}
	if t, ok := r.(*Tensor); ok && t == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateFloat ensures r carries a floating-point dtype.
// Assumes r is non-nil.
// Complexity: O(1).
func ValidateFloat(r Reader) error {
	if !r.DType().IsFloat() {
		return validatorErrorf("ValidateFloat", ErrDTypeMismatch)
	}

	return nil
}

// ValidateLen ensures a value buffer matches the product of shape.
// Used on foreign Reader implementations whose Float64s we do not control.
// Complexity: O(rank).
func ValidateLen(values []float64, shape []int) error {
	size, err := sizeOf(shape)
	if err != nil {
		return validatorErrorf("ValidateLen", err)
	}
	if len(values) != size {
		return validatorErrorf("ValidateLen", ErrSizeMismatch)
	}

	return nil
}

// ValidateFinite returns ErrNaNInf at the first NaN or ±Inf in values.
// Deterministic left-to-right scan; O(n) time, O(1) space.
func ValidateFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
