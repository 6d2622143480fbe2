// SPDX-License-Identifier: MIT
// Package: multinomial
//
// Purpose:
//  - Shape and sample-count checks that run before any sampling work.
//  - Return sentinels wrapped with the validator tag.
//
// Note:
//  - Order inside ValidateShape is fixed: rank → batch size → outcome count.

package multinomial

import (
	"fmt"
	"math"

	"github.com/qcgm1978/tfjs-core/tensor"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape interprets a probability tensor shape as a batch.
// Rank 1 is one row of shape[0] outcomes; rank 2 is shape[0] rows of
// shape[1] outcomes.
//
// Errors:
//   - ErrInvalidRank for rank 0 or rank >= 3.
//   - tensor.ErrInvalidDimensions for an empty batch or an outcome count
//     beyond int32 indexing.
//   - ErrDegenerateDistribution for fewer than two outcomes.
//
// Complexity: O(1).
func ValidateShape(shape []int) (rows, outcomes int, err error) {
	switch len(shape) {
	case 1:
		rows, outcomes = 1, shape[0]
	case 2:
		rows, outcomes = shape[0], shape[1]
	default:
		return 0, 0, validatorErrorf(fmt.Sprintf("ValidateShape: rank %d", len(shape)), ErrInvalidRank)
	}
	if rows < 1 {
		return 0, 0, validatorErrorf("ValidateShape: batch", tensor.ErrInvalidDimensions)
	}
	if outcomes < 2 {
		return 0, 0, validatorErrorf(fmt.Sprintf("ValidateShape: %d outcome(s)", outcomes), ErrDegenerateDistribution)
	}
	if outcomes > math.MaxInt32 {
		return 0, 0, validatorErrorf("ValidateShape: outcomes exceed int32", tensor.ErrInvalidDimensions)
	}

	return rows, outcomes, nil
}

// ValidateSampleCount ensures n is positive and rows*n fits an output buffer.
// Complexity: O(1).
func ValidateSampleCount(rows, n int) error {
	if n <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateSampleCount: %d", n), ErrInvalidSampleCount)
	}
	if rows > 0 && n > math.MaxInt/rows {
		return validatorErrorf("ValidateSampleCount: rows*samples overflows", ErrInvalidSampleCount)
	}

	return nil
}

// SampleCount converts an untyped numeric sample count (JSON, config files)
// to int. NaN, ±Inf, non-integers, values <= 0 and values above MaxInt32
// are rejected with ErrInvalidSampleCount.
func SampleCount(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, validatorErrorf(fmt.Sprintf("SampleCount(%v): not an integer", v), ErrInvalidSampleCount)
	}
	if v <= 0 || v > math.MaxInt32 {
		return 0, validatorErrorf(fmt.Sprintf("SampleCount(%v): out of range", v), ErrInvalidSampleCount)
	}

	return int(v), nil
}
