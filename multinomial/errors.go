// SPDX-License-Identifier: MIT
// Package multinomial: sentinel error set.
// Every validation failure surfaces one of these (wrapped with call-site
// context); callers match with errors.Is. A call either returns a complete
// output tensor or an error, never a partial result.

package multinomial

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is returned when the probability tensor is not rank 1 or 2.
	ErrInvalidRank = errors.New("multinomial: probabilities must be rank 1 or 2")

	// ErrDegenerateDistribution is returned when the outcome axis has fewer
	// than two entries.
	ErrDegenerateDistribution = errors.New("multinomial: need at least 2 outcomes")

	// ErrInvalidDistribution is returned when a row cannot be normalized:
	// its sum is <= 0, NaN or ±Inf, or one of its weights is negative or
	// non-finite.
	ErrInvalidDistribution = errors.New("multinomial: invalid distribution")

	// ErrInvalidSampleCount is returned when numSamples is <= 0, not an
	// integer, or too large for the output buffer.
	ErrInvalidSampleCount = errors.New("multinomial: invalid sample count")
)

// opErrorf tags err with the public entry point that produced it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
