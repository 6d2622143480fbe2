// SPDX-License-Identifier: MIT

package multinomial

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/floats"

	"github.com/qcgm1978/tfjs-core/tensor"
)

// prepMode selects how a raw row becomes a sampling distribution.
type prepMode int

const (
	// prepDivide: validate, then divide by the row sum.
	prepDivide prepMode = iota

	// prepTrust: validate only; the caller declared the row normalized.
	prepTrust

	// prepSoftmax: rows are logits; max-subtracted softmax.
	prepSoftmax
)

// normalizeRow checks a weight row and, when divide is set, scales it in
// place to sum to 1.
//
// Algorithm:
//  1. Reject any negative, NaN or ±Inf weight.
//  2. S = Σ row; reject S <= 0 or S = +Inf (finite weights can overflow).
//  3. If divide: row[i] /= S, left to right.
//
// Complexity: O(K) time, O(1) extra space.
func normalizeRow(row []float64, divide bool) error {
	if err := tensor.ValidateFinite(row); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDistribution, err)
	}
	for i, w := range row {
		if w < 0 {
			return fmt.Errorf("weight[%d]=%v: %w", i, w, ErrInvalidDistribution)
		}
	}

	s := floats.Sum(row)
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("sum=%v: %w", s, ErrInvalidDistribution)
	}
	if !divide {
		return nil
	}
	for i := range row {
		row[i] /= s
	}

	return nil
}

// softmaxRow turns logits into probabilities in place.
// -Inf logits become exact zeros; NaN, +Inf or an all -Inf row is invalid.
// The max is subtracted first so exp never overflows and the sum is >= 1.
//
// Complexity: O(K).
func softmaxRow(row []float64) error {
	maxLogit := math.Inf(-1)
	for i, l := range row {
		if math.IsNaN(l) || math.IsInf(l, 1) {
			return fmt.Errorf("logit[%d]=%v: %w", i, l, ErrInvalidDistribution)
		}
		if l > maxLogit {
			maxLogit = l
		}
	}
	if math.IsInf(maxLogit, -1) {
		return fmt.Errorf("all logits are -Inf: %w", ErrInvalidDistribution)
	}

	for i, l := range row {
		row[i] = math.Exp(l - maxLogit)
	}
	s := floats.Sum(row)
	for i := range row {
		row[i] /= s
	}

	return nil
}

// prepareBatch applies mode to every row of the row-major arena. All rows are
// checked even after a failure so one error reports every bad row; each
// entry matches ErrInvalidDistribution under errors.Is.
//
// Complexity: O(rows*K).
func prepareBatch(arena []float64, rows, outcomes int, mode prepMode) error {
	var errs *multierror.Error
	for r := 0; r < rows; r++ {
		row := arena[r*outcomes : (r+1)*outcomes]

		var err error
		switch mode {
		case prepSoftmax:
			err = softmaxRow(row)
		case prepTrust:
			err = normalizeRow(row, false)
		default:
			err = normalizeRow(row, true)
		}
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("row %d: %w", r, err))
		}
	}

	return errs.ErrorOrNil()
}
