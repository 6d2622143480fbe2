// SPDX-License-Identifier: MIT

package multinomial

import (
	"fmt"

	"github.com/qcgm1978/tfjs-core/tensor"
)

const (
	opMultinomial = "Multinomial"
	opSample      = "Sample"
	opSampleRows  = "SampleRows"
)

// Multinomial draws numSamples independent outcome indices from every
// distribution in probs.
//
// Input:
//   - probs: float tensor of rank 1 (one distribution over K outcomes) or
//     rank 2 (B distributions over K outcomes), K >= 2.
//   - numSamples: draws per distribution, > 0.
//   - opts: WithSeed, WithNormalized, WithLogits, WithWorkers, WithGenerator,
//     WithSourceFactory, WithLogger.
//
// Output: a new Int32 tensor of shape [numSamples] for rank-1 input or
// [B, numSamples] for rank-2 input. probs is never modified.
//
// Errors (wrapped, match with errors.Is):
//   - tensor.ErrNilTensor, tensor.ErrDTypeMismatch, tensor.ErrSizeMismatch,
//     tensor.ErrInvalidDimensions for container problems.
//   - ErrInvalidRank, ErrDegenerateDistribution from shape validation.
//   - ErrInvalidSampleCount for numSamples <= 0.
//   - ErrInvalidDistribution for rows that cannot be normalized.
//
// Determinism: with WithSeed the output is a pure function of
// (probs, numSamples, seed, generator), independent of WithWorkers.
//
// Complexity: O(B*K + B*N*log K) time, O(B*(K+N)) memory.
func Multinomial(probs tensor.Reader, numSamples int, opts ...Option) (*tensor.Tensor, error) {
	o := gatherOptions(opts...)

	// Stage 1 (Validate): container, shape, dtype, sample count.
	if err := tensor.ValidateNotNil(probs); err != nil {
		return nil, opErrorf(opMultinomial, err)
	}
	shape := probs.Shape()
	rows, outcomes, err := ValidateShape(shape)
	if err != nil {
		return nil, opErrorf(opMultinomial, err)
	}
	if err = tensor.ValidateFloat(probs); err != nil {
		return nil, opErrorf(opMultinomial, err)
	}
	if err = ValidateSampleCount(rows, numSamples); err != nil {
		return nil, opErrorf(opMultinomial, err)
	}

	// Stage 2 (Prepare): Float64s hands back a private copy, used as the arena.
	arena, err := probs.Float64s()
	if err != nil {
		return nil, opErrorf(opMultinomial, err)
	}
	if err = tensor.ValidateLen(arena, shape); err != nil {
		return nil, opErrorf(opMultinomial, err)
	}

	// Stage 3 (Execute).
	buf, err := sampleBatch(arena, rows, outcomes, numSamples, &o)
	if err != nil {
		return nil, opErrorf(opMultinomial, err)
	}

	// Stage 4 (Finalize).
	out, err := assemble(buf, len(shape), rows, numSamples)
	if err != nil {
		return nil, opErrorf(opMultinomial, err)
	}

	return out, nil
}

// Sample is Multinomial for a single distribution held in a slice.
// row is not modified. Returns numSamples indices in [0, len(row)).
func Sample(row []float64, numSamples int, opts ...Option) ([]int32, error) {
	o := gatherOptions(opts...)

	_, outcomes, err := ValidateShape([]int{len(row)})
	if err != nil {
		return nil, opErrorf(opSample, err)
	}
	if err = ValidateSampleCount(1, numSamples); err != nil {
		return nil, opErrorf(opSample, err)
	}

	arena := make([]float64, outcomes)
	copy(arena, row)
	buf, err := sampleBatch(arena, 1, outcomes, numSamples, &o)
	if err != nil {
		return nil, opErrorf(opSample, err)
	}

	return buf, nil
}

// SampleRows is Multinomial for a batch held as equal-length slices.
// rows is not modified. The returned slices share one backing buffer, row r
// holding numSamples indices drawn from rows[r].
func SampleRows(rows [][]float64, numSamples int, opts ...Option) ([][]int32, error) {
	o := gatherOptions(opts...)

	if len(rows) == 0 {
		return nil, opErrorf(opSampleRows, validatorErrorf("ValidateShape: batch", tensor.ErrInvalidDimensions))
	}
	b, outcomes, err := ValidateShape([]int{len(rows), len(rows[0])})
	if err != nil {
		return nil, opErrorf(opSampleRows, err)
	}
	if err = ValidateSampleCount(b, numSamples); err != nil {
		return nil, opErrorf(opSampleRows, err)
	}

	arena := make([]float64, 0, b*outcomes)
	for r, row := range rows {
		if len(row) != outcomes {
			return nil, opErrorf(opSampleRows, fmt.Errorf("row %d has %d outcomes, want %d: %w",
				r, len(row), outcomes, tensor.ErrSizeMismatch))
		}
		arena = append(arena, row...)
	}

	buf, err := sampleBatch(arena, b, outcomes, numSamples, &o)
	if err != nil {
		return nil, opErrorf(opSampleRows, err)
	}

	return splitRows(buf, b, numSamples), nil
}
