// SPDX-License-Identifier: MIT

package multinomial

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/qcgm1978/tfjs-core/random"
)

// cdfRow is one row's inclusive cumulative distribution.
type cdfRow struct {
	cum   []float64 // cum[i] = p[0] + ... + p[i], view into the CDF arena
	total float64   // cum[K-1]
	last  int       // last outcome with positive probability
}

// buildCDF fills dst with the inclusive prefix sums of probs, strictly left to
// right, and records the clamp target.
//
// Complexity: O(K).
func buildCDF(dst, probs []float64) cdfRow {
	floats.CumSum(dst, probs)

	last := len(probs) - 1
	for last > 0 && probs[last] == 0 {
		last--
	}

	return cdfRow{cum: dst, total: dst[len(dst)-1], last: last}
}

// index maps u ∈ [0,1) to the smallest i with u·total < cum[i].
//
// Scaling by total keeps rows that sum to 1±ε (declared-normalized input,
// rounding in the division pass) unbiased. If rounding still pushes the
// target past every entry, the draw is clamped to the last positive-mass
// outcome and clamped reports true.
//
// Complexity: O(log K).
func (c cdfRow) index(u float64) (i int, clamped bool) {
	x := u * c.total
	i = sort.Search(len(c.cum), func(j int) bool { return x < c.cum[j] })
	if i > c.last {
		return c.last, true
	}

	return i, false
}

// drawRow writes len(out) independent draws from src into out and returns
// how many were clamped. src advances by exactly len(out) values.
//
// Complexity: O(N log K).
func drawRow(c cdfRow, src random.Source, out []int32) int {
	clamped := 0
	for s := range out {
		i, hit := c.index(src.Float64())
		if hit {
			clamped++
		}
		out[s] = int32(i)
	}

	return clamped
}

// sampleBatch runs the whole pipeline over a row-major arena of raw rows.
//
// Implementation:
//   - Stage 1 (Validate): prepare every row (normalize / softmax / check).
//     Any bad row fails the call before a single draw is made.
//   - Stage 2 (Prepare): one Source per row, seeded DeriveSeed(base, row).
//   - Stage 3 (Execute): per row, build its CDF once into the CDF arena and
//     draw n indices into its span of the output; rows run on at most
//     o.workers goroutines.
//
// Determinism: each row owns its stream and its output span, so seeded
// output is identical for any worker count.
//
// Complexity: O(rows*K + rows*n*log K) time, O(rows*(K+n)) memory.
func sampleBatch(arena []float64, rows, outcomes, n int, o *Options) ([]int32, error) {
	if err := prepareBatch(arena, rows, outcomes, o.rowMode()); err != nil {
		return nil, err
	}

	base, err := o.baseSeed()
	if err != nil {
		return nil, err
	}
	sources := make([]random.Source, rows)
	for r := range sources {
		if sources[r], err = o.factory(random.DeriveSeed(base, uint64(r))); err != nil {
			return nil, fmt.Errorf("row %d source: %w", r, err)
		}
	}

	workers := o.workers
	if workers > rows {
		workers = rows
	}
	o.logger.Debug("multinomial: sampling",
		zap.Int("rows", rows),
		zap.Int("outcomes", outcomes),
		zap.Int("samples", n),
		zap.Bool("seeded", o.seeded),
		zap.Int("workers", workers),
	)

	out := make([]int32, rows*n)
	cdfs := make([]float64, rows*outcomes)

	var g errgroup.Group
	g.SetLimit(workers)
	for r := 0; r < rows; r++ {
		r := r
		g.Go(func() error {
			c := buildCDF(cdfs[r*outcomes:(r+1)*outcomes], arena[r*outcomes:(r+1)*outcomes])
			if !(c.total > 0) {
				return fmt.Errorf("row %d: cumulative total %v: %w", r, c.total, ErrInvalidDistribution)
			}
			if m := drawRow(c, sources[r], out[r*n:(r+1)*n]); m > 0 {
				o.logger.Debug("multinomial: cdf drift clamped",
					zap.Int("row", r),
					zap.Int("draws", m),
					zap.Int("outcome", c.last),
				)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
