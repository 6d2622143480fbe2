// SPDX-License-Identifier: MIT

package multinomial

// Test bridge (white-box) for private kernels.
//
// Purpose:
//   - Expose the CDF builder, the inverse-CDF search and the batch
//     preparation step to multinomial_test without widening the API.
//   - Compiled only with `go test` (the _test.go suffix), never in builds.

// CDFForTest builds the cumulative distribution of probs and returns its
// entries, total and clamp target.
func CDFForTest(probs []float64) (cum []float64, total float64, last int) {
	c := buildCDF(make([]float64, len(probs)), probs)

	return c.cum, c.total, c.last
}

// IndexForTest runs the inverse-CDF search for u over probs.
func IndexForTest(probs []float64, u float64) (int, bool) {
	return buildCDF(make([]float64, len(probs)), probs).index(u)
}

// NormalizeRowForTest exposes normalizeRow.
var NormalizeRowForTest = normalizeRow

// SoftmaxRowForTest exposes softmaxRow.
var SoftmaxRowForTest = softmaxRow

// PrepareBatchForTest runs the default (divide) preparation over a batch.
func PrepareBatchForTest(arena []float64, rows, outcomes int) error {
	return prepareBatch(arena, rows, outcomes, prepDivide)
}
