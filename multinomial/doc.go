// SPDX-License-Identifier: MIT

// Package multinomial draws categorical samples from batches of discrete
// probability distributions.
//
// 🚀 What does it do?
//
//	Given a probability tensor of shape [K] (one distribution) or [B, K]
//	(B independent distributions over K outcomes), Multinomial returns an
//	int32 tensor of shape [N] or [B, N] holding N independent outcome
//	indices per distribution.
//
// ✨ Key features:
//   - raw weights are divided by their row sum; WithNormalized(true) skips
//     the division for rows that already sum to ~1
//   - WithLogits samples from softmax(row) instead
//   - inverse-CDF sampling: one cumulative sum per row, binary search per draw
//   - WithSeed makes output bit-reproducible; each row draws from its own
//     derived stream, so results do not depend on WithWorkers
//   - all validation happens before the first draw: a call returns a full
//     result or an error, never a partial tensor
//
// ⚙️ Usage:
//
//	probs, _ := tensor.New([]float64{0.2, 0.8, 0.5, 0.5}, 2, 2)
//	out, err := multinomial.Multinomial(probs, 100, multinomial.WithSeed(7))
//	// out.Shape() == [2 100], out.DType() == tensor.Int32
//
// Errors: ErrInvalidRank, ErrDegenerateDistribution, ErrInvalidDistribution,
// ErrInvalidSampleCount, plus tensor sentinels for container misuse.
//
// Performance:
//
//   - Time:   O(B·K + B·N·log K)
//   - Memory: O(B·(K+N))
package multinomial
