// SPDX-License-Identifier: MIT

// Package random centralizes the uniform random sources used by the sampling
// kernels.
//
// Goals:
//   - Determinism: the same seed and Kind reproduce the same sequence.
//   - Restartability: Source.Seed rewinds a stream to the start of the
//     sequence for that seed.
//   - Independence: DeriveSeed mixes a parent seed with a stream id so each
//     batch row (or worker) gets its own stream; results then do not depend
//     on how many goroutines consume them.
//   - Entropy: EntropySeed draws a base seed from the operating system for
//     callers that did not ask for reproducibility.
//
// Concurrency:
//   - A Source is NOT goroutine-safe. Give each goroutine its own Source,
//     typically New(kind, DeriveSeed(base, id)).
//
// Generators come from gonum.org/v1/gonum/mathext/prng and are driven through
// golang.org/x/exp/rand, whose Float64 never returns 1.
package random
