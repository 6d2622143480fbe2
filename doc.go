// SPDX-License-Identifier: MIT

// Package tfjscore is the root of a small numeric toolkit built around
// categorical sampling.
//
// 🚀 What is inside?
//
//	tensor/          dense row-major Float32/Float64/Int32 container with
//	                 validators and sentinel errors
//	random/          seeded uniform sources (MT19937-64, MT19937, Xoshiro256**)
//	                 and SplitMix64 stream derivation
//	multinomial/     the sampling kernel: [K] or [B,K] probabilities in,
//	                 [N] or [B,N] int32 outcome indices out
//	cmd/multinomial  JSON front end for the kernel
//
// ✨ Guarantees:
//
//   - Inputs are never mutated; every call allocates its own output.
//   - Seeded calls are bit-reproducible regardless of worker count.
//   - Errors are package sentinels wrapped with call-site context.
package tfjscore
