// SPDX-License-Identifier: MIT

package random

// goldenGamma is the SplitMix64 increment (2^64 / phi, odd).
const goldenGamma uint64 = 0x9e3779b97f4a7c15

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
//
// A SplitMix64-style finalizer provides the avalanche: neighbouring stream
// ids (row 0, row 1, ...) map to unrelated seeds, so per-row generators
// seeded this way do not start from correlated states.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + goldenGamma)
	x += goldenGamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Derive returns an independent Source for stream, derived from parent.
// Call during setup, not inside draw loops.
//
// Complexity: O(state size).
func Derive(kind Kind, parent, stream uint64) (Source, error) {
	return New(kind, DeriveSeed(parent, stream))
}
