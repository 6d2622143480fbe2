// SPDX-License-Identifier: MIT

package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

var (
	// ErrUnknownKind indicates a generator Kind outside the known set.
	ErrUnknownKind = errors.New("random: unknown generator kind")

	// ErrEntropy indicates that the operating system entropy source failed.
	ErrEntropy = errors.New("random: entropy source unavailable")
)

// Source yields uniform values in [0, 1).
type Source interface {
	// Float64 returns the next value in [0, 1) and advances the stream.
	Float64() float64

	// Seed rewinds the stream to the start of the sequence for seed.
	Seed(seed uint64)
}

// Kind selects a PRNG algorithm.
type Kind int

const (
	// MT19937_64 is the 64-bit Mersenne Twister; it consumes all 64 seed bits.
	MT19937_64 Kind = iota

	// MT19937 is the 32-bit Mersenne Twister; only the low 32 seed bits matter.
	MT19937

	// Xoshiro256StarStar is xoshiro256** seeded through SplitMix64.
	Xoshiro256StarStar
)

// DefaultKind is the generator used when callers do not pick one.
const DefaultKind = MT19937_64

var kindNames = map[Kind]string{
	MT19937_64:         "mt19937-64",
	MT19937:            "mt19937",
	Xoshiro256StarStar: "xoshiro256**",
}

// String returns the flag-friendly name of k.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k names a known generator.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]

	return ok
}

// ParseKind is the inverse of Kind.String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// prngSource adapts an x/exp/rand generator to Source.
type prngSource struct {
	rng *exprand.Rand
}

func (s *prngSource) Float64() float64 { return s.rng.Float64() }

func (s *prngSource) Seed(seed uint64) { s.rng.Seed(seed) }

// New returns a Source of the given kind positioned at the start of the
// sequence for seed.
// Complexity: O(state size) to seed; O(1) per draw afterwards.
func New(kind Kind, seed uint64) (Source, error) {
	var src exprand.Source
	switch kind {
	case MT19937_64:
		src = prng.NewMT19937_64()
	case MT19937:
		src = prng.NewMT19937()
	case Xoshiro256StarStar:
		src = prng.NewXoshiro256starstar(seed)
	default:
		return nil, fmt.Errorf("New(%d): %w", int(kind), ErrUnknownKind)
	}

	rng := exprand.New(src)
	rng.Seed(seed)

	return &prngSource{rng: rng}, nil
}

// EntropySeed returns a seed read from the operating system's CSPRNG.
// Used only to pick a base seed for unseeded calls; draws themselves still
// come from a fast PRNG.
func EntropySeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("EntropySeed: %w: %v", ErrEntropy, err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
