// SPDX-License-Identifier: MIT

// Package multinomial: functional configuration for the sampling kernel.
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Determinism is opt-in via WithSeed; unseeded calls draw a base seed
//     from system entropy.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); user data errors are returned, never panicked.
package multinomial

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/qcgm1978/tfjs-core/random"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNormalized: rows are raw weights and get divided by their sum.
	DefaultNormalized = false

	// DefaultLogits: rows are weights, not log-weights.
	DefaultLogits = false

	// DefaultGenerator is the PRNG behind each per-row stream.
	DefaultGenerator = random.DefaultKind
)

// DefaultWorkers bounds row-level parallelism when WithWorkers is not given.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid  = "multinomial: WithWorkers: n must be >= 1"
	panicGeneratorKind   = "multinomial: WithGenerator: unknown generator kind"
	panicFactoryNil      = "multinomial: WithSourceFactory: factory must be non-nil"
	panicLogitsNormalize = "multinomial: WithLogits and WithNormalized(true) are mutually exclusive"
)

// SourceFactory builds the uniform source for one row from its derived seed.
type SourceFactory func(seed uint64) (random.Source, error)

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options is the resolved configuration of one kernel call. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	seed       int64 // meaningful only when seeded
	seeded     bool
	normalized bool // DefaultNormalized
	logits     bool // DefaultLogits
	workers    int  // >= 1
	factory    SourceFactory
	logger     *zap.Logger
}

// DefaultOptions returns the configuration used when no Option is passed.
func DefaultOptions() Options {
	return Options{
		normalized: DefaultNormalized,
		logits:     DefaultLogits,
		workers:    DefaultWorkers(),
		factory:    generatorFactory(DefaultGenerator),
		logger:     zap.NewNop(),
	}
}

// WithSeed makes the call reproducible: identical probabilities, sample
// count and seed yield identical output, whatever the worker count.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithNormalized declares that every row already sums to ~1, which skips
// the division pass. Rows are still checked for negative or non-finite
// weights and a non-positive sum.
func WithNormalized(normalized bool) Option {
	return func(o *Options) {
		o.normalized = normalized
	}
}

// WithLogits treats rows as unnormalized log-probabilities and applies a
// max-subtracted softmax before sampling. -Inf marks an impossible outcome.
func WithLogits() Option {
	return func(o *Options) {
		o.logits = true
	}
}

// WithWorkers bounds how many rows are sampled concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.workers = n
	}
}

// WithGenerator selects the PRNG algorithm for the per-row streams.
// Panics on a Kind unknown to package random.
func WithGenerator(kind random.Kind) Option {
	if !kind.Valid() {
		panic(panicGeneratorKind)
	}

	return func(o *Options) {
		o.factory = generatorFactory(kind)
	}
}

// WithSourceFactory replaces the per-row source constructor entirely, e.g.
// to plug in a recorded or hardware-backed stream. Panics on nil.
func WithSourceFactory(f SourceFactory) Option {
	if f == nil {
		panic(panicFactoryNil)
	}

	return func(o *Options) {
		o.factory = f
	}
}

// WithLogger routes debug events (call shape, clamped draws) to l.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over DefaultOptions and enforces cross-field
// invariants.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logits && o.normalized {
		panic(panicLogitsNormalize)
	}

	return o
}

// generatorFactory adapts a random.Kind to a SourceFactory.
func generatorFactory(kind random.Kind) SourceFactory {
	return func(seed uint64) (random.Source, error) {
		return random.New(kind, seed)
	}
}

// baseSeed returns the parent seed for the per-row streams: the caller's
// seed when given, otherwise fresh system entropy.
func (o *Options) baseSeed() (uint64, error) {
	if o.seeded {
		return uint64(o.seed), nil
	}

	return random.EntropySeed()
}

// rowMode maps the options onto the per-row preparation step.
func (o *Options) rowMode() prepMode {
	switch {
	case o.logits:
		return prepSoftmax
	case o.normalized:
		return prepTrust
	default:
		return prepDivide
	}
}
