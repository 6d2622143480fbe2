// SPDX-License-Identifier: MIT
// Package multinomial_test contains shared fixtures.
//
// Purpose:
//   - Small deterministic inputs and counting helpers used across the
//     behavioural, statistical and benchmark tests.

package multinomial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qcgm1978/tfjs-core/random"
	"github.com/qcgm1978/tfjs-core/tensor"
)

const (
	seedDet   = 1337  // fixed seed for reproducibility tests
	nLarge    = 10000 // draws per row for frequency checks
	freqTol   = 0.05  // absolute tolerance on empirical frequencies
	outcomes3 = 3
)

// mustTensor builds a Float64 tensor or fails the test.
func mustTensor(t testing.TB, data []float64, shape ...int) *tensor.Tensor {
	t.Helper()
	x, err := tensor.New(data, shape...)
	require.NoError(t, err)

	return x
}

// mustInt32s reads an Int32 tensor's buffer or fails the test.
func mustInt32s(t testing.TB, x *tensor.Tensor) []int32 {
	t.Helper()
	require.Equal(t, tensor.Int32, x.DType())
	v, err := x.Int32s()
	require.NoError(t, err)

	return v
}

// counts tallies outcome indices over k outcomes.
func counts(draws []int32, k int) []int {
	c := make([]int, k)
	for _, d := range draws {
		c[d]++
	}

	return c
}

// constSource always returns v; used to force edge paths of the search.
type constSource struct{ v float64 }

func (s *constSource) Float64() float64 { return s.v }
func (s *constSource) Seed(uint64)      {}

// constFactory returns a SourceFactory producing constSource{v}.
func constFactory(v float64) func(uint64) (random.Source, error) {
	return func(uint64) (random.Source, error) { return &constSource{v: v}, nil }
}

// readerStub is a foreign tensor.Reader with a configurable (possibly
// inconsistent) shape and value buffer.
type readerStub struct {
	shape  []int
	dtype  tensor.DType
	values []float64
}

func (r readerStub) Rank() int                    { return len(r.shape) }
func (r readerStub) Shape() []int                 { return append([]int(nil), r.shape...) }
func (r readerStub) DType() tensor.DType          { return r.dtype }
func (r readerStub) Float64s() ([]float64, error) { return append([]float64(nil), r.values...), nil }
