// SPDX-License-Identifier: MIT

package multinomial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcgm1978/tfjs-core/multinomial"
	"github.com/qcgm1978/tfjs-core/tensor"
)

func TestValidateShape(t *testing.T) {
	t.Parallel()

	rows, k, err := multinomial.ValidateShape([]int{5})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	assert.Equal(t, 5, k)

	rows, k, err = multinomial.ValidateShape([]int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, k)

	cases := []struct {
		name  string
		shape []int
		want  error
	}{
		{"rank0", nil, multinomial.ErrInvalidRank},
		{"rank3", []int{1, 2, 3}, multinomial.ErrInvalidRank},
		{"empty batch", []int{0, 3}, tensor.ErrInvalidDimensions},
		{"one outcome", []int{1}, multinomial.ErrDegenerateDistribution},
		{"zero outcomes", []int{2, 0}, multinomial.ErrDegenerateDistribution},
		{"too many outcomes", []int{1, math.MaxInt32 + 1}, tensor.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		_, _, err := multinomial.ValidateShape(tc.shape)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestValidateSampleCount(t *testing.T) {
	t.Parallel()

	assert.NoError(t, multinomial.ValidateSampleCount(1, 1))
	assert.NoError(t, multinomial.ValidateSampleCount(4, 1000))
	assert.ErrorIs(t, multinomial.ValidateSampleCount(1, 0), multinomial.ErrInvalidSampleCount)
	assert.ErrorIs(t, multinomial.ValidateSampleCount(1, -5), multinomial.ErrInvalidSampleCount)
	assert.ErrorIs(t, multinomial.ValidateSampleCount(3, math.MaxInt/2), multinomial.ErrInvalidSampleCount)
}

func TestSampleCount(t *testing.T) {
	t.Parallel()

	n, err := multinomial.SampleCount(100)
	require.NoError(t, err)
	assert.Equal(t, 100, n)

	n, err = multinomial.SampleCount(math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, n)

	for _, v := range []float64{0, -1, 2.5, math.NaN(), math.Inf(1), math.Inf(-1), math.MaxInt32 + 1, 1e300} {
		_, err := multinomial.SampleCount(v)
		assert.ErrorIs(t, err, multinomial.ErrInvalidSampleCount, "v=%v", v)
	}
}
