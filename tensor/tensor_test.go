// SPDX-License-Identifier: MIT

package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcgm1978/tfjs-core/tensor"
)

func TestNew_ShapeAndAccessors(t *testing.T) {
	t.Parallel()

	data := []float64{1, 2, 3, 4, 5, 6}
	x, err := tensor.New(data, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, []int{2, 3}, x.Shape())
	assert.Equal(t, 6, x.Size())
	assert.Equal(t, tensor.Float64, x.DType())

	d1, err := x.Dim(1)
	require.NoError(t, err)
	assert.Equal(t, 3, d1)

	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	// The tensor owns a copy; mutating the source must not leak in.
	data[0] = 100
	got, err := x.Float64s()
	require.NoError(t, err)
	assert.Equal(t, 1.0, got[0])

	// Shape returns a copy as well.
	s := x.Shape()
	s[0] = 42
	assert.Equal(t, []int{2, 3}, x.Shape())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := tensor.New([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, tensor.ErrSizeMismatch)

	_, err = tensor.New(nil, 0, 3)
	assert.ErrorIs(t, err, tensor.ErrInvalidDimensions)

	_, err = tensor.NewInt32([]int32{1}, -1)
	assert.ErrorIs(t, err, tensor.ErrInvalidDimensions)

	_, err = tensor.WrapInt32([]int32{1, 2}, 3)
	assert.ErrorIs(t, err, tensor.ErrSizeMismatch)
}

func TestAt_OutOfRange(t *testing.T) {
	t.Parallel()

	x, err := tensor.New([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	_, err = x.At(2, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = x.At(0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "index count must equal rank")
	_, err = x.Dim(2)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
}

func TestDTypeReads(t *testing.T) {
	t.Parallel()

	f, err := tensor.NewFloat32([]float32{0.25, 0.75}, 2)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, f.DType())
	vals, err := f.Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, vals)
	_, err = f.Int32s()
	assert.ErrorIs(t, err, tensor.ErrDTypeMismatch)

	i, err := tensor.NewInt32([]int32{3, 1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, tensor.Int32, i.DType())
	ints, err := i.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 1, 2}, ints)
	_, err = i.Float64s()
	assert.ErrorIs(t, err, tensor.ErrDTypeMismatch)

	v, err := i.At(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestScalar(t *testing.T) {
	t.Parallel()

	s := tensor.Scalar(0.5)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Size())
	v, err := s.At()
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func TestString(t *testing.T) {
	t.Parallel()

	x, err := tensor.WrapInt32([]int32{0, 1, 1, 0}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "int32[2 2] [0 1 1 0]", x.String())
}

func TestValidators(t *testing.T) {
	t.Parallel()

	var nilT *tensor.Tensor
	assert.ErrorIs(t, tensor.ValidateNotNil(nil), tensor.ErrNilTensor)
	assert.ErrorIs(t, tensor.ValidateNotNil(nilT), tensor.ErrNilTensor)

	i, err := tensor.NewInt32([]int32{1, 2}, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, tensor.ValidateFloat(i), tensor.ErrDTypeMismatch)

	assert.NoError(t, tensor.ValidateLen([]float64{1, 2, 3, 4}, []int{2, 2}))
	assert.ErrorIs(t, tensor.ValidateLen([]float64{1, 2, 3}, []int{2, 2}), tensor.ErrSizeMismatch)

	assert.NoError(t, tensor.ValidateFinite([]float64{0, 1, -3}))
	assert.ErrorIs(t, tensor.ValidateFinite([]float64{0, math.NaN()}), tensor.ErrNaNInf)
	assert.ErrorIs(t, tensor.ValidateFinite([]float64{math.Inf(-1)}), tensor.ErrNaNInf)
}

func TestDTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "float32", tensor.Float32.String())
	assert.Equal(t, "float64", tensor.Float64.String())
	assert.Equal(t, "int32", tensor.Int32.String())
	assert.Equal(t, "unknown", tensor.DType(99).String())
	assert.False(t, tensor.Int32.IsFloat())
}
