// SPDX-License-Identifier: MIT
// Package tensor provides the minimal dense container consumed and produced
// by the sampling kernels.
// Tensor is row-major and stores its elements in a flat slice; float kinds
// share a float64 buffer, Int32 uses its own int32 buffer.
package tensor

import (
	"fmt"
	"strings"
)

// tensorErrorf wraps an underlying error with Tensor method context.
func tensorErrorf(method string, err error) error {
	return fmt.Errorf("Tensor.%s: %w", method, err)
}

// Tensor is an immutable row-major n-dimensional array.
// Exactly one of f64/i32 is populated, selected by dtype.
type Tensor struct {
	shape []int     // dimension sizes; empty for a scalar
	dtype DType     // element kind
	f64   []float64 // float storage, len == product(shape)
	i32   []int32   // int32 storage, len == product(shape)
}

var _ Reader = (*Tensor)(nil)

// New creates a Float64 tensor over a copy of data with the given shape.
// Stage 1 (Validate): every dim > 0 and len(data) == product(shape).
// Stage 2 (Prepare): copy data so the caller keeps ownership of its slice.
// Complexity: O(n) time and memory.
func New(data []float64, shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, tensorErrorf("New", err)
	}
	if len(data) != size {
		return nil, tensorErrorf("New", ErrSizeMismatch)
	}

	buf := make([]float64, size)
	copy(buf, data)

	return &Tensor{shape: cloneInts(shape), dtype: Float64, f64: buf}, nil
}

// NewFloat32 creates a Float32 tensor; values are widened to float64 once.
// Complexity: O(n).
func NewFloat32(data []float32, shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, tensorErrorf("NewFloat32", err)
	}
	if len(data) != size {
		return nil, tensorErrorf("NewFloat32", ErrSizeMismatch)
	}

	buf := make([]float64, size)
	for i, v := range data {
		buf[i] = float64(v)
	}

	return &Tensor{shape: cloneInts(shape), dtype: Float32, f64: buf}, nil
}

// NewInt32 creates an Int32 tensor over a copy of data.
// Complexity: O(n).
func NewInt32(data []int32, shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, tensorErrorf("NewInt32", err)
	}
	if len(data) != size {
		return nil, tensorErrorf("NewInt32", ErrSizeMismatch)
	}

	buf := make([]int32, size)
	copy(buf, data)

	return &Tensor{shape: cloneInts(shape), dtype: Int32, i32: buf}, nil
}

// WrapInt32 is NewInt32 without the copy: the tensor takes ownership of buf.
// Kernels use it to hand a freshly allocated output buffer to the caller;
// buf must not be written after the call.
// Complexity: O(rank).
func WrapInt32(buf []int32, shape ...int) (*Tensor, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, tensorErrorf("WrapInt32", err)
	}
	if len(buf) != size {
		return nil, tensorErrorf("WrapInt32", ErrSizeMismatch)
	}

	return &Tensor{shape: cloneInts(shape), dtype: Int32, i32: buf}, nil
}

// Scalar returns a rank-0 Float64 tensor holding v.
func Scalar(v float64) *Tensor {
	return &Tensor{shape: []int{}, dtype: Float64, f64: []float64{v}}
}

// Rank returns the number of dimensions.
// Complexity: O(1).
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Shape returns a copy of the dimension sizes.
// Complexity: O(rank).
func (t *Tensor) Shape() []int {
	return cloneInts(t.shape)
}

// Dim returns the size of dimension axis, or ErrOutOfRange.
func (t *Tensor) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(t.shape) {
		return 0, tensorErrorf("Dim", ErrOutOfRange)
	}

	return t.shape[axis], nil
}

// Size returns the number of elements (1 for a scalar).
// Complexity: O(1).
func (t *Tensor) Size() int {
	if t.dtype == Int32 {
		return len(t.i32)
	}

	return len(t.f64)
}

// DType returns the element kind.
func (t *Tensor) DType() DType {
	return t.dtype
}

// Float64s returns a row-major copy of the values.
// Returns ErrDTypeMismatch for Int32 tensors.
// Complexity: O(n).
func (t *Tensor) Float64s() ([]float64, error) {
	if !t.dtype.IsFloat() {
		return nil, tensorErrorf("Float64s", ErrDTypeMismatch)
	}
	out := make([]float64, len(t.f64))
	copy(out, t.f64)

	return out, nil
}

// Int32s returns a row-major copy of the values.
// Returns ErrDTypeMismatch for float tensors.
// Complexity: O(n).
func (t *Tensor) Int32s() ([]int32, error) {
	if t.dtype != Int32 {
		return nil, tensorErrorf("Int32s", ErrDTypeMismatch)
	}
	out := make([]int32, len(t.i32))
	copy(out, t.i32)

	return out, nil
}

// At returns the element at idx as float64, whatever the dtype.
// Stage 1 (Validate): len(idx) == Rank and each index within its dimension.
// Stage 2 (Execute): fold indices into a row-major offset.
// Complexity: O(rank).
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := t.offsetOf(idx)
	if err != nil {
		return 0, tensorErrorf("At", err)
	}
	if t.dtype == Int32 {
		return float64(t.i32[off]), nil
	}

	return t.f64[off], nil
}

// offsetOf computes the flat row-major offset for idx.
func (t *Tensor) offsetOf(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, ErrOutOfRange
		}
		off = off*t.shape[axis] + i
	}

	return off, nil
}

// String implements fmt.Stringer for debugging, e.g. "int32[2 3] [0 1 2 0 1 2]".
func (t *Tensor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%v ", t.dtype, t.shape)
	if t.dtype == Int32 {
		fmt.Fprintf(&b, "%v", t.i32)
	} else {
		fmt.Fprintf(&b, "%v", t.f64)
	}

	return b.String()
}

// sizeOf returns the product of shape, rejecting non-positive dims.
// An empty shape is a scalar of size 1.
func sizeOf(shape []int) (int, error) {
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrInvalidDimensions
		}
		size *= d
	}

	return size, nil
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
