// SPDX-License-Identifier: MIT

// Package tensor: element kinds and the read-only container contract.
// Kernels accept Reader so callers can pass any container that can report
// its shape and expose its values; kernels return *Tensor.
package tensor

// DType names the element kind stored by a tensor.
type DType int

const (
	// Float32 values are stored widened to float64 after float32 rounding.
	Float32 DType = iota

	// Float64 values are stored verbatim.
	Float64

	// Int32 values are stored as int32 (32-bit signed integer semantics).
	Int32
)

// String returns the canonical lower-case dtype name.
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	default:
		return "unknown"
	}
}

// IsFloat reports whether d is a floating-point kind.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// Reader is the read side of a tensor container.
//
// Contract:
//   - Rank() == len(Shape()).
//   - Shape() returns a copy; callers may mutate it freely.
//   - Float64s() returns a row-major copy of the values for float dtypes and
//     ErrDTypeMismatch otherwise. Its length is the product of Shape().
type Reader interface {
	Rank() int
	Shape() []int
	DType() DType
	Float64s() ([]float64, error)
}
