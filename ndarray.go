// Package ndarray provides dynamic-rank multidimensional arrays and
// non-owning strided views over contiguous memory.
//
// The package defines two data types sharing one indexing and
// shape-transformation engine:
//   - Array[E]: owning container, one allocation, deep-copy semantics
//   - View[E]: non-owning (buffer, Shape) pair aliasing existing memory
//
// Arrays and views use row-major layout (last axis varies fastest). All
// shape transforms (Subspan, Slice, Reshape, Transpose, Flatten, Squeeze)
// are O(rank) view operations that never copy element data; materializing a
// view into owned storage is explicit via FromView.
//
// Example:
//
//	m, _ := ndarray.New[float64](3, 4)
//	m.Fill(1.0)
//	m.Set(5.0, 1, 2)
//	sub, _ := m.Subspan(0, 1, 3) // rows 1-2, aliases m
//	sub.Set(9.0, 0, 0)           // visible through m
package ndarray

import (
	"github.com/pingelit/nd-array/internal/ndarray"
)

// MaxRank is the maximum number of dimensions; shape metadata is sized to it
// at compile time.
const MaxRank = ndarray.MaxRank

// Shape describes extents, strides, and rank of an array or view.
type Shape = ndarray.Shape

// View is a non-owning strided window over contiguous memory.
// The referenced buffer must outlive the view's use.
type View[E any] = ndarray.View[E]

// Array is an owning multidimensional container with a single contiguous
// allocation and deep-copy semantics.
type Array[E any] = ndarray.Array[E]

// Failure modes reported by shape and view operations; match with errors.Is.
var (
	ErrRankExceedsMax       = ndarray.ErrRankExceedsMax
	ErrIndexOutOfBounds     = ndarray.ErrIndexOutOfBounds
	ErrInvalidRange         = ndarray.ErrInvalidRange
	ErrInvalidPermutation   = ndarray.ErrInvalidPermutation
	ErrReshapeSizeMismatch  = ndarray.ErrReshapeSizeMismatch
	ErrReshapeNotContiguous = ndarray.ErrReshapeNotContiguous
)

// NewShape builds a shape with canonical row-major strides.
//
// Example:
//
//	s, _ := ndarray.NewShape(3, 4) // strides [4 1], size 12
func NewShape(extents ...int) (Shape, error) {
	return ndarray.NewShape(extents...)
}

// New allocates a zero-initialized array with the given extents.
//
// Example:
//
//	arr, _ := ndarray.New[float32](2, 3, 4)
func New[E any](extents ...int) (*Array[E], error) {
	return ndarray.New[E](extents...)
}

// FromSlice builds an array from a row-major slice of elements.
//
// Example:
//
//	arr, _ := ndarray.FromSlice([]int{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice[E any](data []E, extents ...int) (*Array[E], error) {
	return ndarray.FromSlice(data, extents...)
}

// Full builds an array with every element set to value.
//
// Example:
//
//	arr, _ := ndarray.Full(3.14, 3, 3)
func Full[E any](value E, extents ...int) (*Array[E], error) {
	return ndarray.Full(value, extents...)
}

// NewView wraps externally owned contiguous memory, without copying.
//
// Example:
//
//	buf := make([]float64, 12)
//	v, _ := ndarray.NewView(buf, 3, 4)
func NewView[E any](data []E, extents ...int) (View[E], error) {
	return ndarray.NewView(data, extents...)
}

// FromView materializes a view into a new, independent array by walking the
// view in logical order. This is the only path that turns a non-contiguous
// view into owned contiguous storage.
func FromView[E any](v View[E]) *Array[E] {
	return ndarray.FromView(v)
}

// Convert materializes a view into an array of a different element type,
// applying convert to each element.
//
// Example:
//
//	f64, _ := ndarray.FromSlice([]float64{0.5, 1.5}, 2)
//	f32 := ndarray.Convert(f64.View(), func(x float64) float32 { return float32(x) })
func Convert[U, E any](v View[E], convert func(E) U) *Array[U] {
	return ndarray.Convert(v, convert)
}
