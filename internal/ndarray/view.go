package ndarray

import "fmt"

// View is a non-owning strided window over contiguous memory. It pairs a
// backing slice, whose first element is the view's origin, with a Shape.
// Views alias: writes through a view are visible in the underlying buffer
// and in every other view of it. The view performs no synchronization;
// concurrent mutation of overlapping views is the caller's responsibility,
// as with shared mutable slices.
//
// The zero value is an empty view of rank 0.
type View[E any] struct {
	data  []E
	shape Shape
}

// NewView wraps externally owned contiguous memory in a row-major view with
// the given extents. The buffer must hold at least as many elements as the
// shape describes.
func NewView[E any](data []E, extents ...int) (View[E], error) {
	shape, err := NewShape(extents...)
	if err != nil {
		return View[E]{}, fmt.Errorf("NewView: %w", err)
	}
	if size := shape.Size(); len(data) < size {
		return View[E]{}, fmt.Errorf("NewView: buffer holds %d elements, shape %v requires %d: %w", len(data), shape, size, ErrInvalidRange)
	}
	return View[E]{data: data, shape: shape}, nil
}

// viewOf wires up a transform result. data must already be advanced to the
// view's origin and shape must be internally consistent.
func viewOf[E any](data []E, shape Shape) View[E] {
	return View[E]{data: data, shape: shape}
}

// advance moves the origin forward by offset elements. A zero-size view may
// place its origin past the end of the buffer; clamp instead of panicking,
// since no element of such a view is addressable anyway.
func advance[E any](data []E, offset int) []E {
	if offset > len(data) {
		return data[len(data):]
	}
	return data[offset:]
}

// Shape returns the view's shape.
func (v View[E]) Shape() Shape {
	return v.shape
}

// Rank returns the number of dimensions.
func (v View[E]) Rank() int {
	return v.shape.rank
}

// Size returns the total number of elements.
func (v View[E]) Size() int {
	return v.shape.Size()
}

// Extent returns the size of one dimension. Panics if dim >= rank.
func (v View[E]) Extent(dim int) int {
	return v.shape.Extent(dim)
}

// Stride returns the stride of one dimension. Panics if dim >= rank.
func (v View[E]) Stride(dim int) int {
	return v.shape.Stride(dim)
}

// Extents returns a copy of the active extents.
func (v View[E]) Extents() []int {
	return v.shape.Extents()
}

// IsContiguous reports whether the view's elements are laid out in canonical
// row-major order with no gaps. Freshly wrapped buffers are contiguous;
// subspans on non-leading axes and transposes generally are not.
func (v View[E]) IsContiguous() bool {
	return v.shape.IsContiguous()
}

// Data returns the backing slice starting at the view's origin.
// For a non-contiguous view the slice also covers elements outside the view.
func (v View[E]) Data() []E {
	return v.data
}

// At returns the element at the given coordinate.
// Panics if the number of indices differs from the rank or any index is out
// of bounds.
func (v View[E]) At(indices ...int) E {
	return *v.ref(indices)
}

// Set assigns the element at the given coordinate. The write is visible in
// the underlying buffer. Panics on a bad coordinate, like At.
func (v View[E]) Set(value E, indices ...int) {
	*v.ref(indices) = value
}

// Ptr returns a pointer to the element at the given coordinate, for callers
// that want checked reference-style access instead of At/Set.
func (v View[E]) Ptr(indices ...int) (*E, error) {
	if len(indices) != v.shape.rank {
		return nil, fmt.Errorf("Ptr: got %d indices for rank %d: %w", len(indices), v.shape.rank, ErrIndexOutOfBounds)
	}
	offset, err := v.shape.Offset(indices...)
	if err != nil {
		return nil, fmt.Errorf("Ptr: %w", err)
	}
	return &v.data[offset], nil
}

func (v View[E]) ref(indices []int) *E {
	if len(indices) != v.shape.rank {
		panic(fmt.Sprintf("expected %d indices, got %d", v.shape.rank, len(indices)))
	}
	offset, err := v.shape.Offset(indices...)
	if err != nil {
		panic(err)
	}
	return &v.data[offset]
}

// Subspan restricts one dimension to the half-open range [start, end).
// The result aliases the same buffer: its origin advances by
// start*stride(dim), the extent of dim becomes end-start, and every other
// axis is unchanged.
func (v View[E]) Subspan(dim, start, end int) (View[E], error) {
	if dim < 0 || dim >= v.shape.rank {
		return View[E]{}, fmt.Errorf("Subspan: dimension %d out of range for rank %d: %w", dim, v.shape.rank, ErrInvalidRange)
	}
	if start < 0 || start >= end || end > v.shape.extents[dim] {
		return View[E]{}, fmt.Errorf("Subspan: range [%d, %d) invalid for extent %d: %w", start, end, v.shape.extents[dim], ErrInvalidRange)
	}

	shape := v.shape
	shape.extents[dim] = end - start
	return viewOf(advance(v.data, start*v.shape.strides[dim]), shape), nil
}

// Slice fixes one dimension at the given index, producing a view of rank
// rank-1. The remaining axes keep their relative order, extents, and
// strides; the origin advances by index*stride(dim).
func (v View[E]) Slice(dim, index int) (View[E], error) {
	if dim < 0 || dim >= v.shape.rank {
		return View[E]{}, fmt.Errorf("Slice: dimension %d out of range for rank %d: %w", dim, v.shape.rank, ErrInvalidRange)
	}
	if index < 0 || index >= v.shape.extents[dim] {
		return View[E]{}, fmt.Errorf("Slice: index %d out of bounds for dimension %d (extent %d): %w", index, dim, v.shape.extents[dim], ErrIndexOutOfBounds)
	}

	var shape Shape
	shape.rank = v.shape.rank - 1
	j := 0
	for i := 0; i < v.shape.rank; i++ {
		if i == dim {
			continue
		}
		shape.extents[j] = v.shape.extents[i]
		shape.strides[j] = v.shape.strides[i]
		j++
	}
	return viewOf(advance(v.data, index*v.shape.strides[dim]), shape), nil
}

// Reshape reinterprets the view's elements under new extents. The view must
// be contiguous and the new extents must multiply out to the current size.
// The result shares the same origin with fresh row-major strides.
func (v View[E]) Reshape(extents ...int) (View[E], error) {
	shape, err := NewShape(extents...)
	if err != nil {
		return View[E]{}, fmt.Errorf("Reshape: %w", err)
	}
	if !v.shape.IsContiguous() {
		return View[E]{}, fmt.Errorf("Reshape: view with extents %v and strides %v is not contiguous: %w", v.shape.Extents(), v.shape.Strides(), ErrReshapeNotContiguous)
	}
	if shape.Size() != v.shape.Size() {
		return View[E]{}, fmt.Errorf("Reshape: cannot reshape %d elements to %v (%d elements): %w", v.shape.Size(), shape, shape.Size(), ErrReshapeSizeMismatch)
	}
	return viewOf(v.data, shape), nil
}

// Flatten returns a 1-D view of all elements.
// Same contiguity precondition as Reshape.
func (v View[E]) Flatten() (View[E], error) {
	return v.Reshape(v.shape.Size())
}

// Transpose permutes the axes: output axis i takes the extent and stride of
// input axis axes[i]. No element data moves.
func (v View[E]) Transpose(axes ...int) (View[E], error) {
	if err := validatePermutation(axes, v.shape.rank); err != nil {
		return View[E]{}, fmt.Errorf("Transpose: %w", err)
	}

	var shape Shape
	shape.rank = v.shape.rank
	for i, ax := range axes {
		shape.extents[i] = v.shape.extents[ax]
		shape.strides[i] = v.shape.strides[ax]
	}
	return viewOf(v.data, shape), nil
}

// T swaps the last two axes, the common matrix transpose.
// Panics if the rank is below 2.
func (v View[E]) T() View[E] {
	n := v.shape.rank
	if n < 2 {
		panic(fmt.Sprintf("T: rank %d view has no matrix axes", n))
	}

	shape := v.shape
	shape.extents[n-2], shape.extents[n-1] = shape.extents[n-1], shape.extents[n-2]
	shape.strides[n-2], shape.strides[n-1] = shape.strides[n-1], shape.strides[n-2]
	return viewOf(v.data, shape)
}

// Squeeze drops every axis with extent 1, preserving the relative order of
// the remaining axes. Squeezing an all-unit or rank-0 view yields rank 0.
func (v View[E]) Squeeze() View[E] {
	var shape Shape
	for i := 0; i < v.shape.rank; i++ {
		if v.shape.extents[i] == 1 {
			continue
		}
		shape.extents[shape.rank] = v.shape.extents[i]
		shape.strides[shape.rank] = v.shape.strides[i]
		shape.rank++
	}
	return viewOf(v.data, shape)
}

// String returns a short description, e.g. "View[3 4]".
func (v View[E]) String() string {
	return fmt.Sprintf("View%v", v.shape)
}
