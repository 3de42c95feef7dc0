package ndarray

import "fmt"

// Array is an owning multidimensional container: a single contiguous
// allocation of Size() elements plus a Shape. The allocation happens once at
// construction; nothing but Clone allocates again. An array's own storage is
// always contiguous, so physical and logical element order coincide.
//
// The zero value is the empty array: rank 0, size 0, nil buffer. It is valid
// and inert.
type Array[E any] struct {
	data  []E
	shape Shape
}

// New allocates a zero-initialized array with the given extents.
func New[E any](extents ...int) (*Array[E], error) {
	shape, err := NewShape(extents...)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return newShaped[E](shape), nil
}

// newShaped allocates storage for an already-validated shape.
func newShaped[E any](shape Shape) *Array[E] {
	return &Array[E]{data: make([]E, shape.Size()), shape: shape}
}

// FromSlice builds an array with the given extents and copies data into it
// in row-major order. The slice length must equal the shape's size.
func FromSlice[E any](data []E, extents ...int) (*Array[E], error) {
	shape, err := NewShape(extents...)
	if err != nil {
		return nil, fmt.Errorf("FromSlice: %w", err)
	}
	if shape.Size() != len(data) {
		return nil, fmt.Errorf("FromSlice: shape %v requires %d elements, but got %d: %w", shape, shape.Size(), len(data), ErrInvalidRange)
	}
	arr := newShaped[E](shape)
	copy(arr.data, data)
	return arr, nil
}

// Full builds an array with the given extents, every element set to value.
func Full[E any](value E, extents ...int) (*Array[E], error) {
	arr, err := New[E](extents...)
	if err != nil {
		return nil, fmt.Errorf("Full: %w", err)
	}
	arr.Fill(value)
	return arr, nil
}

// FromView materializes a view into a new, independent array. The view is
// walked in its logical row-major order and assigned sequentially into fresh
// contiguous storage, so non-contiguous views (transposes, subspans) are
// handled without any contiguity requirement. Later writes to the source
// buffer do not affect the result.
func FromView[E any](v View[E]) *Array[E] {
	shape, err := NewShape(v.Extents()...)
	if err != nil {
		panic(err) // a View's shape is already within MaxRank
	}

	arr := newShaped[E](shape)
	i := 0
	v.shape.walk(func(_ []int, offset int) bool {
		arr.data[i] = v.data[offset]
		i++
		return true
	})
	return arr
}

// Convert materializes a view into an array of a different element type.
// The conversion is explicit: convert is applied to each element during the
// logical-order walk, so any narrowing is spelled out at the call site.
func Convert[U, E any](v View[E], convert func(E) U) *Array[U] {
	shape, err := NewShape(v.Extents()...)
	if err != nil {
		panic(err) // a View's shape is already within MaxRank
	}

	arr := newShaped[U](shape)
	i := 0
	v.shape.walk(func(_ []int, offset int) bool {
		arr.data[i] = convert(v.data[offset])
		i++
		return true
	})
	return arr
}

// Clone returns a deep copy: a new allocation with the elements copied.
// Mutating the clone never affects the source and vice versa.
func (a *Array[E]) Clone() *Array[E] {
	clone := &Array[E]{shape: a.shape}
	if len(a.data) > 0 {
		clone.data = make([]E, len(a.data))
		copy(clone.data, a.data)
	}
	return clone
}

// View returns a view aliasing the array's whole buffer.
func (a *Array[E]) View() View[E] {
	return View[E]{data: a.data, shape: a.shape}
}

// Shape returns the array's shape.
func (a *Array[E]) Shape() Shape {
	return a.shape
}

// Rank returns the number of dimensions.
func (a *Array[E]) Rank() int {
	return a.shape.rank
}

// Size returns the total number of elements.
func (a *Array[E]) Size() int {
	return a.shape.Size()
}

// Extent returns the size of one dimension. Panics if dim >= rank.
func (a *Array[E]) Extent(dim int) int {
	return a.shape.Extent(dim)
}

// Stride returns the stride of one dimension. Panics if dim >= rank.
func (a *Array[E]) Stride(dim int) int {
	return a.shape.Stride(dim)
}

// Extents returns a copy of the active extents.
func (a *Array[E]) Extents() []int {
	return a.shape.Extents()
}

// Data returns the array's backing slice in row-major order.
// Modifications to the returned slice modify the array.
func (a *Array[E]) Data() []E {
	return a.data
}

// At returns the element at the given coordinate. Panics like View.At.
func (a *Array[E]) At(indices ...int) E {
	return a.View().At(indices...)
}

// Set assigns the element at the given coordinate. Panics like View.Set.
func (a *Array[E]) Set(value E, indices ...int) {
	a.View().Set(value, indices...)
}

// Fill assigns value to every element.
func (a *Array[E]) Fill(value E) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Apply replaces each element e with f(e), visiting elements in storage
// order.
func (a *Array[E]) Apply(f func(E) E) {
	for i, e := range a.data {
		a.data[i] = f(e)
	}
}

// Subspan restricts one dimension; see View.Subspan.
// The result aliases the array's buffer.
func (a *Array[E]) Subspan(dim, start, end int) (View[E], error) {
	return a.View().Subspan(dim, start, end)
}

// Slice fixes one dimension; see View.Slice.
func (a *Array[E]) Slice(dim, index int) (View[E], error) {
	return a.View().Slice(dim, index)
}

// Reshape reinterprets the elements under new extents; see View.Reshape.
// Array storage is always contiguous, so only a size mismatch can fail.
func (a *Array[E]) Reshape(extents ...int) (View[E], error) {
	return a.View().Reshape(extents...)
}

// Flatten returns a 1-D view of all elements; see View.Flatten.
func (a *Array[E]) Flatten() (View[E], error) {
	return a.View().Flatten()
}

// Transpose permutes the axes; see View.Transpose.
func (a *Array[E]) Transpose(axes ...int) (View[E], error) {
	return a.View().Transpose(axes...)
}

// T swaps the last two axes; see View.T.
func (a *Array[E]) T() View[E] {
	return a.View().T()
}

// Squeeze drops unit axes; see View.Squeeze.
func (a *Array[E]) Squeeze() View[E] {
	return a.View().Squeeze()
}

// IsContiguous reports whether the array's layout is canonical row-major.
// True for every non-zero array by construction.
func (a *Array[E]) IsContiguous() bool {
	return a.shape.IsContiguous()
}

// String returns a short description, e.g. "Array[3 4]".
func (a *Array[E]) String() string {
	return fmt.Sprintf("Array%v", a.shape)
}
