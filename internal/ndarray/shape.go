package ndarray

import "fmt"

// MaxRank is the maximum number of dimensions a shape can hold.
// Shape metadata is sized to MaxRank at compile time so that no heap
// allocation is needed for extents or strides.
const MaxRank = 8

// Shape describes the dimensions of a view or array: per-axis extents,
// per-axis strides, and the number of active dimensions. Only the first
// rank entries of extents and strides are meaningful; the rest are zero.
//
// Shape is a value type. Transforms never mutate a shape in place; they
// derive a new one.
type Shape struct {
	extents [MaxRank]int
	strides [MaxRank]int
	rank    int
}

// NewShape builds a shape from the given extents with canonical row-major
// strides (last axis varies fastest).
func NewShape(extents ...int) (Shape, error) {
	if len(extents) > MaxRank {
		return Shape{}, fmt.Errorf("NewShape: rank %d exceeds maximum %d: %w", len(extents), MaxRank, ErrRankExceedsMax)
	}

	var s Shape
	s.rank = len(extents)
	for i, e := range extents {
		if e < 0 {
			return Shape{}, fmt.Errorf("NewShape: negative extent %d at dimension %d: %w", e, i, ErrInvalidRange)
		}
		s.extents[i] = e
	}
	s.computeStrides()
	return s, nil
}

// computeStrides derives canonical row-major strides for the active extents.
// Entries at index >= rank stay zero.
func (s *Shape) computeStrides() {
	if s.rank == 0 {
		return
	}
	s.strides[s.rank-1] = 1
	for i := s.rank - 1; i > 0; i-- {
		s.strides[i-1] = s.strides[i] * s.extents[i]
	}
}

// Rank returns the number of active dimensions.
func (s Shape) Rank() int {
	return s.rank
}

// Size returns the total number of elements: the product of the active
// extents, or 0 for a rank-0 shape.
func (s Shape) Size() int {
	if s.rank == 0 {
		return 0
	}
	n := 1
	for i := 0; i < s.rank; i++ {
		n *= s.extents[i]
	}
	return n
}

// Extent returns the size of one dimension.
// Panics if dim is not in [0, rank).
func (s Shape) Extent(dim int) int {
	if dim < 0 || dim >= s.rank {
		panic(fmt.Sprintf("Extent: dimension %d out of range for rank %d", dim, s.rank))
	}
	return s.extents[dim]
}

// Stride returns the stride of one dimension.
// Panics if dim is not in [0, rank).
func (s Shape) Stride(dim int) int {
	if dim < 0 || dim >= s.rank {
		panic(fmt.Sprintf("Stride: dimension %d out of range for rank %d", dim, s.rank))
	}
	return s.strides[dim]
}

// Extents returns a copy of the active extents.
func (s Shape) Extents() []int {
	out := make([]int, s.rank)
	copy(out, s.extents[:s.rank])
	return out
}

// Strides returns a copy of the active strides.
func (s Shape) Strides() []int {
	out := make([]int, s.rank)
	copy(out, s.strides[:s.rank])
	return out
}

// Offset computes the linear offset of a multi-dimensional coordinate.
// Fewer indices than rank address the leading axes (the offset of the
// sub-array they select); more indices than rank is an error.
func (s Shape) Offset(indices ...int) (int, error) {
	if len(indices) > s.rank {
		return 0, fmt.Errorf("Offset: got %d indices for rank %d: %w", len(indices), s.rank, ErrIndexOutOfBounds)
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= s.extents[i] {
			return 0, fmt.Errorf("Offset: index %d out of bounds for dimension %d (extent %d): %w", idx, i, s.extents[i], ErrIndexOutOfBounds)
		}
		offset += idx * s.strides[i]
	}
	return offset, nil
}

// IsContiguous reports whether the strides are the canonical row-major
// derivation of the extents. Rank-0 and zero-size shapes are trivially
// contiguous.
func (s Shape) IsContiguous() bool {
	if s.rank == 0 || s.Size() == 0 {
		return true
	}
	if s.strides[s.rank-1] != 1 {
		return false
	}
	for i := s.rank - 1; i > 0; i-- {
		if s.strides[i-1] != s.strides[i]*s.extents[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two shapes have the same rank, extents, and strides.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// String returns the active extents, e.g. "[3 4]".
func (s Shape) String() string {
	return fmt.Sprintf("%v", s.Extents())
}

// validatePermutation checks that axes is a permutation of 0..rank-1.
func validatePermutation(axes []int, rank int) error {
	if len(axes) != rank {
		return fmt.Errorf("axes length %d must match rank %d: %w", len(axes), rank, ErrInvalidPermutation)
	}
	var seen [MaxRank]bool
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return fmt.Errorf("axis %d out of range [0, %d): %w", ax, rank, ErrInvalidPermutation)
		}
		if seen[ax] {
			return fmt.Errorf("axis %d appears more than once: %w", ax, ErrInvalidPermutation)
		}
		seen[ax] = true
	}
	return nil
}
