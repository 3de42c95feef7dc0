package ndarray

import "iter"

// walk visits every element position in row-major order of the shape,
// yielding the coordinate and its linear offset. Coordinate and offset are
// maintained incrementally, odometer style, so non-contiguous strides cost
// no per-element multiplies. The indices slice is reused between visits.
func (s Shape) walk(visit func(indices []int, offset int) bool) {
	if s.rank == 0 || s.Size() == 0 {
		return
	}

	var idx [MaxRank]int
	indices := idx[:s.rank]
	offset := 0
	for {
		if !visit(indices, offset) {
			return
		}

		// Advance the innermost axis; carry into outer axes on overflow.
		axis := s.rank - 1
		for axis >= 0 {
			idx[axis]++
			offset += s.strides[axis]
			if idx[axis] < s.extents[axis] {
				break
			}
			offset -= idx[axis] * s.strides[axis]
			idx[axis] = 0
			axis--
		}
		if axis < 0 {
			return
		}
	}
}

// Values yields the view's elements in row-major order of its current shape.
// For a transposed or sub-spanned view, successive logical positions may sit
// at non-adjacent memory offsets; the traversal follows the strides rather
// than the buffer order.
func (v View[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		v.shape.walk(func(_ []int, offset int) bool {
			return yield(v.data[offset])
		})
	}
}

// All yields each coordinate together with its element, in row-major order
// of the current shape. The yielded index slice is owned by the iterator and
// reused between iterations; callers must not retain or modify it.
func (v View[E]) All() iter.Seq2[[]int, E] {
	return func(yield func([]int, E) bool) {
		v.shape.walk(func(indices []int, offset int) bool {
			return yield(indices, v.data[offset])
		})
	}
}
