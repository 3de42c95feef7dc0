package ndarray

import "errors"

// Failure modes of shape and view operations. Every fallible operation wraps
// one of these with call-site context; match with errors.Is.
var (
	// ErrRankExceedsMax reports a requested rank above MaxRank.
	ErrRankExceedsMax = errors.New("rank exceeds maximum")

	// ErrIndexOutOfBounds reports a coordinate at or beyond its extent.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidRange reports a bad dimension, an empty or overlong subspan
	// range, a negative extent, or an undersized external buffer.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidPermutation reports transpose axes of the wrong length, with
	// an out-of-range value, or with a duplicate.
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrReshapeSizeMismatch reports a reshape whose target extents do not
	// multiply out to the source size.
	ErrReshapeSizeMismatch = errors.New("reshape size mismatch")

	// ErrReshapeNotContiguous reports a reshape or flatten of a view whose
	// strides are not canonical row-major for its extents.
	ErrReshapeNotContiguous = errors.New("reshape requires contiguous layout")
)
