package frame

import "errors"

// Sentinel errors for frame geometry generation. All constructors validate
// options fail-fast and return these via errors.Is-compatible wrapping.
var (
	// ErrBadRadius indicates a non-positive pipe radius.
	ErrBadRadius = errors.New("frame: pipe radius must be > 0")
	// ErrBadLength indicates a non-positive pipe length.
	ErrBadLength = errors.New("frame: pipe length must be > 0")
	// ErrBadSamples indicates a sample count too small to form a surface or path.
	ErrBadSamples = errors.New("frame: sample count must be >= 2")
	// ErrBadScale indicates a non-positive axis display scale.
	ErrBadScale = errors.New("frame: axis display scale must be > 0")
)
