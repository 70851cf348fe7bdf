// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// transform package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package transform

import "errors"

// Every message is prefixed with "transform: ..." for consistency and to
// allow easy grepping across logs. Sentinels are wrapped with an operation
// tag at the facade (see transformErrorf); callers still match via errors.Is.
var (
	// ErrNilMatrix indicates that a nil *mat.Dense was passed to a kernel.
	ErrNilMatrix = errors.New("transform: nil matrix")

	// ErrBadShape is returned when requested dimensions are invalid
	// (rows/cols <= 0) or backing data length does not match rows*cols.
	ErrBadShape = errors.New("transform: invalid shape")

	// ErrNotSquare signals that a square matrix was required but the input
	// wasn't (Inverse, Det, RotationOf).
	ErrNotSquare = errors.New("transform: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("transform: dimension mismatch")

	// ErrNotHomogeneous signals that a 4×4 homogeneous transform was
	// required (RotationOf, TranslationOf) but the input has another shape.
	ErrNotHomogeneous = errors.New("transform: matrix is not a 4x4 homogeneous transform")

	// ErrBadRotation signals that a 3×3 rotation block was required
	// (NewHomogeneous) but the input has another shape.
	ErrBadRotation = errors.New("transform: rotation block is not 3x3")

	// ErrSingular is returned when inversion fails because the matrix is
	// singular (or numerically indistinguishable from singular). The
	// underlying library failure is carried in the wrapped message.
	ErrSingular = errors.New("transform: singular matrix")
)
