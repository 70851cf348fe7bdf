// SPDX-License-Identifier: MIT
// Package transform: numeric kernels for rigid-transform matrices.
// All kernels validate first, never mutate operands, and surface package
// sentinels wrapped with a stable operation tag for uniform reporting.

package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "NewMat"
	opIdentity    = "Identity"
	opHomogeneous = "NewHomogeneous"
	opRotation    = "RotationOf"
	opTranslation = "TranslationOf"
	opInverse     = "Inverse"
	opDet         = "Det"
	opMul         = "Mul"
)

// homogeneousDim is the row/column count of a homogeneous transform.
const homogeneousDim = 4

// rotationDim is the row/column count of a rotation sub-block.
const rotationDim = 3

// transformErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil reports ErrNilMatrix for a nil operand.
// Complexity: O(1).
func validateNotNil(m *mat.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSquare reports ErrNotSquare unless m is n×n.
// Complexity: O(1).
func validateSquare(m *mat.Dense) error {
	if r, c := m.Dims(); r != c {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}

	return nil
}

// NewMat creates a rows×cols matrix from row-major data.
// Stage 1 (Validate): rows/cols > 0 and len(data) == rows*cols (nil data
// allocates zeros).
// Stage 2 (Finalize): hand off to gonum once inputs are known-safe, so the
// library's own panic paths are never reachable from here.
// Complexity: O(rows*cols).
func NewMat(rows, cols int, data []float64) (*mat.Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, transformErrorf(opNew, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols))
	}
	// Validate backing data length
	if data != nil && len(data) != rows*cols {
		return nil, transformErrorf(opNew, fmt.Errorf("%w: %d values for %dx%d", ErrBadShape, len(data), rows, cols))
	}

	// Construct
	return mat.NewDense(rows, cols, data), nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*mat.Dense, error) {
	// Validate dimension
	if n <= 0 {
		return nil, transformErrorf(opIdentity, fmt.Errorf("%w: n=%d", ErrBadShape, n))
	}

	// Fill diagonal
	eye := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1)
	}

	return eye, nil
}

// NewHomogeneous assembles a 4×4 homogeneous transform from a 3×3 rotation
// block r and a translation vector t:
//
//	⎡ r00 r01 r02 t0 ⎤
//	⎢ r10 r11 r12 t1 ⎥
//	⎢ r20 r21 r22 t2 ⎥
//	⎣  0   0   0   1 ⎦
//
// Stage 1 (Validate): r non-nil and 3×3.
// Stage 2 (Execute): copy r into the top-left block, t into the last column,
// and set the bottom row to (0,0,0,1). r is not mutated or aliased.
// Complexity: O(1) — fixed 4×4 work.
func NewHomogeneous(r *mat.Dense, t [3]float64) (*mat.Dense, error) {
	// Validate rotation block
	if err := validateNotNil(r); err != nil {
		return nil, transformErrorf(opHomogeneous, err)
	}
	if rows, cols := r.Dims(); rows != rotationDim || cols != rotationDim {
		return nil, transformErrorf(opHomogeneous, fmt.Errorf("%w: got %dx%d", ErrBadRotation, rows, cols))
	}

	// Assemble the block layout
	h := mat.NewDense(homogeneousDim, homogeneousDim, nil)
	var i, j int // loop iterators (deterministic i→j order)
	for i = 0; i < rotationDim; i++ {
		for j = 0; j < rotationDim; j++ {
			h.Set(i, j, r.At(i, j))
		}
		h.Set(i, rotationDim, t[i])
	}
	h.Set(rotationDim, rotationDim, 1)

	return h, nil
}

// RotationOf extracts the top-left 3×3 rotation sub-block of a 4×4
// homogeneous transform as a fresh matrix (no view aliasing).
// Complexity: O(1) — fixed 3×3 copy.
func RotationOf(h *mat.Dense) (*mat.Dense, error) {
	// Validate input non-nil and 4×4
	if err := validateNotNil(h); err != nil {
		return nil, transformErrorf(opRotation, err)
	}
	if rows, cols := h.Dims(); rows != homogeneousDim || cols != homogeneousDim {
		return nil, transformErrorf(opRotation, fmt.Errorf("%w: got %dx%d", ErrNotHomogeneous, rows, cols))
	}

	// Copy the block out; Slice alone would alias h's backing storage.
	return mat.DenseCopyOf(h.Slice(0, rotationDim, 0, rotationDim)), nil
}

// TranslationOf extracts the translation column (last column, first three
// rows) of a 4×4 homogeneous transform.
// Complexity: O(1).
func TranslationOf(h *mat.Dense) ([3]float64, error) {
	var t [3]float64

	// Validate input non-nil and 4×4
	if err := validateNotNil(h); err != nil {
		return t, transformErrorf(opTranslation, err)
	}
	if rows, cols := h.Dims(); rows != homogeneousDim || cols != homogeneousDim {
		return t, transformErrorf(opTranslation, fmt.Errorf("%w: got %dx%d", ErrNotHomogeneous, rows, cols))
	}

	// Read the last column
	for i := 0; i < rotationDim; i++ {
		t[i] = h.At(i, rotationDim)
	}

	return t, nil
}

// Inverse computes m⁻¹, the unique matrix I with m·I = identity.
//
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Execute): delegate to gonum's LU-with-pivoting inversion. Any
// failure the library signals (exactly singular, or numerically
// indistinguishable from singular) is surfaced as ErrSingular with the
// library diagnostic preserved in the wrapped message.
//
// The input is never mutated; the result is freshly allocated.
// Complexity: O(n³) time, O(n²) space.
func Inverse(m *mat.Dense) (*mat.Dense, error) {
	// Validate input non-nil and square
	if err := validateNotNil(m); err != nil {
		return nil, transformErrorf(opInverse, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, transformErrorf(opInverse, err)
	}

	// Delegate to gonum; map its failure onto the package sentinel.
	n, _ := m.Dims()
	inv := mat.NewDense(n, n, nil)
	if err := inv.Inverse(m); err != nil {
		return nil, transformErrorf(opInverse, fmt.Errorf("%w: %v", ErrSingular, err))
	}

	return inv, nil
}

// Det returns the determinant of a square matrix, sign and magnitude per the
// standard Leibniz/cofactor definition, computed via LU decomposition.
// A singular matrix is not an error here: Det simply returns 0.
// Complexity: O(n³).
func Det(m *mat.Dense) (float64, error) {
	// Validate input non-nil and square
	if err := validateNotNil(m); err != nil {
		return 0, transformErrorf(opDet, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, transformErrorf(opDet, err)
	}

	// Delegate to gonum
	return mat.Det(m), nil
}

// Mul computes the product C = A × B into a fresh matrix.
// Stage 1 (Validate): operands non-nil, inner dimensions agree.
// Stage 2 (Execute): delegate to gonum.
// Complexity: O(r·n·c).
func Mul(a, b *mat.Dense) (*mat.Dense, error) {
	// Validate operands non-nil
	if err := validateNotNil(a); err != nil {
		return nil, transformErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, transformErrorf(opMul, err)
	}

	// Validate inner dimensions
	aRows, aCols := a.Dims()
	bRows, bCols := b.Dims()
	if aCols != bRows {
		return nil, transformErrorf(opMul, fmt.Errorf("%w: %dx%d × %dx%d", ErrDimensionMismatch, aRows, aCols, bRows, bCols))
	}

	// Delegate to gonum
	res := mat.NewDense(aRows, bCols, nil)
	res.Mul(a, b)

	return res, nil
}

// Sprint renders m in human-readable block form, one bracketed row per line,
// for console diagnostics. Returns "<nil>" for a nil matrix rather than an
// error: printing is best-effort and never gates a computation.
func Sprint(m *mat.Dense) string {
	if m == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}
