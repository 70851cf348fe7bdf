// SPDX-License-Identifier: MIT

// Package transform provides linear-algebra utilities for small rigid-body
// transform matrices: 4×4 homogeneous transforms, their 3×3 rotation
// sub-blocks, and standalone rotation matrices.
//
// The transform package provides:
//
//   - Constructors (NewMat, Identity, NewHomogeneous) that validate shape
//     before any allocation.
//   - Block accessors (RotationOf, TranslationOf) for homogeneous transforms.
//   - Numeric kernels (Inverse, Det, Mul) backed by gonum's LU-based
//     routines, with package sentinels surfaced via errors.Is.
//   - Sprint for human-readable block printing of results.
//
// Matrices are plain *mat.Dense values; operations never mutate their
// operands and always return freshly allocated results. The orthonormality
// of rotation blocks is not enforced — kernels operate on whatever values
// are supplied and report singularity through ErrSingular.
//
// See the examples in this package for usage patterns.
package transform
