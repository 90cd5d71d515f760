// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and callers/tests match them via errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for invalid functional options (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX); callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> row content -> dimension mismatch -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or exceed MaxElements entries,
	// or that an operation would produce an empty matrix (e.g., Minor of a 1×n matrix).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public accessors (At/Row/Column/Minor) and Builder.Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrMalformedRow signals a row that is not exactly Cols() real numbers:
	// a non-numeric token in text input, or a slice of the wrong length.
	ErrMalformedRow = errors.New("matrix: malformed row")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, Multiply where a.Cols != b.Rows, or a
	// square-only operation (Determinant, Inverse) on a non-square matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIncomplete is returned by Builder.Build when at least one row was never populated.
	ErrIncomplete = errors.New("matrix: not all rows populated")

	// ErrUnknownTranspose is returned by ParseTransposeKind for an unrecognized label.
	ErrUnknownTranspose = errors.New("matrix: unknown transpose kind")

	// ErrInvalidTolerance indicates a NaN or infinite tolerance passed to AllClose.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
