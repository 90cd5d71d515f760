// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Matrix values:
// element-wise addition, scalar scaling and matrix multiplication.
// All kernels perform strict fail-fast validation, never mutate their
// operands, and return a freshly allocated result.
//
// Purpose:
//   - Define operation tags and the shared error wrapper.
//   - Keep loop orders fixed (i→j, i→j→k) so results are reproducible.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSubtract    = "Subtract"
	opAllClose    = "AllClose"
	opScale       = "Scale"
	opMultiply    = "Multiply"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat ewZip pass over the row-major backing slices.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewZip(m, other, func(x, y float64) float64 { return x + y }), nil
}

// Scale returns alpha*m. It never fails.
// Complexity: O(r*c).
func (m *Matrix) Scale(alpha float64) *Matrix {
	return ewMap(m, func(x float64) float64 { return x * alpha })
}

// Multiply performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For each (i, j) take the dot product of row i of A and column j
//     of B, accumulating k = 0..n-1 in order.
//
// Behavior highlights:
//   - Result shape is A.Rows × B.Cols.
//   - Fixed i→j→k order, so sums are reproducible bit-for-bit.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	rows, inner, cols := m.r, m.c, other.c
	res := newMatrix(rows, cols)
	var i, j, k int
	var sum float64
	for i = 0; i < rows; i++ {
		row := m.rowSlice(i)
		for j = 0; j < cols; j++ {
			sum = 0.0
			for k = 0; k < inner; k++ {
				sum += row[k] * other.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}
