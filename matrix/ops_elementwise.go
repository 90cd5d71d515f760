// SPDX-License-Identifier: MIT
// Package matrix: private element-wise kernels (ew*).
//
// Purpose:
//   - Keep the tight flat loops shared by Add, Subtract, Scale and the
//     tolerance comparisons in one place.
//   - Callers validate shapes; kernels assume operands are non-nil and conformant.
//
// Determinism:
//   - Flat 0..n-1 order over the row-major buffer. O(r*c) time, one output alloc.

package matrix

import "math"

// ewZip returns out[k] = fn(a[k], b[k]) over two same-shape matrices.
func ewZip(a, b *Matrix, fn func(x, y float64) float64) *Matrix {
	out := newMatrix(a.r, a.c)
	for k := range out.data {
		out.data[k] = fn(a.data[k], b.data[k])
	}

	return out
}

// ewMap returns out[k] = fn(m[k]).
func ewMap(m *Matrix, fn func(x float64) float64) *Matrix {
	out := newMatrix(m.r, m.c)
	for k, v := range m.data {
		out.data[k] = fn(v)
	}

	return out
}

// ewAllClose reports whether |a-b| <= atol + rtol*|b| holds for every pair.
// Negative tolerances are taken by absolute value.
func ewAllClose(a, b *Matrix, rtol, atol float64) bool {
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for k, bv := range b.data {
		if math.Abs(a.data[k]-bv) > atol+rtol*math.Abs(bv) {
			return false // early exit on first violation
		}
	}

	return true
}

// validateTol rejects NaN and infinite tolerances.
func validateTol(rtol, atol float64) error {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return ErrInvalidTolerance
	}

	return nil
}

// Subtract computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opSubtract, err)
	}

	return ewZip(m, other, func(x, y float64) float64 { return x - y }), nil
}

// AllClose reports whether m and other agree entry by entry within
// |m-other| <= atol + rtol*|other|.
//
// Errors:
//   - ErrInvalidTolerance (NaN/Inf tolerance), ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) AllClose(other *Matrix, rtol, atol float64) (bool, error) {
	if err := validateTol(rtol, atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ewAllClose(m, other, rtol, atol), nil
}
