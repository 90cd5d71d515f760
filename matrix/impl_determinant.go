// SPDX-License-Identifier: MIT
// Package matrix - determinant, cofactors and adjugate inverse.
//
// Purpose:
//   - Determinant by Laplace (cofactor) expansion along the first row.
//   - Inverse as adjugate / det, where adjugate = transpose of the cofactor matrix.
//
// Determinism & Policy:
//   - Plain cofactor recursion, O(n!) time. No pivoting, no LU; values match
//     the cofactor formula term by term.
//   - Singularity is "det == 0" with no epsilon.

package matrix

// sign returns (-1)^k.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1.0
	}

	return -1.0
}

// Determinant returns det(m).
//
// Implementation:
//   - 1×1: a00.
//   - 2×2: a00*a11 - a10*a01.
//   - n×n: Σ_c (-1)^c * a[0][c] * det(minor(0, c)).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *Matrix) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// det is the unchecked recursive kernel. m must be square.
func (m *Matrix) det() float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[2]*m.data[1]
	}
	total := 0.0
	for c := 0; c < m.c; c++ {
		total += sign(c) * m.data[c] * m.minor(0, c).det()
	}

	return total
}

// Cofactors returns the cofactor matrix C with C[r][c] = (-1)^(r+c) * det(minor(r, c)).
// For a 1×1 matrix the single cofactor is 1 (determinant of the empty minor).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
func (m *Matrix) Cofactors() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return m.cofactors(), nil
}

func (m *Matrix) cofactors() *Matrix {
	n := m.r
	out := newMatrix(n, n)
	if n == 1 {
		out.data[0] = 1.0
		return out
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.data[r*n+c] = sign(r+c) * m.minor(r, c).det()
		}
	}

	return out
}

// Adjugate returns the transpose of the cofactor matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
func (m *Matrix) Adjugate() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Adjugate", err)
	}

	return m.adjugate(), nil
}

func (m *Matrix) adjugate() *Matrix {
	if m.r == 2 {
		return m.adjugate2x2()
	}

	return m.cofactors().transposeMain()
}

// adjugate2x2 swaps the diagonal and negates the off-diagonal.
// Equals cofactors().transposeMain() for 2×2 input.
func (m *Matrix) adjugate2x2() *Matrix {
	out := newMatrix(2, 2)
	out.data[0] = m.data[3]
	out.data[1] = -m.data[1]
	out.data[2] = -m.data[2]
	out.data[3] = m.data[0]

	return out
}

// Inverse returns m⁻¹ = adj(m) * (1/det(m)).
//
// Implementation:
//   - Stage 1: Validate square; compute det; det == 0 → ErrSingular.
//   - Stage 2: Build the adjugate (2×2 via swap/negate, otherwise transposed
//     cofactors) and scale every entry by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n² · (n-1)!), dominated by the cofactor determinants.
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := m.det()
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return m.adjugate().Scale(1 / d), nil
}
