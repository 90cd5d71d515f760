// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, function-style entry points mirroring the methods, so
//     callers can pass operations around as values (e.g. menu tables).
//   - Each facade delegates to the method; no logic lives here.
//   - Add/Subtract/Multiply/Determinant/Inverse already accept a nil receiver and return
//     ErrNilMatrix; Scale and Transpose do not, so their facades guard it.

package matrix

// Sum is an alias for a.Add(b): element-wise a + b.
// Complexity: O(rc).
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(b) }

// Difference is an alias for a.Subtract(b).
func Difference(a, b *Matrix) (*Matrix, error) { return a.Subtract(b) }

// Product is an alias for a.Multiply(b).
// Complexity: O(r*n*c).
func Product(a, b *Matrix) (*Matrix, error) { return a.Multiply(b) }

// ScaleBy is an alias for m.Scale(alpha).
func ScaleBy(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.Scale(alpha), nil
}

// T is an alias for m.Transpose(MainDiagonal).
func T(m *Matrix) (*Matrix, error) { return TransposeOf(m, MainDiagonal) }

// TransposeOf is a nil-safe alias for m.Transpose(kind).
func TransposeOf(m *Matrix, kind TransposeKind) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(kind), nil
}

// Det is an alias for m.Determinant().
// Complexity: O(n!).
func Det(m *Matrix) (float64, error) { return m.Determinant() }

// InverseOf is an alias for m.Inverse().
func InverseOf(m *Matrix) (*Matrix, error) { return m.Inverse() }

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}
