// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep the value immutable: every accessor that exposes storage returns a copy.
//
// Complexity quicksheet:
//   - New/Zeros: O(r*c); At: O(1); Row: O(c); Column: O(r); Minor: O(r*c); Clone: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxAt     = "At"
	ctxRow    = "Row"
	ctxColumn = "Column"
	ctxMinor  = "Minor"
)

// indexErrorf wraps err with a method tag and the offending coordinates.
// Keeps a stable "Matrix.<Method>(i,j): <sentinel>" shape for diagnostics.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// MaxElements bounds rows*cols for every constructor and Builder.
const MaxElements = 1 << 24

// validDims reports whether rows×cols is non-empty and holds at most
// MaxElements entries. The division keeps the product from overflowing.
func validDims(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows <= MaxElements/cols
}

// newMatrix allocates a zero-filled r×c Matrix without validation.
// Callers guarantee r > 0 and c > 0.
func newMatrix(r, c int) *Matrix {
	return &Matrix{r: r, c: c, data: make([]float64, r*c)}
}

// Zeros returns a rows×cols matrix of zeros.
// Returns ErrInvalidDimensions if rows <= 0, cols <= 0 or rows*cols > MaxElements.
func Zeros(rows, cols int) (*Matrix, error) {
	if !validDims(rows, cols) {
		return nil, matrixErrorf("Zeros", ErrInvalidDimensions)
	}

	return newMatrix(rows, cols), nil
}

// Identity returns the n×n identity matrix.
// Returns ErrInvalidDimensions if n <= 0 or n*n > MaxElements.
func Identity(n int) (*Matrix, error) {
	if !validDims(n, n) {
		return nil, matrixErrorf("Identity", ErrInvalidDimensions)
	}
	m := newMatrix(n, n)
	for i := 0; i < n; i++ { // fixed i order; single write per diagonal cell
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// New builds a Matrix from row data. The input is copied.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty, the first row is empty, or the
//     shape exceeds MaxElements entries.
//   - ErrMalformedRow if any row length differs from the first row's.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	if !validDims(r, c) {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	m := newMatrix(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxNew, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrMalformedRow))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// At returns the element at (row, col).
// Returns ErrOutOfRange for invalid indices.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, indexErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// rowSlice returns the backing slice of row i (no copy). Kernels only.
func (m *Matrix) rowSlice(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// Row returns a copy of row i.
// Returns ErrOutOfRange if i is outside [0, Rows()).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, indexErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.rowSlice(i))

	return out, nil
}

// Column returns column j as a freshly materialized slice of length Rows().
// Returns ErrOutOfRange if j is outside [0, Cols()).
func (m *Matrix) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, indexErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}

	return m.column(j), nil
}

// column is the unchecked form of Column.
func (m *Matrix) column(j int) []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Minor returns the (rows-1)×(cols-1) submatrix obtained by deleting row
// excludeRow and column excludeCol. Both indices are 0-based.
//
// Errors:
//   - ErrInvalidDimensions if Rows() < 2 or Cols() < 2 (the result would be empty).
//   - ErrOutOfRange if an index is outside the matrix.
//
// Complexity: O(r*c).
func (m *Matrix) Minor(excludeRow, excludeCol int) (*Matrix, error) {
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(ctxMinor, ErrInvalidDimensions)
	}
	if excludeRow < 0 || excludeRow >= m.r || excludeCol < 0 || excludeCol >= m.c {
		return nil, indexErrorf(ctxMinor, excludeRow, excludeCol, ErrOutOfRange)
	}

	return m.minor(excludeRow, excludeCol), nil
}

// minor is the unchecked form of Minor used by the cofactor kernels.
func (m *Matrix) minor(excludeRow, excludeCol int) *Matrix {
	out := newMatrix(m.r-1, m.c-1)
	k := 0 // write cursor into out.data
	for i := 0; i < m.r; i++ {
		if i == excludeRow {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == excludeCol {
				continue
			}
			out.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return out
}

// Data returns a deep copy of the matrix as [][]float64.
func (m *Matrix) Data() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.rowSlice(i))
	}

	return out
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and other have the same shape and identical entries.
// A nil argument is never equal.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether m and other have the same shape and every pair of
// entries differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}

	return ewAllClose(m, other, 0, tol)
}
