// Package matrix is a small dense-matrix arithmetic library for exact,
// textbook-style linear algebra on small real matrices.
//
// The matrix package provides:
//
//   - Builder: a matrix-under-construction with a next-row cursor, fed either
//     with []float64 rows or with whitespace-separated text lines (AppendText).
//   - Matrix: an immutable row-major value. Every operation returns a fresh Matrix.
//   - Arithmetic: Add, Scale, Multiply (naive O(n³)).
//   - Determinant by recursive Laplace (cofactor) expansion along the first row,
//     and Inverse via the adjugate (transposed cofactor matrix) divided by det.
//   - Four transpose topologies: MainDiagonal, SideDiagonal, VerticalFlip, HorizontalFlip.
//   - Rendering: fixed-width right-aligned fields; integral values print without a
//     decimal point, everything else rounds to two decimals.
//
// Determinant and inverse are intentionally the exponential cofactor algorithms;
// results are reproducible bit-for-bit against the same formula, which a pivoting
// decomposition would not guarantee. Keep inputs small.
//
// Indexing is 0-based everywhere, including Minor.
//
// Quick example:
//
//	b, _ := matrix.NewBuilder(2, 2)
//	b.AppendText("4 7")
//	b.AppendText("2 6")
//	m, _ := b.Build()
//	inv, _ := m.Inverse()
//	fmt.Print(inv) // rows "0.60 -0.70" and "-0.20 0.40", width 7 each
package matrix
