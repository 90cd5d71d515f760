// SPDX-License-Identifier: MIT

package matrix

// Transpose returns a new matrix laid out according to kind:
//
//	MainDiagonal   cols×rows  out[i][j] = m[j][i]
//	SideDiagonal   cols×rows  out[i][j] = m[rows-1-j][cols-1-i]
//	VerticalFlip   rows×cols  out[i][j] = m[i][cols-1-j]
//	HorizontalFlip rows×cols  out[i][j] = m[rows-1-i][j]
//
// An unrecognized kind returns an unchanged copy of m. The receiver is never mutated.
func (m *Matrix) Transpose(kind TransposeKind) *Matrix {
	switch kind {
	case MainDiagonal:
		return m.transposeMain()
	case SideDiagonal:
		return m.transposeSide()
	case VerticalFlip:
		return m.flipVertical()
	case HorizontalFlip:
		return m.flipHorizontal()
	default:
		return m.Clone()
	}
}

func (m *Matrix) transposeMain() *Matrix {
	out := newMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// transposeSide: new row i is column (cols-1-i) read from the bottom up.
func (m *Matrix) transposeSide() *Matrix {
	out := newMatrix(m.c, m.r)
	for i := 0; i < m.c; i++ {
		src := m.c - 1 - i
		for j := 0; j < m.r; j++ {
			out.data[i*m.r+j] = m.data[(m.r-1-j)*m.c+src]
		}
	}

	return out
}

func (m *Matrix) flipVertical() *Matrix {
	out := newMatrix(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+j] = m.data[i*m.c+(m.c-1-j)]
		}
	}

	return out
}

func (m *Matrix) flipHorizontal() *Matrix {
	out := newMatrix(m.r, m.c)
	for i := 0; i < m.r; i++ {
		copy(out.rowSlice(i), m.rowSlice(m.r-1-i))
	}

	return out
}
