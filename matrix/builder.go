// SPDX-License-Identifier: MIT
// Package matrix - Builder: a matrix under construction.
//
// Purpose:
//   - Hold the target shape, zero-initialized storage and a next-row cursor.
//   - Accept rows one at a time (Append/AppendText) or at an explicit index
//     (Set/SetText); both modes move the cursor to "last written row + 1".
//   - Turn the implicit "is it full yet" question into an explicit transition:
//     Build succeeds only once every row has been written.
//
// Determinism:
//   - A failed insertion never mutates storage, the cursor or the filled marks.

package matrix

import "fmt"

const (
	ctxBuilder = "NewBuilder"
	ctxAppend  = "Builder.Append"
	ctxSetRow  = "Builder.Set"
	ctxBuild   = "Builder.Build"
)

// Builder accumulates rows for a Matrix of fixed shape.
// The zero value is not usable; create one with NewBuilder.
type Builder struct {
	r, c   int
	data   []float64
	filled []bool // filled[i] == true once row i was written
	cursor int    // next row index used by Append/AppendText
}

// NewBuilder returns a Builder for a rows×cols matrix.
// Returns ErrInvalidDimensions if rows <= 0, cols <= 0 or rows*cols > MaxElements.
func NewBuilder(rows, cols int) (*Builder, error) {
	if !validDims(rows, cols) {
		return nil, matrixErrorf(ctxBuilder, ErrInvalidDimensions)
	}

	return &Builder{
		r:      rows,
		c:      cols,
		data:   make([]float64, rows*cols),
		filled: make([]bool, rows),
	}, nil
}

// Rows returns the target row count.
func (b *Builder) Rows() int { return b.r }

// Cols returns the target column count.
func (b *Builder) Cols() int { return b.c }

// Cursor returns the index of the row the next Append will write.
func (b *Builder) Cursor() int { return b.cursor }

// Full reports whether the cursor has moved past the last row.
func (b *Builder) Full() bool { return b.cursor >= b.r }

// Remaining returns how many rows sequential insertion can still write.
func (b *Builder) Remaining() int {
	if b.cursor >= b.r {
		return 0
	}

	return b.r - b.cursor
}

// Append stores values at the cursor and advances the cursor by one.
//
// Errors:
//   - ErrMalformedRow if len(values) != Cols().
//   - ErrOutOfRange if the cursor is already past the last row.
func (b *Builder) Append(values []float64) error {
	if err := b.put(b.cursor, values); err != nil {
		return matrixErrorf(ctxAppend, err)
	}

	return nil
}

// Set stores values at row and moves the cursor to row+1, so a following
// Append continues right after the explicitly written row.
//
// Errors:
//   - ErrMalformedRow if len(values) != Cols().
//   - ErrOutOfRange if row is outside [0, Rows()).
func (b *Builder) Set(row int, values []float64) error {
	if err := b.put(row, values); err != nil {
		return matrixErrorf(ctxSetRow, err)
	}

	return nil
}

// put validates and writes one row. Validation happens before any write.
func (b *Builder) put(row int, values []float64) error {
	if row < 0 || row >= b.r {
		return fmt.Errorf("row %d of %d: %w", row, b.r, ErrOutOfRange)
	}
	if len(values) != b.c {
		return fmt.Errorf("got %d values, want %d: %w", len(values), b.c, ErrMalformedRow)
	}
	copy(b.data[row*b.c:(row+1)*b.c], values)
	b.filled[row] = true
	b.cursor = row + 1

	return nil
}

// AppendText parses line as whitespace-separated reals and appends it.
//
// It returns false, without mutating anything, when the line is malformed
// (non-numeric token or wrong count) or the builder is already full. After a
// successful append it returns true while rows remain (Cursor() < Rows()) and
// false once the last row has been written. Callers that need to tell the two
// false cases apart check Full().
func (b *Builder) AppendText(line string) bool {
	return b.putText(b.cursor, line)
}

// SetText is the explicit-index form of AppendText; see Set for cursor rules.
func (b *Builder) SetText(row int, line string) bool {
	return b.putText(row, line)
}

func (b *Builder) putText(row int, line string) bool {
	values, err := ParseRow(line)
	if err != nil {
		return false
	}
	if err = b.put(row, values); err != nil {
		return false
	}

	return b.cursor < b.r
}

// Build returns the populated Matrix. The Builder keeps its own storage, so
// later writes do not affect the returned value.
// Returns ErrIncomplete if any row was never written.
func (b *Builder) Build() (*Matrix, error) {
	for i, ok := range b.filled {
		if !ok {
			return nil, matrixErrorf(ctxBuild, fmt.Errorf("row %d: %w", i, ErrIncomplete))
		}
	}

	return b.BuildPartial(), nil
}

// BuildPartial returns the Matrix as it stands; rows never written stay zero.
func (b *Builder) BuildPartial() *Matrix {
	data := make([]float64, len(b.data))
	copy(data, b.data)

	return &Matrix{r: b.r, c: b.c, data: data}
}
