// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the value types of the package: the immutable Matrix
// and the closed TransposeKind enumeration. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is an immutable rows×cols matrix of float64 values in row-major order.
// A Matrix is produced by a Builder, by New/Identity/Zeros, or as the result of
// an operation; none of the methods mutate the receiver or their arguments.
//
// Complexity notes: Rows/Cols/At are O(1); Row/Column copy O(cols)/O(rows).
type Matrix struct {
	r, c int       // number of rows and columns, both > 0
	data []float64 // flat backing storage, length == r*c
}

// TransposeKind selects one of the four transpose topologies.
type TransposeKind int

const (
	// MainDiagonal is the standard transpose: new row i = original column i.
	MainDiagonal TransposeKind = iota
	// SideDiagonal reflects across the anti-diagonal: new row i = original
	// column (cols-1-i) read bottom-up.
	SideDiagonal
	// VerticalFlip mirrors left-right: new row i = original row i reversed.
	VerticalFlip
	// HorizontalFlip mirrors top-bottom: new row i = original row (rows-1-i).
	HorizontalFlip
)

// transpose labels, also accepted by ParseTransposeKind.
const (
	labelMain       = "main"
	labelSide       = "side"
	labelVertical   = "vertical"
	labelHorizontal = "horizontal"
)

// String returns the label of k ("main", "side", "vertical", "horizontal").
func (k TransposeKind) String() string {
	switch k {
	case MainDiagonal:
		return labelMain
	case SideDiagonal:
		return labelSide
	case VerticalFlip:
		return labelVertical
	case HorizontalFlip:
		return labelHorizontal
	default:
		return fmt.Sprintf("TransposeKind(%d)", int(k))
	}
}

// ParseTransposeKind maps a label to its TransposeKind. Matching ignores case
// and surrounding whitespace. Unknown labels return ErrUnknownTranspose.
func ParseTransposeKind(label string) (TransposeKind, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case labelMain:
		return MainDiagonal, nil
	case labelSide:
		return SideDiagonal, nil
	case labelVertical:
		return VerticalFlip, nil
	case labelHorizontal:
		return HorizontalFlip, nil
	}

	return MainDiagonal, fmt.Errorf("%q: %w", label, ErrUnknownTranspose)
}
