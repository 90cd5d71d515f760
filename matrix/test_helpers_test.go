// SPDX-License-Identifier: MIT
// Package matrix_test: shared test helpers.
//
// Purpose:
//   - Provide a single place for "Must*" wrappers so test bodies stay focused on behavior.
//   - Provide deterministic random fills (fixed seeds) for property tests.
//   - Provide whole-matrix comparisons built on go-cmp.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixcalc/matrix"
)

// tol is the absolute tolerance for results that go through a division.
const tol = 1e-9

// approx compares float64 values (including inside [][]float64) within tol.
var approx = cmpopts.EquateApprox(0, tol)

// MustNew builds a Matrix from row data or fails the test.
func MustNew(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m has exactly the entries of want.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	if diff := cmp.Diff(want, m.Data()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareApprox asserts m matches want within tol entry-wise.
func CompareApprox(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	if diff := cmp.Diff(want, m.Data(), approx); diff != "" {
		t.Fatalf("matrix mismatch beyond %g (-want +got):\n%s", tol, diff)
	}
}

// RandomInts returns a rows×cols matrix of integers in [-5, 5] drawn from seed.
// Integer entries keep cofactor sums exact in float64 for small n.
func RandomInts(t testing.TB, rows, cols int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			data[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return MustNew(t, data)
}

// RandomInvertible draws integer matrices from seed until one has a non-zero determinant.
func RandomInvertible(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	for s := seed; ; s++ {
		m := RandomInts(t, n, n, s)
		d, err := m.Determinant()
		require.NoError(t, err)
		if d != 0 {
			return m
		}
	}
}
