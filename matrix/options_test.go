// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixcalc/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultFieldWidth, o.FieldWidth())
	require.Equal(t, matrix.DefaultPrecision, o.Precision())
	require.Equal(t, matrix.DefaultSeparator, o.Separator())
}

func TestOptions_LastWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithFieldWidth(3), nil, matrix.WithFieldWidth(9), matrix.WithPrecision(0))
	require.Equal(t, 9, o.FieldWidth())
	require.Equal(t, 0, o.Precision())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithFieldWidth: width must be >= 1", func() { matrix.WithFieldWidth(0) })
	require.PanicsWithValue(t, "matrix: WithPrecision: precision must be >= 0", func() { matrix.WithPrecision(-1) })
}
