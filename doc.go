// Package matrixcalc is a small dense-matrix calculator: a pure matrix library
// plus an interactive menu-driven front end.
//
// What it does:
//
//	• Build matrices row by row from text, retrying malformed rows
//	• Add, subtract, scale and multiply
//	• Transpose along the main or side diagonal, or flip vertically/horizontally
//	• Determinant by cofactor expansion, inverse via the adjugate
//	• Fixed-width text rendering (integers plain, fractions to two decimals)
//
// Layout:
//
//	matrix/            the Matrix value, Builder, kernels and rendering
//	internal/cli/      the numbered menu session over io.Reader / io.Writer
//	internal/config/   flags, MATRIXCALC_* env vars and config file (viper/pflag)
//	internal/logging/  zap-backed logr.Logger with DEBUG/TRACE verbosity
//	cmd/matrixcalc/    the binary
//
// Quick example:
//
//	a, _ := matrix.New([][]float64{{4, 7}, {2, 6}})
//	inv, _ := a.Inverse()
//	fmt.Print(inv)
//	//    0.60   -0.70
//	//   -0.20    0.40
package matrixcalc
