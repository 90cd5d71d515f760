// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// FormatEntry formats a single value with the default precision.
// Integral values (v == math.Round(v)) print as plain integers with no decimal
// point, negative zero included as "0"; all other values are rounded to
// exactly DefaultPrecision decimals.
func FormatEntry(v float64) string { return formatEntry(v, DefaultPrecision) }

func formatEntry(v float64, precision int) string {
	if v == math.Round(v) {
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// String renders m with the default options. See Render.
func (m *Matrix) String() string { return m.Render() }

// Render writes every row as its formatted entries, each right-aligned in a
// fixed-width field and joined by the separator, followed by "\n".
// With the defaults a row of [1 0.5] renders as "      1    0.50\n".
func (m *Matrix) Render(opts ...Option) string {
	o := gatherOptions(opts...)
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(o.separator)
			}
			s := formatEntry(m.data[i*m.c+j], o.precision)
			if pad := o.fieldWidth - len(s); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
