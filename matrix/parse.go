// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseRow splits line on any run of whitespace and parses every token as a
// float64. Leading and trailing whitespace is ignored.
//
// Only finite values are accepted: a token that is not a number, or that parses
// to NaN/±Inf, fails with ErrMalformedRow naming the token. A blank line also
// fails with ErrMalformedRow.
func ParseRow(line string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseRow: empty line: %w", ErrMalformedRow)
	}
	out := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("ParseRow: token %d %q: %w", i, tok, ErrMalformedRow)
		}
		out[i] = v
	}

	return out, nil
}
