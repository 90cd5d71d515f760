// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFieldWidth is the width every rendered entry is right-aligned in.
	DefaultFieldWidth = 7

	// DefaultPrecision is the number of decimals for non-integral entries.
	DefaultPrecision = 2

	// DefaultSeparator joins the entries of one row.
	DefaultSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFieldWidthInvalid = "matrix: WithFieldWidth: width must be >= 1"
	panicPrecisionInvalid  = "matrix: WithPrecision: precision must be >= 0"
)

// Options is the resolved rendering configuration.
type Options struct {
	fieldWidth int
	precision  int
	separator  string
}

// Option mutates Options. Constructors validate eagerly and panic on
// nonsensical values.
type Option func(*Options)

// WithFieldWidth sets the right-alignment width of each entry. Entries wider
// than w are printed in full, never truncated.
// Panics if w < 1.
func WithFieldWidth(w int) Option {
	if w < 1 {
		panic(panicFieldWidthInvalid)
	}

	return func(o *Options) { o.fieldWidth = w }
}

// WithPrecision sets the number of decimals for non-integral entries.
// Panics if p < 0.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithSeparator sets the string placed between entries of a row.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// FieldWidth returns the resolved field width.
func (o Options) FieldWidth() int { return o.fieldWidth }

// Precision returns the resolved decimal precision.
func (o Options) Precision() int { return o.precision }

// Separator returns the resolved entry separator.
func (o Options) Separator() string { return o.separator }

func defaultOptions() Options {
	return Options{
		fieldWidth: DefaultFieldWidth,
		precision:  DefaultPrecision,
		separator:  DefaultSeparator,
	}
}

// gatherOptions applies user options in order; later options win. Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
