// Package cli is the interactive text front end of matrixcalc. It runs a
// numbered menu: it reads sizes, rows and constants from an io.Reader, runs
// the chosen matrix operation and prints the rendered result. Every operation
// failure prints ERROR and returns to the menu.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/matrixcalc/internal/logging"
	"github.com/katalvlaran/matrixcalc/matrix"
)

// Output literals.
const (
	menuText = `1. Add matrices
2. Multiply matrix to a constant
3. Multiply matrices
4. Transpose matrix
5. Calculate a determinant
6. Inverse matrix
0. Exit
`
	transposeMenuText = `1. Main diagonal
2. Side diagonal
3. Vertical line
4. Horizontal line
`
	promptChoice    = "Your choice:"
	promptConstant  = "Enter constant:"
	promptRetryRow  = "Malformed row, enter it again:"
	headerResult    = "The result is:"
	headerAddition  = "The addition result is:"
	headerMultiply  = "The multiplication result is:"
	lineError       = "ERROR"
	lineUnknownItem = "Huh?"
)

// operand ordinals used in prompts.
const (
	ordinalFirst  = "first"
	ordinalSecond = "second"
	ordinalNone   = ""
)

// Session runs the menu loop over one input and one output stream.
// A Session is not safe for concurrent use.
type Session struct {
	in     *reader
	out    io.Writer
	log    logr.Logger
	render []matrix.Option
	echo   bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option { return func(s *Session) { s.log = l } }

// WithRenderOptions sets the options used to render result matrices.
func WithRenderOptions(opts ...matrix.Option) Option {
	return func(s *Session) { s.render = append([]matrix.Option(nil), opts...) }
}

// WithEchoPrompts toggles printing of the menu and input prompts.
func WithEchoPrompts(on bool) Option { return func(s *Session) { s.echo = on } }

// New returns a Session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:   newReader(in),
		out:  out,
		log:  logr.Discard(),
		echo: true,
	}
	for _, fn := range opts {
		fn(s)
	}

	return s
}

// Run loops over menu choices until "0", end of input, or ctx is done.
// A clean end of input at the menu is not an error. Running out of input in
// the middle of an operation returns io.ErrUnexpectedEOF. A read failure or a
// done ctx ends the session with that error, even while a read is blocked.
// Run consumes the input; call it once per Session.
func (s *Session) Run(ctx context.Context) error {
	defer s.in.close()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.prompt(menuText + promptChoice)
		choice, err := s.in.Int(ctx)
		switch {
		case errors.Is(err, io.EOF):
			s.log.V(logging.DEBUG).Info("Input closed at menu, exiting")
			return nil
		case errors.Is(err, errSyntax):
			s.log.V(logging.DEBUG).Info("Unreadable menu choice", "error", err.Error())
			s.println(lineError)
			continue
		case err != nil:
			return s.fatal(ctx, err)
		}
		if choice == 0 {
			return nil
		}
		op, ok := s.operations()[choice]
		if !ok {
			s.println(lineUnknownItem)
			continue
		}
		if err = op(ctx); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.log.Error(err, "Input ended in the middle of an operation", "choice", choice)
				return io.ErrUnexpectedEOF
			}
			if ctx.Err() != nil || s.in.Err() != nil {
				return s.fatal(ctx, err)
			}
			s.log.V(logging.DEBUG).Info("Operation failed", "choice", choice, "error", err.Error())
			s.println(lineError)
		}
	}
}

// fatal maps a read failure to the error that ends the session.
func (s *Session) fatal(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if inErr := s.in.Err(); inErr != nil {
		s.log.Error(inErr, "Reading input failed")
		return fmt.Errorf("reading input: %w", inErr)
	}

	return err
}

// prompt prints text only when prompts are echoed.
func (s *Session) prompt(text string) {
	if s.echo {
		s.println(text)
	}
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// printMatrix writes the rendering followed by a blank line.
func (s *Session) printMatrix(header string, m *matrix.Matrix) {
	s.println(header)
	fmt.Fprintln(s.out, m.Render(s.render...))
}
