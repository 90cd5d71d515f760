package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Line buffer sizes. A longer line fails the session with bufio.ErrTooLong.
const (
	initialLineBytes = 64 * 1024
	maxLineBytes     = 1 << 20
)

// errSyntax marks a token that is not the expected number. The stream itself
// is still usable after it.
var errSyntax = errors.New("cli: malformed input")

type lineResult struct {
	text string
	err  error
}

// reader serves whitespace-separated tokens (sizes, menu choices, constants)
// and whole lines (matrix rows) from the same stream. Tokens left over on a
// line are handed out first, by Token or joined by Line.
//
// Lines are scanned on a separate goroutine, one per request, so a blocked
// read gives way as soon as the caller's context is done.
type reader struct {
	sc    *bufio.Scanner
	start sync.Once
	want  chan struct{}
	lines chan lineResult

	pending  []string
	inflight bool  // a line was requested and not yet received
	err      error // sticky: io.EOF or the scanner error
}

func newReader(in io.Reader) *reader {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)

	return &reader{
		sc:    sc,
		want:  make(chan struct{}),
		lines: make(chan lineResult, 1),
	}
}

// pump scans one line per request until the scanner stops or close is called.
func (r *reader) pump() {
	for range r.want {
		if r.sc.Scan() {
			r.lines <- lineResult{text: r.sc.Text()}
			continue
		}
		err := r.sc.Err()
		if err == nil {
			err = io.EOF
		}
		r.lines <- lineResult{err: err}
		return
	}
}

// close releases the scanning goroutine once its current read returns.
// Later reads report io.EOF.
func (r *reader) close() {
	if r.err == nil {
		r.err = io.EOF
		close(r.want)
	}
}

// Err returns the input failure that ended the stream, or nil for a clean
// end of input.
func (r *reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}

	return r.err
}

// scan loads the next non-blank line into pending. Returns io.EOF at end of
// input, the scanner error on a read failure, or ctx.Err().
func (r *reader) scan(ctx context.Context) error {
	for {
		if r.err != nil {
			return r.err
		}
		if !r.inflight {
			r.start.Do(func() { go r.pump() })
			r.want <- struct{}{}
			r.inflight = true
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-r.lines:
			r.inflight = false
			if res.err != nil {
				r.err = res.err
				return r.err
			}
			if fields := strings.Fields(res.text); len(fields) > 0 {
				r.pending = fields
				return nil
			}
		}
	}
}

// Token returns the next whitespace-separated token.
func (r *reader) Token(ctx context.Context) (string, error) {
	if len(r.pending) == 0 {
		if err := r.scan(ctx); err != nil {
			return "", err
		}
	}
	tok := r.pending[0]
	r.pending = r.pending[1:]

	return tok, nil
}

// Int reads the next token as a base-10 integer.
func (r *reader) Int(ctx context.Context) (int, error) {
	tok, err := r.Token(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q: %w", tok, errSyntax)
	}

	return n, nil
}

// Float reads the next token as a float64.
func (r *reader) Float(ctx context.Context) (float64, error) {
	tok, err := r.Token(ctx)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q: %w", tok, errSyntax)
	}

	return v, nil
}

// Line returns the rest of the current line, or the next non-blank line.
func (r *reader) Line(ctx context.Context) (string, error) {
	if len(r.pending) == 0 {
		if err := r.scan(ctx); err != nil {
			return "", err
		}
	}
	line := strings.Join(r.pending, " ")
	r.pending = nil

	return line, nil
}
