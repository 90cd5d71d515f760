package cli

import (
	"context"
	"fmt"

	"github.com/katalvlaran/matrixcalc/internal/logging"
	"github.com/katalvlaran/matrixcalc/matrix"
)

// Menu choices.
const (
	choiceAdd         = 1
	choiceScale       = 2
	choiceMultiply    = 3
	choiceTranspose   = 4
	choiceDeterminant = 5
	choiceInverse     = 6
)

// transposeChoices maps the transpose sub-menu to kinds. Any other choice
// falls through to an unchanged copy of the input.
var transposeChoices = map[int]matrix.TransposeKind{
	1: matrix.MainDiagonal,
	2: matrix.SideDiagonal,
	3: matrix.VerticalFlip,
	4: matrix.HorizontalFlip,
}

// unknownTranspose is outside the enumeration; Transpose returns a copy for it.
const unknownTranspose = matrix.TransposeKind(-1)

func (s *Session) operations() map[int]func(context.Context) error {
	return map[int]func(context.Context) error{
		choiceAdd:         s.add,
		choiceScale:       s.scale,
		choiceMultiply:    s.multiply,
		choiceTranspose:   s.transpose,
		choiceDeterminant: s.determinant,
		choiceInverse:     s.inverse,
	}
}

// readMatrix asks for a size and then one row per line. Malformed rows are
// rejected and requested again; nothing is stored for them.
func (s *Session) readMatrix(ctx context.Context, ordinal string) (*matrix.Matrix, error) {
	s.prompt(sizePrompt(ordinal))
	rows, err := s.in.Int(ctx)
	if err != nil {
		return nil, err
	}
	cols, err := s.in.Int(ctx)
	if err != nil {
		return nil, err
	}
	b, err := matrix.NewBuilder(rows, cols)
	if err != nil {
		return nil, err
	}

	s.prompt(rowsPrompt(ordinal))
	for !b.Full() {
		line, err := s.in.Line(ctx)
		if err != nil {
			return nil, err
		}
		if !b.AppendText(line) && !b.Full() {
			s.log.V(logging.DEBUG).Info("Rejected malformed row", "row", b.Cursor(), "line", line)
			s.prompt(promptRetryRow)
		}
	}
	m, err := b.Build()
	if err != nil {
		return nil, err
	}
	s.log.V(logging.TRACE).Info("Read matrix", "rows", rows, "cols", cols)

	return m, nil
}

func sizePrompt(ordinal string) string {
	if ordinal == ordinalNone {
		return "Enter size of matrix:"
	}

	return fmt.Sprintf("Enter size of %s matrix:", ordinal)
}

func rowsPrompt(ordinal string) string {
	if ordinal == ordinalNone {
		return "Enter matrix:"
	}

	return fmt.Sprintf("Enter %s matrix:", ordinal)
}

// readPair reads the two operands of a binary operation.
func (s *Session) readPair(ctx context.Context) (*matrix.Matrix, *matrix.Matrix, error) {
	a, err := s.readMatrix(ctx, ordinalFirst)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.readMatrix(ctx, ordinalSecond)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func (s *Session) add(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	sum, err := matrix.Sum(a, b)
	if err != nil {
		return err
	}
	s.printMatrix(headerAddition, sum)

	return nil
}

func (s *Session) scale(ctx context.Context) error {
	a, err := s.readMatrix(ctx, ordinalNone)
	if err != nil {
		return err
	}
	s.prompt(promptConstant)
	k, err := s.in.Float(ctx)
	if err != nil {
		return err
	}
	scaled, err := matrix.ScaleBy(a, k)
	if err != nil {
		return err
	}
	s.printMatrix(headerResult, scaled)

	return nil
}

func (s *Session) multiply(ctx context.Context) error {
	a, b, err := s.readPair(ctx)
	if err != nil {
		return err
	}
	p, err := matrix.Product(a, b)
	if err != nil {
		return err
	}
	s.printMatrix(headerMultiply, p)

	return nil
}

func (s *Session) transpose(ctx context.Context) error {
	s.prompt(transposeMenuText + promptChoice)
	choice, err := s.in.Int(ctx)
	if err != nil {
		return err
	}
	kind, ok := transposeChoices[choice]
	if !ok {
		kind = unknownTranspose
	}
	a, err := s.readMatrix(ctx, ordinalNone)
	if err != nil {
		return err
	}
	t, err := matrix.TransposeOf(a, kind)
	if err != nil {
		return err
	}
	s.printMatrix(headerResult, t)

	return nil
}

func (s *Session) determinant(ctx context.Context) error {
	a, err := s.readMatrix(ctx, ordinalNone)
	if err != nil {
		return err
	}
	d, err := matrix.Det(a)
	if err != nil {
		return err
	}
	s.println(headerResult)
	s.println(matrix.FormatEntry(d))
	s.println("")

	return nil
}

func (s *Session) inverse(ctx context.Context) error {
	a, err := s.readMatrix(ctx, ordinalNone)
	if err != nil {
		return err
	}
	inv, err := matrix.InverseOf(a)
	if err != nil {
		return err
	}
	s.printMatrix(headerResult, inv)

	return nil
}
