package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing/iotest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/matrixcalc/internal/logging"
	"github.com/katalvlaran/matrixcalc/matrix"
)

// run feeds input to a quiet session (no prompts) and returns stdout and Run's error.
func run(input string, opts ...Option) (string, error) {
	var out bytes.Buffer
	opts = append([]Option{
		WithEchoPrompts(false),
		WithLogger(logging.NewTestLogger(GinkgoWriter)),
	}, opts...)
	err := New(strings.NewReader(input), &out, opts...).Run(context.Background())

	return out.String(), err
}

var _ = Describe("Session", func() {
	Context("arithmetic", func() {
		It("adds two matrices", func() {
			out, err := run("1\n2 2\n1 2\n3 4\n2 2\n4 3\n2 1\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The addition result is:\n      5       5\n      5       5\n\n"))
		})

		It("adds 3x3 identity to itself", func() {
			out, err := run("1\n3 3\n1 0 0\n0 1 0\n0 0 1\n3 3\n1 0 0\n0 1 0\n0 0 1\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The addition result is:\n" +
				"      2       0       0\n      0       2       0\n      0       0       2\n\n"))
		})

		It("multiplies by a constant", func() {
			out, err := run("2\n2 2\n1 2\n3 4\n0.5\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The result is:\n   0.50       1\n   1.50       2\n\n"))
		})

		It("multiplies a 2x3 by a 3x2", func() {
			out, err := run("3\n2 3\n1 2 3\n4 5 6\n3 2\n7 8\n9 10\n11 12\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The multiplication result is:\n     58      64\n    139     154\n\n"))
		})

		It("prints ERROR on a dimension mismatch and keeps going", func() {
			out, err := run("1\n1 2\n1 2\n2 1\n1\n2\n5\n1 1\n7\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("ERROR\nThe result is:\n7\n\n"))
		})
	})

	Context("transpose", func() {
		DescribeTable("each sub-menu choice",
			func(choice string, want string) {
				out, err := run("4\n" + choice + "\n2 3\n1 2 3\n4 5 6\n0\n")
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal("The result is:\n" + want + "\n"))
			},
			Entry("main", "1", "      1       4\n      2       5\n      3       6\n"),
			Entry("side", "2", "      6       3\n      5       2\n      4       1\n"),
			Entry("vertical", "3", "      3       2       1\n      6       5       4\n"),
			Entry("horizontal", "4", "      4       5       6\n      1       2       3\n"),
			Entry("unknown keeps input", "9", "      1       2       3\n      4       5       6\n"),
		)
	})

	Context("determinant and inverse", func() {
		It("computes the 2x2 scenario", func() {
			out, err := run("5\n2 2\n4 7\n2 6\n6\n2 2\n4 7\n2 6\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The result is:\n10\n\n" +
				"The result is:\n   0.60   -0.70\n  -0.20    0.40\n\n"))
		})

		It("rejects a singular matrix", func() {
			out, err := run("6\n2 2\n1 2\n2 4\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("ERROR\n"))
		})

		It("rejects a non-square determinant", func() {
			out, err := run("5\n2 3\n1 2 3\n4 5 6\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("ERROR\n"))
		})
	})

	Context("input handling", func() {
		It("asks again for a malformed row without storing it", func() {
			out, err := run("5\n2 2\n1 x\n1 2\n1 2 3\n3 4\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The result is:\n-2\n\n"))
		})

		It("reads size and row on one line after the size", func() {
			out, err := run("5\n1 1 9\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The result is:\n9\n\n"))
		})

		It("answers an unknown menu item", func() {
			out, err := run("8\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("Huh?\n"))
		})

		It("reports an unreadable menu choice", func() {
			out, err := run("abc\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("ERROR\n"))
		})

		It("reports invalid dimensions", func() {
			out, err := run("5\n0 2\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("ERROR\n"))
		})

		It("exits cleanly at end of input", func() {
			out, err := run("")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())
		})

		It("fails when input ends inside an operation", func() {
			_, err := run("1\n2 2\n1 2\n")
			Expect(err).To(MatchError(io.ErrUnexpectedEOF))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := New(strings.NewReader("1\n"), io.Discard).Run(ctx)
			Expect(err).To(MatchError(context.Canceled))
		})

		It("stops a blocked read when the context is cancelled", func() {
			pr, pw := io.Pipe()
			defer pw.Close()
			ctx, cancel := context.WithCancel(context.Background())
			time.AfterFunc(20*time.Millisecond, cancel)

			err := New(pr, io.Discard, WithEchoPrompts(false)).Run(ctx)
			Expect(err).To(MatchError(context.Canceled))
		})

		It("stops in the middle of an operation when the context is cancelled", func() {
			pr, pw := io.Pipe()
			defer pw.Close()
			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				defer GinkgoRecover()
				_, werr := pw.Write([]byte("5\n2 2\n1 2\n"))
				Expect(werr).NotTo(HaveOccurred())
				cancel()
			}()

			var out bytes.Buffer
			err := New(pr, &out, WithEchoPrompts(false)).Run(ctx)
			Expect(err).To(MatchError(context.Canceled))
			Expect(out.String()).To(BeEmpty())
		})
	})

	Context("input failures", func() {
		It("reads a row longer than the default scanner buffer", func() {
			long := strings.Repeat("1 ", 35000) // 70000 bytes, rejected as a 1x1 row
			out, err := run("5\n1 1\n" + long + "\n7\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The result is:\n7\n\n"))
		})

		It("ends the session on a line over the limit instead of looping", func() {
			huge := strings.Repeat("1", maxLineBytes+1)
			out, err := run("5\n1 1\n" + huge + "\n0\n")
			Expect(err).To(MatchError(bufio.ErrTooLong))
			Expect(out).To(BeEmpty())
		})

		It("ends the session on an over-long menu line", func() {
			out, err := run(strings.Repeat("9", maxLineBytes+1) + "\n0\n")
			Expect(err).To(MatchError(bufio.ErrTooLong))
			Expect(out).To(BeEmpty())
		})

		It("returns a read error instead of printing ERROR", func() {
			boom := errors.New("device gone")
			var out bytes.Buffer
			err := New(iotest.ErrReader(boom), &out, WithEchoPrompts(false)).Run(context.Background())
			Expect(err).To(MatchError(boom))
			Expect(out.String()).To(BeEmpty())
		})

		It("keeps going after an unreadable constant", func() {
			out, err := run("2\n1 1\n3\nabc\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("ERROR\n"))
		})

		It("rejects dimensions too large to allocate", func() {
			out, err := run("5\n4611686018427387904 4\n0\n")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("ERROR\n"))
		})
	})

	Context("prompts and rendering options", func() {
		It("echoes the menu and prompts by default", func() {
			var out bytes.Buffer
			err := New(strings.NewReader("5\n1 1\n3\n0\n"), &out).Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(HavePrefix(menuText + promptChoice + "\n"))
			Expect(out.String()).To(ContainSubstring("Enter size of matrix:\nEnter matrix:\nThe result is:\n3\n"))
			Expect(strings.Count(out.String(), promptChoice)).To(Equal(2))
		})

		It("names first and second operands", func() {
			var out bytes.Buffer
			err := New(strings.NewReader("1\n1 1\n1\n1 1\n2\n0\n"), &out).Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("Enter size of first matrix:\nEnter first matrix:\n"))
			Expect(out.String()).To(ContainSubstring("Enter size of second matrix:\nEnter second matrix:\n"))
		})

		It("prints a retry prompt for a malformed row", func() {
			var out bytes.Buffer
			err := New(strings.NewReader("5\n1 1\nx\n3\n0\n"), &out).Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(ContainSubstring(promptRetryRow))
		})

		It("applies render options", func() {
			out, err := run("2\n1 2\n1 3\n0.125\n0\n",
				WithRenderOptions(matrix.WithFieldWidth(1), matrix.WithPrecision(3)))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("The result is:\n0.125 0.375\n\n"))
		})
	})
})
