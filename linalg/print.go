// SPDX-License-Identifier: MIT

// Package linalg - text rendering of sequences and matrices.
//
// Format (defaults):
//   - Print1D: each element followed by one space; nothing else.
//   - Print2D: Print1D of every row followed by "\n"; then one more "\n".
//
// Output is rendered into memory and handed to the writer in a single Write;
// an error from a row lookup aborts the call before anything is written.

package linalg

import (
	"bytes"
	"fmt"
	"io"
	"slices"
)

const (
	ctxPrint1D = "Print1D"
	ctxPrint2D = "Print2D"
)

// Print1D writes seq to standard output (or the WithOutput writer),
// each element followed by the separator, preserving iteration order.
func Print1D[T any](seq Sequence[T], opts ...Option) error {
	if isNilSequence(seq) {
		return fmt.Errorf("%s: %w", ctxPrint1D, ErrNilSequence)
	}
	o := gatherOptions(opts...)
	var buf bytes.Buffer
	if err := write1D(&buf, o.formatter(), o, seq); err != nil {
		return fmt.Errorf("%s: %w", ctxPrint1D, err)
	}

	return flush(ctxPrint1D, &buf, o.out)
}

// Fprint1D is Print1D writing to w. w takes precedence over any WithOutput in opts.
func Fprint1D[T any](w io.Writer, seq Sequence[T], opts ...Option) error {
	return Print1D(seq, withWriter(w, opts)...)
}

// Print2D writes every row of m on its own line, then a blank line.
//
// Implementation:
//   - Stage 1: resolve options once (formatter, separator, writer).
//   - Stage 2: for i in [0, m.Rows()): fetch row i through m.Row, write it, write "\n".
//   - Stage 3: write the trailing "\n", then hand the whole rendering to the writer.
//
// Errors:
//   - ErrNilSequence for a nil m; row lookup errors are wrapped with the row index.
func Print2D[T any](m RowIndexer[T], opts ...Option) error {
	if isNilRowIndexer(m) {
		return fmt.Errorf("%s: %w", ctxPrint2D, ErrNilSequence)
	}
	o := gatherOptions(opts...)
	format := o.formatter()
	var buf bytes.Buffer

	n := m.Rows()
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return fmt.Errorf("%s: row %d: %w", ctxPrint2D, i, err)
		}
		if err = write1D(&buf, format, o, row); err != nil {
			return fmt.Errorf("%s: row %d: %w", ctxPrint2D, i, err)
		}
		buf.WriteByte(rowTerminator)
	}
	buf.WriteByte(rowTerminator)

	return flush(ctxPrint2D, &buf, o.out)
}

// Fprint2D is Print2D writing to w. w takes precedence over any WithOutput in opts.
func Fprint2D[T any](w io.Writer, m RowIndexer[T], opts ...Option) error {
	return Print2D(m, withWriter(w, opts)...)
}

// write1D formats each element of seq followed by the separator.
func write1D[T any](w *bytes.Buffer, format formatFunc, o printOptions, seq Sequence[T]) error {
	for v := range seq.All() {
		if _, err := format(w, o.verb, v); err != nil {
			return err
		}
		if _, err := w.WriteString(o.sep); err != nil {
			return err
		}
	}

	return nil
}

// flush writes the rendered output to w in one call.
func flush(ctx string, buf *bytes.Buffer, w io.Writer) error {
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%s: %w", ctx, err)
	}

	return nil
}

// withWriter appends WithOutput(w) to a copy of opts so the caller's slice is untouched.
func withWriter(w io.Writer, opts []Option) []Option {
	return append(slices.Clone(opts), WithOutput(w))
}
