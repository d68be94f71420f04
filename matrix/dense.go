// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Keep iteration deterministic (fixed row-major order).
//   - Exclusive ownership: Clone is the only way to obtain a second Matrix and it never aliases.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Row/At/Set: O(1); Clone: O(r*c); All/Do/Apply: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "New" // ctor tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Matrix.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a fixed-size, row-major matrix over an arbitrary element type.
//   - r,c hold dimensions (rows, cols); both are fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Matrix exclusively owns its buffer. Copies are made with Clone; there is no
// resize operation, so only element values can change after construction.
// A Matrix is not safe for concurrent mutation.
type Matrix[T any] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// New creates an r×c matrix whose elements are the zero value of T.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in an int.
//   - Stage 2: allocate the zero-filled buffer with make.
//
// Behavior highlights:
//   - Zero rows and/or zero columns are legal and produce an empty matrix.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative or overflowing shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int) (*Matrix[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}

	// make() zero-fills the buffer, so every element starts default-initialized.
	return &Matrix[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols),
	}, nil
}

// validateDims checks the shape contract shared by all constructors.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// Rows returns the row count. No side effects.
// A nil *Matrix reports 0, as do Cols, Shape and Len.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Len returns the number of elements, Rows()*Cols().
func (m *Matrix[T]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// IsSquare reports whether Rows() == Cols(). Pure, O(1).
func (m *Matrix[T]) IsSquare() bool { return m.Rows() == m.Cols() }

// Row returns a view of row i, or ErrOutOfRange when i is not in [0, Rows()).
// A nil *Matrix returns ErrNilMatrix.
//
// Implementation:
//   - Stage 1: bounds-check the row index.
//   - Stage 2: slice [i*c, i*c+c) out of the buffer with capacity clamped to c.
//
// Behavior highlights:
//   - No copy is made; writes through the Row land in m.
//   - The clamped capacity keeps append on the view from reaching the next row.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Row(i int) (Row[T], error) {
	if m == nil {
		return Row[T]{}, fmt.Errorf("Matrix.%s: %w", ctxRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return Row[T]{}, fmt.Errorf("Matrix.%s: row index %d not in [0,%d): %w", ctxRow, i, m.r, ErrOutOfRange)
	}
	base := i * m.c

	return Row[T]{data: m.data[base : base+m.c : base+m.c]}, nil
}

// At returns the element at (row, col).
//
// The row index is checked first, then the column index; either failure
// returns ErrOutOfRange with the offending index in the message.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	r, err := m.Row(row)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}
	v, err := r.At(col)
	if err != nil {
		return v, denseErrorf(ctxAt, row, col, err)
	}

	return v, nil
}

// Set stores v at (row, col).
//
// Both bounds checks run before the write; on error the matrix is unchanged.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	r, err := m.Row(row)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = r.Set(col, v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}

	return nil
}

// Clone returns a deep copy: same shape, new buffer, element-wise copy.
//
// Behavior highlights:
//   - Independence: mutations of either matrix never show up in the other.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // element-wise copy

	return &Matrix[T]{
		r:    m.r,
		c:    m.c,
		data: cp,
	}
}

// All yields every element in row-major order: row 0's columns, then row 1's, ...
//
// A nil *Matrix yields nothing.
//
// AI-Hints:
//   - This is the linear iteration contract consumed by linalg.Dot and linalg.Print1D.
func (m *Matrix[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m == nil {
			return
		}
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// It is the mutable counterpart of All.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String renders one bracketed, comma-separated line per row, for diagnostics.
//
//	[1, 0]
//	[0, 1]
//
// Not for hot paths. Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)
