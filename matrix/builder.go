// SPDX-License-Identifier: MIT

// Package matrix - constructors from existing data.
// Both constructors copy their input; the returned Matrix never aliases the
// caller's slices.

package matrix

import "fmt"

const (
	ctxFromSlice = "NewFromSlice"
	ctxFromRows  = "NewFromRows"
)

// NewFromSlice builds a rows×cols matrix from a row-major slice.
//
// Implementation:
//   - Stage 1: validate the shape (same contract as New).
//   - Stage 2: require len(data) == rows*cols.
//   - Stage 3: allocate and copy.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromSlice[T any](rows, cols int, data []T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFromSlice, err)
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxFromSlice, len(data), len(m.data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewFromRows builds a matrix from a slice of equal-length rows.
// An empty outer slice yields a 0×0 matrix. Ragged input returns
// ErrDimensionMismatch naming the first row whose width differs from row 0.
func NewFromRows[T any](rows [][]T) (*Matrix[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	m, err := New[T](r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i]) // row-major placement
	}

	return m, nil
}
