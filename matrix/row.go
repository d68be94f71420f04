// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
)

const (
	ctxRowAt  = "Row.At"
	ctxRowSet = "Row.Set"
)

// Row is a non-owning window onto one row of a Matrix (shared storage).
//
// A Row is produced by Matrix.Row and is meant to be used within the
// expression that produced it, e.g. m.Row(i) followed by At/Set. It does
// not own its elements: writes through it mutate the matrix, and it must
// not be retained past the matrix's use. The zero Row has length 0.
type Row[T any] struct {
	data []T // len == cap == Cols() of the parent matrix
}

// Len returns the row width (the parent's column count).
func (r Row[T]) Len() int { return len(r.data) }

// At returns the element at column col, or ErrOutOfRange.
// Complexity: O(1).
func (r Row[T]) At(col int) (T, error) {
	if col < 0 || col >= len(r.data) {
		var zero T
		return zero, fmt.Errorf("%s: column index %d not in [0,%d): %w", ctxRowAt, col, len(r.data), ErrOutOfRange)
	}

	return r.data[col], nil
}

// Set writes v at column col. Out-of-range columns return ErrOutOfRange
// and leave the row untouched.
func (r Row[T]) Set(col int, v T) error {
	if col < 0 || col >= len(r.data) {
		return fmt.Errorf("%s: column index %d not in [0,%d): %w", ctxRowSet, col, len(r.data), ErrOutOfRange)
	}
	r.data[col] = v // write through to the parent buffer

	return nil
}

// All yields the row's elements in column order.
func (r Row[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range r.data {
			if !yield(v) {
				return
			}
		}
	}
}
