// SPDX-License-Identifier: MIT

package linalg

import (
	"iter"
	"slices"

	"github.com/k0tyak1t/linear-algebra/matrix"
)

// Sequence is anything with a known length and a linear, ordered iteration.
// *matrix.Matrix (row-major), matrix.Row and Vector all satisfy it.
type Sequence[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// RowIndexer is the minimal capability Print2D needs: a row count and
// bounds-checked access to each row. *matrix.Matrix satisfies it.
type RowIndexer[T any] interface {
	Rows() int
	Row(i int) (matrix.Row[T], error)
}

// Vector adapts a plain slice to Sequence.
type Vector[T any] []T

// Len returns len(v).
func (v Vector[T]) Len() int { return len(v) }

// All yields the elements in index order.
func (v Vector[T]) All() iter.Seq[T] { return slices.Values(v) }

// isNilSequence reports an untyped nil or a nil *matrix.Matrix behind s.
func isNilSequence[T any](s Sequence[T]) bool {
	if s == nil {
		return true
	}
	m, ok := s.(*matrix.Matrix[T])

	return ok && m == nil
}

// isNilRowIndexer is isNilSequence for RowIndexer.
func isNilRowIndexer[T any](r RowIndexer[T]) bool {
	if r == nil {
		return true
	}
	m, ok := r.(*matrix.Matrix[T])

	return ok && m == nil
}

// Compile-time assertions for interface conformance.
var (
	_ Sequence[float64]   = (*matrix.Matrix[float64])(nil)
	_ Sequence[float64]   = matrix.Row[float64]{}
	_ Sequence[float64]   = Vector[float64](nil)
	_ RowIndexer[float64] = (*matrix.Matrix[float64])(nil)
)
