// SPDX-License-Identifier: MIT

// Package linalg - dot product.
//
// Purpose:
//   - Inner product of two sequences walked in lockstep.
//   - Accumulation is always float64, whatever the element types, starting from 0.
//
// Complexity quicksheet:
//   - Dot: Time O(n), Space O(1); inputs are never mutated.

package linalg

import (
	"fmt"
	"iter"

	"github.com/k0tyak1t/linear-algebra/matrix"
)

const ctxDot = "Dot"

// Dot returns Σ a[k]*b[k] over k in [0, n), with each element widened to
// float64 before the multiply.
//
// Implementation:
//   - Stage 1: reject nil inputs and unequal lengths.
//   - Stage 2: fast-path for two Vectors (plain indexed loop).
//   - Stage 3: otherwise range over a and pull b in lockstep; a sequence that
//     yields a different count than its Len reports is a length mismatch.
//
// Errors:
//   - ErrNilSequence for a nil interface or a nil *matrix.Matrix.
//   - ErrLengthMismatch (matches matrix.ErrInvalidArgument).
//
// Notes:
//   - Two empty sequences yield 0.
func Dot[A, B matrix.Number](a Sequence[A], b Sequence[B]) (float64, error) {
	if isNilSequence(a) || isNilSequence(b) {
		return 0, fmt.Errorf("%s: %w", ctxDot, ErrNilSequence)
	}
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%s: len(a)=%d, len(b)=%d: %w", ctxDot, a.Len(), b.Len(), ErrLengthMismatch)
	}

	// Fast-path: both operands are plain slices.
	if va, ok := a.(Vector[A]); ok {
		if vb, ok := b.(Vector[B]); ok {
			var sum float64
			for k := range va {
				sum += float64(va[k]) * float64(vb[k])
			}

			return sum, nil
		}
	}

	next, stop := iter.Pull(b.All())
	defer stop()

	n := a.Len()
	var sum float64
	k := 0
	for x := range a.All() {
		y, ok := next()
		if !ok {
			return 0, fmt.Errorf("%s: b ended after %d of %d elements: %w", ctxDot, k, n, ErrLengthMismatch)
		}
		sum += float64(x) * float64(y)
		k++
	}
	if k != n {
		return 0, fmt.Errorf("%s: a ended after %d of %d elements: %w", ctxDot, k, n, ErrLengthMismatch)
	}
	if _, ok := next(); ok {
		return 0, fmt.Errorf("%s: b yielded more than %d elements: %w", ctxDot, n, ErrLengthMismatch)
	}

	return sum, nil
}
