// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels (wrapped with call-site
// context) and tests check them via errors.Is. No method panics on a
// user-triggered condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("Matrix.<Method>(...): %w", ErrX); callers still match
// with errors.Is.
//
// TAXONOMY:
//   invalid argument (shape mismatch) -> ErrNonSquare, ErrDimensionMismatch
//   bounds violation                  -> ErrOutOfRange
//   construction                      -> ErrInvalidDimensions, ErrNilMatrix
// The element-type capability (Number) is a compile-time constraint and has
// no runtime sentinel.

var (
	// ErrInvalidArgument is the parent of every shape-mismatch condition.
	// errors.Is(err, ErrInvalidArgument) holds for ErrNonSquare and
	// ErrDimensionMismatch (and for linalg's length mismatch).
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Row/At/Set return it before touching the buffer.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates negative dimensions, or a shape whose
	// element count does not fit in an int. Zero is a legal dimension.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible shapes or a data slice whose
	// length does not match the requested shape.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)
)

// matrixErrorf wraps an underlying error with the given call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
