// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.

package linalg

import (
	"errors"
	"fmt"

	"github.com/k0tyak1t/linear-algebra/matrix"
)

var (
	// ErrLengthMismatch is returned by Dot when the sequences differ in length.
	// It wraps matrix.ErrInvalidArgument so both sentinels match under errors.Is.
	ErrLengthMismatch = fmt.Errorf("linalg: sequences must have the same length: %w", matrix.ErrInvalidArgument)

	// ErrNilSequence indicates that a nil Sequence or RowIndexer was passed.
	ErrNilSequence = errors.New("linalg: nil sequence")
)
