// SPDX-License-Identifier: MIT

package gonumx

import "errors"

var (
	// ErrEmpty is returned by ToDense for shapes gonum cannot hold (0 rows or 0 cols).
	ErrEmpty = errors.New("gonumx: gonum matrices cannot be empty")

	// ErrNilSource indicates a nil mat.Matrix or mat.Vector argument.
	ErrNilSource = errors.New("gonumx: nil source")
)
