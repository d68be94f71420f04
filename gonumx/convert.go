// SPDX-License-Identifier: MIT

// Package gonumx - conversions.
//
// Complexity quicksheet:
//   - ToDense / FromMatrix: Time O(r*c), Space O(r*c); AsSequence: O(1) wrap.

package gonumx

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/mat"

	"github.com/k0tyak1t/linear-algebra/linalg"
	"github.com/k0tyak1t/linear-algebra/matrix"
)

const (
	ctxToDense    = "ToDense"
	ctxFromMatrix = "FromMatrix"
	ctxAsSequence = "AsSequence"
)

// ToDense copies m into a new *mat.Dense, widening each element to float64.
//
// Implementation:
//   - Stage 1: reject nil and empty shapes (mat.NewDense panics on them).
//   - Stage 2: drain m.All() into a row-major float64 slice; hand it to gonum.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmpty.
func ToDense[T matrix.Number](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxToDense, err)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: shape %dx%d: %w", ctxToDense, r, c, ErrEmpty)
	}

	data := make([]float64, 0, m.Len())
	for v := range m.All() { // row-major, same layout gonum expects
		data = append(data, float64(v))
	}

	return mat.NewDense(r, c, data), nil
}

// FromMatrix copies any gonum matrix into a new *matrix.Matrix[float64].
// *mat.Dense sources are read row by row from their raw storage; everything
// else goes through At.
func FromMatrix(src mat.Matrix) (*matrix.Matrix[float64], error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromMatrix, ErrNilSource)
	}
	r, c := src.Dims()
	out, err := matrix.New[float64](r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromMatrix, err)
	}

	if d, ok := src.(*mat.Dense); ok {
		for i := 0; i < r; i++ {
			row, _ := out.Row(i) // i < r by construction
			for j, v := range d.RawRowView(i) {
				_ = row.Set(j, v)
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromMatrix, err)
			}
		}
	}

	return out, nil
}

// vectorSeq adapts a mat.Vector to linalg.Sequence.
type vectorSeq struct{ v mat.Vector }

func (s vectorSeq) Len() int { return s.v.Len() }

func (s vectorSeq) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := s.v.Len()
		for i := 0; i < n; i++ {
			if !yield(s.v.AtVec(i)) {
				return
			}
		}
	}
}

// AsSequence exposes a gonum vector through the linalg.Sequence contract
// without copying. The vector must outlive the returned Sequence.
func AsSequence(v mat.Vector) (linalg.Sequence[float64], error) {
	if v == nil {
		return nil, fmt.Errorf("%s: %w", ctxAsSequence, ErrNilSource)
	}

	return vectorSeq{v: v}, nil
}
