package linalg_test

import (
	"iter"
	"testing"

	"github.com/k0tyak1t/linear-algebra/linalg"
	"github.com/k0tyak1t/linear-algebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestDotVectors(t *testing.T) {
	got, err := linalg.Dot(linalg.Vector[int]{1, 2, 3}, linalg.Vector[int]{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, got)
}

func TestDotEmpty(t *testing.T) {
	got, err := linalg.Dot(linalg.Vector[float64]{}, linalg.Vector[float64](nil))
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestDotLengthMismatch(t *testing.T) {
	_, err := linalg.Dot(linalg.Vector[int]{1, 2, 3}, linalg.Vector[int]{4, 5})
	require.ErrorIs(t, err, linalg.ErrLengthMismatch)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	require.Contains(t, err.Error(), "len(a)=3, len(b)=2")
}

func TestDotNil(t *testing.T) {
	_, err := linalg.Dot[int, int](nil, linalg.Vector[int]{1})
	require.ErrorIs(t, err, linalg.ErrNilSequence)
}

// TestDotMixedTypes checks that heterogeneous element types meet in float64.
func TestDotMixedTypes(t *testing.T) {
	got, err := linalg.Dot(linalg.Vector[uint8]{2, 3}, linalg.Vector[float32]{0.5, 0.25})
	require.NoError(t, err)
	require.InDelta(t, 1.75, got, 1e-12)
}

// TestDotWidensBeforeMultiply pins the float64 accumulation: an int8 product
// would overflow, the float64 one does not.
func TestDotWidensBeforeMultiply(t *testing.T) {
	got, err := linalg.Dot(linalg.Vector[int8]{100}, linalg.Vector[int8]{100})
	require.NoError(t, err)
	require.Equal(t, 10000.0, got)
}

// TestDotMatrixAndRow covers the iterator path (non-Vector operands).
func TestDotMatrixAndRow(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	r0, err := m.Row(0)
	require.NoError(t, err)
	r1, err := m.Row(1)
	require.NoError(t, err)

	got, err := linalg.Dot(r0, r1)
	require.NoError(t, err)
	require.Equal(t, 32.0, got)

	// Whole matrix against a flat vector: 1+2+...+6.
	got, err = linalg.Dot(m, linalg.Vector[float64]{1, 1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 21.0, got)

	_, err = linalg.Dot(m, r0)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestDotDoesNotMutate ensures the inputs are read-only.
func TestDotDoesNotMutate(t *testing.T) {
	a := linalg.Vector[float64]{1.5, -2}
	b := linalg.Vector[float64]{4, 0.5}
	_, err := linalg.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, linalg.Vector[float64]{1.5, -2}, a)
	require.Equal(t, linalg.Vector[float64]{4, 0.5}, b)
}

// TestDotNilMatrix checks that a nil *matrix.Matrix is reported, not dereferenced.
func TestDotNilMatrix(t *testing.T) {
	var m *matrix.Matrix[int]

	_, err := linalg.Dot[int, int](m, linalg.Vector[int]{})
	require.ErrorIs(t, err, linalg.ErrNilSequence)

	_, err = linalg.Dot[int, int](linalg.Vector[int]{}, m)
	require.ErrorIs(t, err, linalg.ErrNilSequence)
}

// shortSeq claims n elements but yields only the first len(vals).
type shortSeq struct {
	n    int
	vals linalg.Vector[int]
}

func (s shortSeq) Len() int { return s.n }

func (s shortSeq) All() iter.Seq[int] { return s.vals.All() }

func TestDotSequenceYieldsFewerThanLen(t *testing.T) {
	short := shortSeq{n: 3, vals: linalg.Vector[int]{1, 2}}

	_, err := linalg.Dot[int, int](linalg.Vector[int]{1, 2, 3}, short)
	require.ErrorIs(t, err, linalg.ErrLengthMismatch)
	require.Contains(t, err.Error(), "b ended after 2 of 3")

	_, err = linalg.Dot[int, int](short, linalg.Vector[int]{1, 2, 3})
	require.ErrorIs(t, err, linalg.ErrLengthMismatch)
	require.Contains(t, err.Error(), "a ended after 2 of 3")
}

func TestDotSequenceYieldsMoreThanLen(t *testing.T) {
	long := shortSeq{n: 2, vals: linalg.Vector[int]{1, 2, 3}}

	_, err := linalg.Dot[int, int](linalg.Vector[int]{1, 2}, long)
	require.ErrorIs(t, err, linalg.ErrLengthMismatch)
}
