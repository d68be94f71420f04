package matrix_test

import (
	"testing"

	"github.com/k0tyak1t/linear-algebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewFromSlice(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewFromSlice(2, 3, src)
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	// The input slice is copied, not adopted.
	src[0] = 100
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestNewFromSliceErrors(t *testing.T) {
	_, err := matrix.NewFromSlice(2, 2, []int{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewFromSlice(-1, 2, []int{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, collect(m))

	empty, err := matrix.NewFromRows[int](nil)
	require.NoError(t, err)
	require.Zero(t, empty.Len())
}

func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]int{{1, 2}, {3, 4}, {5}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "row 2")
}
