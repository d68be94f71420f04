package matrix_test

import (
	"testing"

	"github.com/k0tyak1t/linear-algebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustNew[int](t, 1, 1)))
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(mustNew[int](t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(mustNew[int](t, 3, 1)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare[int](nil), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	a := mustNew[int](t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, mustNew[float64](t, 2, 3)))

	err := matrix.ValidateSameShape(a, mustNew[int](t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Rows")

	err = matrix.ValidateSameShape(a, mustNew[int](t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Columns")

	require.ErrorIs(t, matrix.ValidateSameShape[int, int](a, nil), matrix.ErrNilMatrix)
}
