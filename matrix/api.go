// SPDX-License-Identifier: MIT
// Package matrix - numeric factories.
//
// Purpose:
//   - Provide intention-revealing constructors for the neutral elements of
//     arithmetic matrices: the zero matrix and the identity.
//   - Restrict them to arithmetic element types at compile time via the
//     Number constraint; Zero[string] does not build.
//
// Determinism & Policy:
//   - Single allocation per call; diagonal written in a fixed i-loop.
//   - The *Like variants read only the prototype's shape, never its values.

package matrix

const (
	ctxZeroLike     = "ZeroLike"
	ctxIdentity     = "Identity"
	ctxIdentityLike = "IdentityLike"
)

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// Zero returns a new rows×cols matrix with every element equal to 0.
// It is a thin alias of New with an intention-revealing name and the
// Number constraint.
//
// Note: Returns (*Matrix, error) to surface ErrInvalidDimensions.
func Zero[T Number](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols)
}

// ZeroLike returns a new zero matrix with the same shape as src.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZeroLike[T Number](src *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(ctxZeroLike, err)
	}

	return Zero[T](src.r, src.c)
}

// Identity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func Identity[T Number](n int) (*Matrix[T], error) {
	id, err := Zero[T](n, n)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ { // fixed i order
		id.data[i*n+i] = 1 // shape already validated; direct diagonal write
	}

	return id, nil
}

// IdentityLike returns Identity(proto.Rows()); proto must be square.
// The check runs at run time and fails with ErrNonSquare, which also
// matches ErrInvalidArgument under errors.Is.
func IdentityLike[T Number](proto *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSquare(proto); err != nil {
		return nil, matrixErrorf(ctxIdentityLike, err)
	}

	return Identity[T](proto.r)
}
