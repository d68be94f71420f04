// Package matrix offers a generic, fixed-size dense matrix container.
//
// The matrix package provides:
//
//   - Matrix[T]: one contiguous row-major buffer of Rows()*Cols() elements,
//     owned exclusively by the matrix and zero-initialized at construction.
//   - Row[T]: a non-owning row view; m.Row(i) then At/Set(j) is the
//     two-step, bounds-checked form of m[i][j].
//   - Numeric factories Zero, ZeroLike, Identity, IdentityLike, restricted
//     to arithmetic element types (Number) at compile time.
//   - Linear iteration (All) in row-major order, plus Do/Apply visitors.
//
// No arithmetic operators are defined here; the iteration and indexing
// contract is what external helpers (see package linalg) build on.
//
// See the examples in this package for usage patterns.
package matrix
