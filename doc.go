// Package linearalgebra is a small, generic dense-matrix toolkit: safe raw
// storage plus indexing, and nothing more.
//
// What is inside?
//
//	matrix/ - Matrix[T]: fixed-size, row-major, bounds-checked container with
//	          Row views, Clone, row-major iteration and Zero/Identity factories
//	linalg/ - Dot (float64 inner product) and Print1D/Print2D text rendering
//	gonumx/ - copies to and from gonum.org/v1/gonum/mat
//
// Design:
//
//   - One contiguous buffer per matrix, owned exclusively; copies never alias.
//   - Every index is checked before any read or write; failures are sentinel
//     errors (errors.Is), never panics.
//   - Zero/Identity are limited to arithmetic element types at compile time.
//   - No arithmetic operators, decompositions, sparse forms or serialization;
//     those belong to collaborators built on the iteration/indexing contract.
//
// Quick example:
//
//	id, _ := matrix.Identity[int](2)
//	_ = linalg.Print2D(id) // "1 0 \n0 1 \n\n"
//
//	go get github.com/k0tyak1t/linear-algebra
package linearalgebra
