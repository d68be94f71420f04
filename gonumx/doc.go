// Package gonumx copies matrices between this module's generic container and
// gonum.org/v1/gonum/mat.
//
// It is an external collaborator of package matrix: everything here goes
// through the public indexing and iteration contract (Row, At, All), and
// every conversion copies, so ownership never crosses the boundary.
//
//   - ToDense:    *matrix.Matrix[T] → *mat.Dense (T any Number kind)
//   - FromMatrix: any mat.Matrix   → *matrix.Matrix[float64]
//   - AsSequence: any mat.Vector   → linalg.Sequence[float64] (for linalg.Dot / Print1D)
package gonumx
