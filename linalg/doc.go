// Package linalg provides free helpers built on the matrix iteration and
// indexing contract.
//
// The linalg package provides:
//
//   - Dot: inner product of two equal-length numeric sequences, always
//     accumulated in float64.
//   - Print1D / Print2D (and the Fprint* writer variants): render a sequence
//     or a row-indexable matrix as space-separated text. The default format of
//     Print2D(Identity(2)) is "1 0 \n0 1 \n\n".
//   - Sequence, RowIndexer: the narrow interfaces the helpers depend on,
//     satisfied by *matrix.Matrix, matrix.Row and Vector.
//
// Printing is configured with functional options (WithOutput, WithSeparator,
// WithVerb, WithLanguage); the defaults reproduce the format above exactly.
package linalg
