// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by unit tests and benchmarks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/k0tyak1t/linear-algebra/matrix"
)

// mustNew ALLOCATES an r×c matrix or fails the test (fatal on error).
func mustNew[T any](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	if err != nil {
		tb.Fatalf("matrix.New(%d,%d): %v", r, c, err)
	}

	return m
}

// mustFromRows builds a matrix from literal rows or fails the test.
func mustFromRows[T any](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("matrix.NewFromRows: %v", err)
	}

	return m
}

// collect drains m.All() into a slice, preserving iteration order.
func collect[T any](m *matrix.Matrix[T]) []T {
	out := make([]T, 0, m.Len())
	for v := range m.All() {
		out = append(out, v)
	}

	return out
}

// fillRand writes deterministic pseudo-random values in [-1,1) into m.
func fillRand(m *matrix.Matrix[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	})
}
