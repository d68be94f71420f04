// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// Number is the compile-time capability required by the numeric factories
// (Zero, Identity and their *Like variants). The container itself stays
// generic over any element type.

package matrix

// Number is the set of arithmetic element types: every built-in integer and
// floating-point kind, including named types derived from them. Complex
// kinds are not members.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
