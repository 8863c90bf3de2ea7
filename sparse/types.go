// SPDX-License-Identifier: MIT

// Package sparse: domain types for the dictionary-of-keys representation.
// This file intentionally contains ONLY domain-facing types (value type,
// entry triple, composite key). Errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package sparse

// Value is the numeric type stored in a Matrix.
//
// Values are signed 64-bit integers. Arithmetic uses native int64 semantics:
// on overflow the result wraps (two's complement), exactly as Go defines it.
// No saturation and no arbitrary-precision promotion is performed; callers
// with products near 2^63 must range-check upstream.
type Value = int64

// Entry is one stored (row, col, value) triple. Val is always non-zero for
// entries observed through Entries(); a zero Val never reaches storage.
type Entry struct {
	Row int   // row index, in [0, Rows)
	Col int   // column index, in [0, Cols)
	Val Value // stored value, non-zero
}

// key is the composite map key for one matrix position. Using a struct of
// two ints keeps the key compact and hash-friendly (no string formatting on
// the hot path); absence of a key means the logical value is zero.
// Complexity: O(1) to build; used in O(nnz) scans during merges.
type key struct {
	row int // row index
	col int // column index
}
