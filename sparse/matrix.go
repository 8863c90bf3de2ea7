// SPDX-License-Identifier: MIT

// Package sparse provides the core dictionary-of-keys entity: a matrix with
// fixed dimensions whose non-zero cells live in a composite-keyed map.
// Absence of a key means the logical value at that position is zero; a zero
// value is never stored (Set deletes instead of writing).
package sparse

import "sort"

// Matrix is a sparse rows×cols matrix of int64 values in dictionary-of-keys
// form. rows and cols are fixed at construction; data holds exactly the
// non-zero cells. The zero value of Matrix is not usable — construct via
// New, Parse or FromDense.
//
// A Matrix owns its map exclusively: arithmetic never mutates operands and
// always returns a fresh instance, so read-only sharing across goroutines is
// safe as long as nobody calls Set concurrently.
type Matrix struct {
	rows int           // number of rows, immutable after construction
	cols int           // number of columns, immutable after construction
	data map[key]Value // non-zero cells only; key absent ⇔ value is zero
}

// New creates an empty rows×cols Matrix.
// Implementation:
//   - Stage 1: validate rows ≥ 0 and cols ≥ 0 (zero is legal).
//   - Stage 2: allocate the backing map and return the instance.
//
// Inputs:
//   - rows, cols: fixed dimensions of the logical grid.
//
// Returns:
//   - *Matrix: empty matrix (every position reads as zero).
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(1), Space O(1) until entries are stored.
func New(rows, cols int) (*Matrix, error) {
	// Validate dimensions; negative shapes are programmer input errors.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{rows: rows, cols: cols, data: make(map[key]Value)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// At returns the value stored at (row, col), or zero if no entry exists.
// No bounds are enforced here: any index outside [0,rows)×[0,cols) simply
// has no entry and reads as zero (bounds are enforced at the Parse boundary).
// Complexity: O(1). Never fails.
func (m *Matrix) At(row, col int) Value {
	return m.data[key{row, col}] // missing key yields the zero Value
}

// Set stores value at (row, col). Setting zero removes any existing entry
// rather than storing it — the zero-free storage invariant is enforced on
// every write. Indices are not bounds-checked; out-of-range writes create
// entries unreachable by in-grid scans, so callers respecting the grid
// contract should pass in-range indices.
// Complexity: O(1). Never fails.
func (m *Matrix) Set(row, col int, value Value) {
	k := key{row, col}
	if value == 0 {
		delete(m.data, k) // keep storage zero-free

		return
	}
	m.data[k] = value
}

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.data) }

// Clone returns a deep copy of the matrix. The returned Matrix is fully
// independent of the original.
// Complexity: O(nnz) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{rows: m.rows, cols: m.cols, data: make(map[key]Value, len(m.data))}
	for k, v := range m.data {
		cp.data[k] = v
	}

	return cp
}

// Entries returns all stored entries in row-major order (row asc, then col
// asc). The format guarantees only that every non-zero entry appears exactly
// once; sorting is an additional determinism guarantee of this package, so
// renders and iterations are stable across runs.
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry{Row: k.row, Col: k.col, Val: v})
	}
	// Fixed row-major order keeps output deterministic regardless of map
	// iteration order.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}
