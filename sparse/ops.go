// SPDX-License-Identifier: MIT
// Package sparse: arithmetic kernels over the dictionary-of-keys entity.
// All three operations are pure: operands are never mutated and results are
// freshly allocated. Each kernel exists in two traversals selected by
// ScanMode — the dense full-grid baseline and an entrywise variant that
// visits only stored entries. Both produce identical stored entries.

package sparse

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// sparseErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
// Call only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and both
// traversal paths; invariants (sign, opTag pairing) are enforced by callers.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate the result.
//   - Stage 2: DenseScan — fixed r→c loops over the full grid, storing only
//     non-zero sums. EntrywiseScan — copy a's entries, then merge b's with
//     the zero-free invariant maintained by deletion.
//
// Determinism:
//   - DenseScan uses fixed loop order; EntrywiseScan's map order is
//     irrelevant because each key is written independently.
//
// Complexity:
//   - DenseScan: Time O(rows·cols). EntrywiseScan: Time O(nnz(a)+nnz(b)).
//   - Space O(nnz(result)) either way.
func addSub(a, b *Matrix, sign Value, opTag string, opts ...Option) (*Matrix, error) {
	// Validate shapes match (and operands are non-nil).
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(opTag, err)
	}
	o := gatherOptions(opts...)

	// Allocate result with the shared shape. Dimensions were validated at
	// operand construction, so New cannot fail here; keep the check anyway
	// to preserve the single construction path.
	res, err := New(a.rows, a.cols)
	if err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	// Entrywise path: union of stored keys, O(nnz) instead of grid area.
	if o.scan == EntrywiseScan {
		for k, av := range a.data {
			res.data[k] = av // a's entries are non-zero by invariant
		}
		for k, bv := range b.data {
			sum := res.data[k] + sign*bv
			if sum == 0 {
				delete(res.data, k) // keep storage zero-free

				continue
			}
			res.data[k] = sum
		}

		return res, nil
	}

	// Dense baseline: scan every grid position in fixed r→c order.
	var r, c int
	for r = 0; r < a.rows; r++ {
		for c = 0; c < a.cols; c++ {
			res.Set(r, c, a.At(r, c)+sign*b.At(r, c)) // Set drops zero sums
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Implementation:
//   - Stage 1: validate both operands are non-nil with identical shapes.
//   - Stage 2: delegate to addSub with sign +1.
//
// Inputs:
//   - a, b: operands with equal rows and cols.
//   - opts: WithDenseScan (default) or WithEntrywiseScan.
//
// Returns:
//   - *Matrix: new matrix with C[r,c] = A[r,c] + B[r,c]; zero sums unstored.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(rows·cols) dense, O(nnz(a)+nnz(b)) entrywise; operands untouched.
func Add(a, b *Matrix, opts ...Option) (*Matrix, error) { return addSub(a, b, +1, opAdd, opts...) }

// Sub computes the element-wise difference C = A - B and returns a fresh
// Matrix. Same contract, errors and complexity as Add with sign -1.
func Sub(a, b *Matrix, opts ...Option) (*Matrix, error) { return addSub(a, b, -1, opSub, opts...) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, a.Cols == b.Rows); allocate
//     the a.Rows × b.Cols result.
//   - Stage 2: DenseScan — fixed i→j→k triple loop over positions,
//     accumulating sum_k a(i,k)·b(k,j) and storing non-zero sums.
//     EntrywiseScan — bucket b's entries by row once, then for each stored
//     a(i,k) scatter a(i,k)·b(k,j) into the result; prune zero cancellations
//     in a final sweep.
//
// Behavior highlights:
//   - The dense triple loop is the correctness-defining baseline: its cost is
//     O(a.rows·b.cols·a.cols) position evaluations regardless of sparsity.
//   - The entrywise variant yields identical stored entries because int64
//     addition commutes and associates and zero factors contribute nothing.
//
// Inputs:
//   - a: left operand (r × n); b: right operand (n × c).
//   - opts: WithDenseScan (default) or WithEntrywiseScan.
//
// Returns:
//   - *Matrix: new r × c product matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - DenseScan: Time O(r·c·n). EntrywiseScan: Time O(nnz(a)·maxRow(b)+nnz(b)).
//   - Space O(nnz(result)).
func Mul(a, b *Matrix, opts ...Option) (*Matrix, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	// Allocate the result with the product shape.
	res, err := New(a.rows, b.cols)
	if err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	// Entrywise path: only stored entries participate.
	if o.scan == EntrywiseScan {
		// Bucket b's entries by row so each stored a(i,k) can scatter into
		// exactly the products that survive the zero factor rule.
		rowsOfB := make(map[int][]Entry, b.rows)
		for k, bv := range b.data {
			rowsOfB[k.row] = append(rowsOfB[k.row], Entry{Row: k.row, Col: k.col, Val: bv})
		}
		for ka, av := range a.data {
			for _, be := range rowsOfB[ka.col] {
				res.data[key{ka.row, be.Col}] += av * be.Val
			}
		}
		// Accumulation may cancel to zero; prune to keep storage zero-free.
		for k, v := range res.data {
			if v == 0 {
				delete(res.data, k)
			}
		}

		return res, nil
	}

	// Dense baseline: fixed i→j→k triple loop over the full position grid.
	var i, j, k int
	var sum Value
	for i = 0; i < a.rows; i++ {
		for j = 0; j < b.cols; j++ {
			sum = 0
			for k = 0; k < a.cols; k++ {
				sum += a.At(i, k) * b.At(k, j) // zero operands contribute nothing
			}
			res.Set(i, j, sum) // Set drops zero sums
		}
	}

	return res, nil
}
