// Package sparse implements a memory-efficient sparse matrix of signed
// integers with a plain-text codec and exact arithmetic.
//
// 🚀 What is a sparse matrix here?
//
//	A rows×cols grid where most cells are zero, stored as a map from
//	(row, col) to the non-zero int64 value (dictionary-of-keys form).
//	Storage holds exactly the non-zero entries: writing zero deletes.
//
// ✨ Key features:
//   - New/At/Set entity with O(1) reads and writes and fixed dimensions
//   - Add, Sub, Mul — pure operations returning fresh matrices
//   - two traversal modes: the dense full-grid baseline (default) and an
//     entrywise mode (WithEntrywiseScan) touching only stored entries,
//     with entry-for-entry identical results
//   - Parse/Render text codec with a fatal-vs-warning error policy:
//     malformed headers or entry lines abort; out-of-bounds entries are
//     skipped and reported via WithWarnHandler
//   - ToDense/FromDense bridges to gonum's mat.Dense
//
// ⚙️ Usage:
//
//	m, err := sparse.Parse("rows=2\ncols=2\n(0,0,5)\n(1,1,-3)\n")
//	if err != nil { ... }
//	m.At(0, 0)              // 5
//	m.At(0, 1)              // 0 (unstored)
//	sum, err := sparse.Add(m, m)
//	out, err := sparse.Render(sum)
//
// Error handling follows the package sentinel set in errors.go; match with
// errors.Is. Warnings never affect control flow or the returned matrix.
//
// Performance:
//
//   - At/Set: O(1)
//   - Add/Sub: O(rows·cols) dense, O(nnz(a)+nnz(b)) entrywise
//   - Mul: O(r·c·n) dense, proportional to stored products entrywise
//
// See the examples in this package and matio for the file boundary.
package sparse
