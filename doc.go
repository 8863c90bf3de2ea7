// Package spmat is a compact toolkit for sparse integer matrices:
// build them in memory, load and store them as plain text, and combine
// them with exact integer arithmetic.
//
// 🚀 What is spmat?
//
//	A small, deterministic library around one value-like entity — the
//	dictionary-of-keys sparse matrix — plus the boundaries a real pipeline
//	needs:
//	  • Core entity: fixed dimensions, map of non-zero entries, O(1) At/Set
//	  • Arithmetic: Add, Sub, Mul with pure (non-mutating) semantics
//	  • Text codec: rows=/cols= headers and (row, col, value) entry lines
//	  • Converters: bridges to gonum's mat.Dense
//	  • File boundary: read/write matrix files with a warning channel
//
// ✨ Why choose spmat?
//
//   - Exact — values are int64; no floating-point drift in arithmetic
//   - Deterministic — stable entry ordering, fixed loop orders, sentinel errors
//   - Honest about sparsity — the default kernels are the dense-scan baseline;
//     entrywise variants are one option away and yield identical entries
//   - Pure Go — no cgo; testify-tested throughout
//
// Under the hood, everything is organized under three surfaces:
//
//	sparse/    — entity, kernels, codec, validators, options, converters
//	matio/     — file & console boundary (FileAccess wrapping, log channel)
//	cmd/spmat/ — CLI driver: add | sub | mul | show over matrix files
//
// Quick taste:
//
//	a, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 1)\n(0, 1, 2)\n(1, 1, 3)\n")
//	b, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 2)\n(1, 0, 1)\n(1, 1, 4)\n")
//	c, _ := sparse.Mul(a, b)
//	fmt.Print(c)
//
// Start with package sparse; see matio for the file boundary and
// examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/spmat
package spmat
