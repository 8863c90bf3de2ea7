// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for arithmetic kernels and the
// text codec. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

// ScanMode selects how arithmetic kernels traverse their operands.
type ScanMode uint8

const (
	// DenseScan walks every position of the logical grid: O(rows·cols) for
	// Add/Sub and O(rows·n·cols) for Mul regardless of sparsity. This is the
	// baseline whose outputs define correctness.
	DenseScan ScanMode = iota

	// EntrywiseScan walks only stored entries: the union of keys for Add/Sub
	// and row-bucketed products for Mul. For matrices honoring the in-bounds
	// storage invariant, stored results are identical to DenseScan
	// entry-for-entry (integer addition commutes and associates; any product
	// involving zero contributes nothing).
	EntrywiseScan
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultScanMode keeps the full-grid baseline unless a caller opts in
	// to the sparsity-exploiting traversal.
	DefaultScanMode = DenseScan
)

// Internal panic messages (no magic strings).
const (
	panicWarnHandlerNil = "sparse: WithWarnHandler: handler must be non-nil"
)

// WarnFunc receives one skipped out-of-bounds triple during Parse. It is an
// advisory channel: implementations must not assume any effect on parsing.
type WarnFunc func(row, col int, value Value)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	scan ScanMode // DefaultScanMode
	warn WarnFunc // nil ⇒ skipped triples are silently dropped
}

// WithDenseScan selects the full-grid baseline traversal (the default).
// Complexity: O(1) to set.
func WithDenseScan() Option {
	return func(o *Options) { o.scan = DenseScan }
}

// WithEntrywiseScan selects the stored-entries traversal for Add/Sub/Mul.
// Behavior highlights:
//   - Output entries are identical to the dense baseline for every input.
//   - Cost becomes proportional to nnz instead of the grid area.
//
// Complexity: O(1) to set.
func WithEntrywiseScan() Option {
	return func(o *Options) { o.scan = EntrywiseScan }
}

// WithWarnHandler installs fn as the sink for out-of-bounds triples skipped
// during Parse. Panics when fn is nil (programmer error); use the default
// (no handler) to drop warnings silently.
// Complexity: O(1) to set.
func WithWarnHandler(fn WarnFunc) Option {
	if fn == nil {
		panic(panicWarnHandlerNil)
	}

	return func(o *Options) { o.warn = fn }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		scan: DefaultScanMode,
		warn: nil,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}
