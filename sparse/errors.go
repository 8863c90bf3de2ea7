// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the facade — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows < 0 or cols < 0). Zero dimensions are legal.
	ErrInvalidDimensions = errors.New("sparse: rows and cols must be non-negative")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub require identical rows and cols, Mul requires a.Cols == b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrMissingDimensions signals that the rows=/cols= header lines are
	// absent or malformed during Parse. Fatal: no partial matrix is returned.
	ErrMissingDimensions = errors.New("sparse: missing or malformed rows=/cols= header")

	// ErrMalformedEntry signals that an entry line does not match the
	// (row, col, value) grammar during Parse. Fatal: parsing aborts.
	ErrMalformedEntry = errors.New("sparse: malformed entry line")

	// ErrNonIntegralValue signals that a dense cell could not be ingested as
	// an exact int64 (NaN, ±Inf, fractional, or outside the int64 range).
	ErrNonIntegralValue = errors.New("sparse: value is not an exact int64")
)
