// SPDX-License-Identifier: MIT
// Package matio: read/write boundary around the sparse text codec.
// The boundary does not interpret I/O failures — it wraps them with
// ErrFileAccess and the original cause and hands them upward.

package matio

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/spmat/sparse"
)

// outFileMode is the permission set for written matrix files.
const outFileMode = 0o644

// logger is the package console/log channel. Advisory only: nothing written
// here may influence correctness or control flow.
var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger redirects the advisory channel. Passing nil silences it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// ReadMatrix loads a matrix file from path.
// Implementation:
//   - Stage 1: read the file; any failure is wrapped as ErrFileAccess
//     together with the underlying cause.
//   - Stage 2: delegate to sparse.Parse with a default warn handler that
//     logs skipped out-of-bounds entries; caller opts are applied after the
//     default, so WithWarnHandler overrides it (last-writer-wins).
//
// Errors:
//   - ErrFileAccess (plus the wrapped os error) on read failure.
//   - sparse.ErrMissingDimensions / sparse.ErrMalformedEntry from Parse.
//
// Complexity: O(file size).
func ReadMatrix(path string, opts ...sparse.Option) (*sparse.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%s): %w: %w", path, ErrFileAccess, err)
	}

	warnOpt := sparse.WithWarnHandler(func(r, c int, v int64) {
		logger.Printf("matio: %s: entry (%d, %d, %d) out of bounds; skipped", path, r, c, v)
	})
	m, err := sparse.Parse(string(raw), append([]sparse.Option{warnOpt}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix(%s): %w", path, err)
	}

	return m, nil
}

// WriteMatrix renders m and writes it to path, logging an advisory notice
// on success.
//
// Errors:
//   - sparse.ErrNilMatrix when m is nil.
//   - ErrFileAccess (plus the wrapped os error) on write failure.
//
// Complexity: O(nnz log nnz) for the render, O(output) for the write.
func WriteMatrix(path string, m *sparse.Matrix) error {
	text, err := sparse.Render(m)
	if err != nil {
		return fmt.Errorf("WriteMatrix(%s): %w", path, err)
	}
	if err = os.WriteFile(path, []byte(text), outFileMode); err != nil {
		return fmt.Errorf("WriteMatrix(%s): %w: %w", path, ErrFileAccess, err)
	}
	logger.Printf("matio: wrote %d×%d matrix (%d entries) to %s", m.Rows(), m.Cols(), m.NNZ(), path)

	return nil
}
