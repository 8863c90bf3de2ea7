// SPDX-License-Identifier: MIT
// Package sparse: text codec for the matrix file format.
//
// Grammar (input):
//
//	line 1:    rows=<non-negative integer>
//	line 2:    cols=<non-negative integer>
//	line 3..N: (<row>, <col>, <value>)   — one entry per line, value may be
//	           negative; spaces after commas are optional.
//
// Output (Render/String):
//
//	Rows: <rows>, Columns: <cols>\n
//	(<row>, <col>, <value>)\n            — one line per stored entry,
//	                                       row-major order.
//
// Fatal-vs-warning policy: malformed headers (ErrMissingDimensions) and
// malformed entry lines (ErrMalformedEntry) abort the parse with no partial
// matrix; an in-grammar entry whose indices fall outside the declared
// dimensions is skipped and reported through the WarnFunc channel only.

package sparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Operation tags for codec error wrapping.
const (
	opParse  = "Parse"
	opRender = "Render"
)

// Line shapes. Headers tolerate spaces around '='; entries tolerate spaces
// after '(' and around commas. Anything else on line 3+ is fatal.
var (
	reRowsHeader = regexp.MustCompile(`^rows\s*=\s*(\d+)$`)
	reColsHeader = regexp.MustCompile(`^cols\s*=\s*(\d+)$`)
	// Render's own header is also accepted on input so that output files
	// round-trip through Parse without rewriting.
	reRenderHeader = regexp.MustCompile(`^Rows:\s*(\d+),\s*Columns:\s*(\d+)$`)
	reEntryLine    = regexp.MustCompile(`^\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\)$`)
)

// Parse builds a Matrix from the textual format above.
// Implementation:
//   - Stage 1: split into lines, dropping blanks (a trailing newline is not
//     an entry); match the rows=/cols= headers — or Render's combined
//     "Rows: r, Columns: c" header — and construct the matrix.
//   - Stage 2: match every remaining line against the entry grammar; store
//     in-bounds triples via Set, hand out-of-bounds triples to the warn
//     handler (never fatal, never stored).
//
// Inputs:
//   - text: full file contents.
//   - opts: WithWarnHandler to observe skipped out-of-bounds triples.
//
// Returns:
//   - *Matrix: fully built matrix; never a partial result on error.
//
// Errors:
//   - ErrMissingDimensions — header lines absent or malformed.
//   - ErrMalformedEntry    — an entry line violates the grammar (the wrapped
//     message carries the 1-based line number).
//
// Determinism:
//   - Lines are consumed top-down; warnings fire in input order.
//
// Complexity:
//   - Time O(len(text)), Space O(nnz).
func Parse(text string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Collect non-blank lines with their original 1-based numbers for
	// error reporting. CR is stripped so CRLF input parses identically.
	type numbered struct {
		no   int
		text string
	}
	raw := strings.Split(text, "\n")
	lines := make([]numbered, 0, len(raw))
	for i, ln := range raw {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue // blank lines (incl. the trailing newline) carry nothing
		}
		lines = append(lines, numbered{no: i + 1, text: ln})
	}

	// Headers: either the two-line input form (rows=/cols=) or Render's
	// single combined header; dimensions always precede entries.
	if len(lines) < 1 {
		return nil, sparseErrorf(opParse, ErrMissingDimensions)
	}
	var rowsText, colsText string
	var body []numbered
	if combined := reRenderHeader.FindStringSubmatch(lines[0].text); combined != nil {
		rowsText, colsText = combined[1], combined[2]
		body = lines[1:]
	} else {
		if len(lines) < 2 {
			return nil, sparseErrorf(opParse, ErrMissingDimensions)
		}
		rowsMatch := reRowsHeader.FindStringSubmatch(lines[0].text)
		if rowsMatch == nil {
			return nil, sparseErrorf(opParse, ErrMissingDimensions)
		}
		colsMatch := reColsHeader.FindStringSubmatch(lines[1].text)
		if colsMatch == nil {
			return nil, sparseErrorf(opParse, ErrMissingDimensions)
		}
		rowsText, colsText = rowsMatch[1], colsMatch[1]
		body = lines[2:]
	}
	rows, err := strconv.Atoi(rowsText)
	if err != nil {
		// Digits matched but exceed the int range.
		return nil, sparseErrorf(opParse, fmt.Errorf("rows header: %w", ErrMissingDimensions))
	}
	cols, err := strconv.Atoi(colsText)
	if err != nil {
		return nil, sparseErrorf(opParse, fmt.Errorf("cols header: %w", ErrMissingDimensions))
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opParse, err)
	}

	// Entries: every remaining line must match the grammar.
	for _, ln := range body {
		fields := reEntryLine.FindStringSubmatch(ln.text)
		if fields == nil {
			return nil, sparseErrorf(opParse, fmt.Errorf("line %d: %w", ln.no, ErrMalformedEntry))
		}
		r, errR := strconv.Atoi(fields[1])
		c, errC := strconv.Atoi(fields[2])
		v, errV := strconv.ParseInt(fields[3], 10, 64)
		if errR != nil || errC != nil || errV != nil {
			// Grammar matched but a number overflows its type.
			return nil, sparseErrorf(opParse, fmt.Errorf("line %d: %w", ln.no, ErrMalformedEntry))
		}
		// Bounds are enforced here, at the parse boundary: out-of-range
		// triples are advisory-only and never stored.
		if r < 0 || r >= rows || c < 0 || c >= cols {
			if o.warn != nil {
				o.warn(r, c, v)
			}

			continue
		}
		m.Set(r, c, v)
	}

	return m, nil
}

// Render serializes m into the textual format: a deterministic header line
// followed by one line per stored entry in row-major order. Every non-zero
// entry appears exactly once; zeros are never emitted.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//
// Complexity: O(nnz log nnz) time for the sort, O(output) space.
func Render(m *Matrix) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", sparseErrorf(opRender, err)
	}

	return m.String(), nil
}

// String implements fmt.Stringer using the Render format.
// Complexity: O(nnz log nnz).
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Rows: %d, Columns: %d\n", m.rows, m.cols)
	for _, e := range m.Entries() {
		fmt.Fprintf(&sb, "(%d, %d, %d)\n", e.Row, e.Col, e.Val)
	}

	return sb.String()
}
