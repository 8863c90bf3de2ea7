package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_BasicDocument verifies a well-formed document parses into the
// expected entries.
func TestParse_BasicDocument(t *testing.T) {
	m, err := sparse.Parse("rows=2\ncols=2\n(0,0,5)\n(1,1,-3)\n")
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, int64(5), m.At(0, 0))
	assert.Equal(t, int64(-3), m.At(1, 1))
	assert.Equal(t, int64(0), m.At(0, 1), "unlisted position reads zero")
	assert.Equal(t, 2, m.NNZ())
}

// TestParse_WhitespaceTolerance verifies optional spaces around '=' and
// inside the entry parentheses are accepted.
func TestParse_WhitespaceTolerance(t *testing.T) {
	m, err := sparse.Parse("rows = 3\ncols= 4\n( 1 , 2 , -7 )\n(0,3,9)\n")
	require.NoError(t, err)

	assert.Equal(t, int64(-7), m.At(1, 2))
	assert.Equal(t, int64(9), m.At(0, 3))
}

// TestParse_OutOfBoundsSkipped verifies that an out-of-range entry is
// dropped with a warning and never aborts parsing or reaches storage.
func TestParse_OutOfBoundsSkipped(t *testing.T) {
	var skipped []sparse.Entry
	m, err := sparse.Parse(
		"rows=2\ncols=2\n(0,0,5)\n(5,5,1)\n(1,-1,4)\n(1,1,-3)\n",
		sparse.WithWarnHandler(func(r, c int, v int64) {
			skipped = append(skipped, sparse.Entry{Row: r, Col: c, Val: v})
		}),
	)
	require.NoError(t, err, "out-of-bounds entries are non-fatal")

	assert.Equal(t, 2, m.NNZ(), "only in-bounds entries are stored")
	assert.Equal(t, int64(0), m.At(5, 5), "skipped entry must not be stored")
	// Warnings fire in input order with the offending triples.
	want := []sparse.Entry{
		{Row: 5, Col: 5, Val: 1},
		{Row: 1, Col: -1, Val: 4},
	}
	assert.Equal(t, want, skipped)
}

// TestParse_MissingDimensions covers absent and malformed header lines.
func TestParse_MissingDimensions(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{"rows only", "rows=2\n"},
		{"missing cols header", "rows=2\n(0,0,1)\n"},
		{"swapped headers", "cols=2\nrows=2\n"},
		{"negative dimension", "rows=-2\ncols=2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.Parse(tc.text)
			assert.ErrorIs(t, err, sparse.ErrMissingDimensions)
		})
	}
}

// TestParse_MalformedEntry verifies that any line violating the entry
// grammar is fatal with ErrMalformedEntry.
func TestParse_MalformedEntry(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"non-numeric fields", "rows=2\ncols=2\n(a,b,c)\n"},
		{"missing parenthesis", "rows=2\ncols=2\n(0,0,5\n"},
		{"two fields only", "rows=2\ncols=2\n(0,5)\n"},
		{"stray prose", "rows=2\ncols=2\nhello\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.Parse(tc.text)
			assert.ErrorIs(t, err, sparse.ErrMalformedEntry)
		})
	}
}

// TestRender_HeaderAndOrder verifies the exact output format: the header
// line followed by row-major sorted entry lines.
func TestRender_HeaderAndOrder(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)
	m.Set(2, 2, 9)
	m.Set(0, 1, -4)
	m.Set(0, 0, 1)

	out, err := sparse.Render(m)
	require.NoError(t, err)
	assert.Equal(t, "Rows: 3, Columns: 3\n(0, 0, 1)\n(0, 1, -4)\n(2, 2, 9)\n", out)
}

// TestRender_NilMatrix verifies the nil guard on the facade.
func TestRender_NilMatrix(t *testing.T) {
	_, err := sparse.Render(nil)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestRoundTrip_RenderParseRender verifies render(parse(render(m))) ==
// render(m): the entry set survives a full round trip (string equality is
// sufficient because Render is deterministically sorted).
func TestRoundTrip_RenderParseRender(t *testing.T) {
	m, err := sparse.New(4, 5)
	require.NoError(t, err)
	m.Set(0, 0, 1)
	m.Set(3, 4, -12)
	m.Set(1, 2, 700)
	first, err := sparse.Render(m)
	require.NoError(t, err)

	back, err := sparse.Parse(first)
	require.NoError(t, err, "Render output must be accepted by Parse")
	second, err := sparse.Render(back)
	require.NoError(t, err)

	assert.Equal(t, first, second, "round trip must preserve the entry set")
	assert.Equal(t, m.Entries(), back.Entries())
}

// TestParse_InputHeaderRoundTrip verifies the rows=/cols= input form and the
// combined render header describe the same matrix.
func TestParse_InputHeaderRoundTrip(t *testing.T) {
	a, err := sparse.Parse("rows=2\ncols=3\n(1,2,8)\n")
	require.NoError(t, err)
	b, err := sparse.Parse(fmt.Sprintf("Rows: %d, Columns: %d\n(1, 2, 8)\n", 2, 3))
	require.NoError(t, err)

	assert.Equal(t, a.Entries(), b.Entries())
	assert.Equal(t, a.String(), b.String())
}
