package sparse_test

import (
	"testing"

	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_NegativeDimensions verifies that negative rows or cols fail with
// ErrInvalidDimensions.
func TestNew_NegativeDimensions(t *testing.T) {
	_, err := sparse.New(-1, 3)
	assert.ErrorIs(t, err, sparse.ErrInvalidDimensions, "negative rows must error")

	_, err = sparse.New(3, -1)
	assert.ErrorIs(t, err, sparse.ErrInvalidDimensions, "negative cols must error")
}

// TestNew_ZeroDimensionsAllowed verifies that empty shapes are legal and
// produce a matrix with no positions and no entries.
func TestNew_ZeroDimensionsAllowed(t *testing.T) {
	m, err := sparse.New(0, 5)
	require.NoError(t, err, "zero rows is a legal shape")
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, 0, m.NNZ())
}

// TestSet_ZeroRemovesEntry verifies the zero-free storage invariant:
// setting zero deletes the key instead of storing it.
func TestSet_ZeroRemovesEntry(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)

	m.Set(1, 1, 5)
	require.Equal(t, 1, m.NNZ(), "one non-zero entry stored")

	m.Set(1, 1, 0)
	assert.Equal(t, int64(0), m.At(1, 1), "position reads as zero after removal")
	assert.Equal(t, 0, m.NNZ(), "the key must be absent from storage")
}

// TestSet_OverwriteAndDefault verifies overwrite semantics and the zero
// default for unstored positions (including indices outside the grid).
func TestSet_OverwriteAndDefault(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)

	m.Set(0, 2, 7)
	m.Set(0, 2, -9)
	assert.Equal(t, int64(-9), m.At(0, 2), "Set overwrites an existing entry")
	assert.Equal(t, 1, m.NNZ())

	assert.Equal(t, int64(0), m.At(2, 0), "unstored in-grid position reads zero")
	assert.Equal(t, int64(0), m.At(-4, 99), "At performs no bounds enforcement")
}

// TestClone_Independence verifies that Clone produces a deep copy that does
// not observe later mutations of the original (and vice versa).
func TestClone_Independence(t *testing.T) {
	m, err := sparse.New(2, 2)
	require.NoError(t, err)
	m.Set(0, 0, 1)
	m.Set(1, 1, 2)

	cp := m.Clone()
	m.Set(0, 0, 42)
	cp.Set(1, 1, 0)

	assert.Equal(t, int64(1), cp.At(0, 0), "clone keeps the original value")
	assert.Equal(t, int64(2), m.At(1, 1), "original keeps its entry")
	assert.Equal(t, 2, m.NNZ())
	assert.Equal(t, 1, cp.NNZ())
}

// TestEntries_RowMajorSorted verifies that Entries returns every stored
// triple exactly once, sorted row-major, with no zero values.
func TestEntries_RowMajorSorted(t *testing.T) {
	m, err := sparse.New(3, 3)
	require.NoError(t, err)
	m.Set(2, 0, 3)
	m.Set(0, 1, 1)
	m.Set(0, 0, 5)
	m.Set(1, 2, -2)
	m.Set(1, 2, 0) // removed again

	want := []sparse.Entry{
		{Row: 0, Col: 0, Val: 5},
		{Row: 0, Col: 1, Val: 1},
		{Row: 2, Col: 0, Val: 3},
	}
	assert.Equal(t, want, m.Entries(), "entries must be row-major sorted and zero-free")
}
