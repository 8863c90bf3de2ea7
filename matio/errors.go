package matio

import "errors"

var (
	// ErrFileAccess wraps any underlying read/write failure (missing file,
	// permission denied, ...). The original cause is wrapped alongside it,
	// so both errors.Is(err, ErrFileAccess) and errors.Is against the
	// underlying os error succeed.
	ErrFileAccess = errors.New("matio: file access failed")
)
