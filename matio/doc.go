// Package matio is the file and console boundary for sparse matrices:
// it reads and writes the textual matrix format on disk and routes
// advisory notices (skipped out-of-bounds entries, successful writes)
// through an injectable log channel.
//
// The core stays pure: all I/O failures surface here as ErrFileAccess
// wrapping the underlying cause, and the log channel never influences
// parsing results or control flow.
//
// ⚙️ Usage:
//
//	m, err := matio.ReadMatrix("a.txt")
//	if err != nil { ... }            // errors.Is(err, matio.ErrFileAccess) on I/O failure
//	sum, err := sparse.Add(m, m)
//	if err != nil { ... }
//	err = matio.WriteMatrix("sum.txt", sum)
//
// Redirect or silence the channel with SetLogger.
package matio
