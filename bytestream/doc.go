// Package bytestream provides the two buffer-facing abstractions every
// type handler in the types package is built on: Sequence, a possibly
// multi-segment input the handlers read from, and Writer, an append-only
// sink the handlers write into.
//
// # Sequence
//
// A Sequence never copies on construction or on Slice — it is always a
// zero-copy view over the segments it was built from. The one place a copy
// happens is CopyTo, used by a handler's non-contiguous fallback path when
// a value straddles a segment boundary.
//
// # Writer
//
// A Writer is a pooled, growable buffer exposed through a two-step
// contract: GetSpan reserves room, Advance commits how much of it was
// actually used. This mirrors how a vectorized bulk-write can reserve a
// worst-case span (e.g. the maximum varint width) and commit only the
// bytes the fast path actually needed.
package bytestream
