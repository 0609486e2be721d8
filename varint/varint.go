// Package varint implements the LEB128-style unsigned 64-bit variable-length
// integer encoding used for String length prefixes and Native block headers.
//
// Encoding: repeatedly emit the low 7 bits of the remaining value with the
// high bit set as a continuation flag, until the remaining value fits in 7
// bits, then emit it with the high bit clear. Decoding reverses this,
// accumulating 7-bit groups until a byte with the high bit clear.
package varint

import (
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// MaxLen is the maximum number of bytes a 64-bit varint can occupy.
// Decoding that consumes more than this without terminating is malformed.
const MaxLen = 10

const (
	continuationBit = 0x80
	payloadMask     = 0x7F
	oneByteMax      = 1 << 7  // 128
	twoByteMax      = 1 << 14 // 16384
)

// Size returns the number of bytes Write(v) would emit, without writing
// anything. Used by callers that want to pre-size a span (e.g. the String
// handler's batched small-string fast path).
func Size(v uint64) int {
	n := 1
	for v >= continuationBit {
		v >>= 7
		n++
	}

	return n
}

// Write appends the varint encoding of v to w and returns the number of
// bytes written.
func Write(w *bytestream.Writer, v uint64) int {
	// Fast path: values < 128 fit in a single byte.
	if v < oneByteMax {
		span := w.GetSpan(1)
		span[0] = byte(v)
		w.Advance(1)

		return 1
	}

	// Fast path: values < 16384 fit in two bytes.
	if v < twoByteMax {
		span := w.GetSpan(2)
		span[0] = byte(v) | continuationBit
		span[1] = byte(v >> 7) //nolint:gosec // top bit of v>>7 is always 0 here
		w.Advance(2)

		return 2
	}

	span := w.GetSpan(MaxLen)
	n := 0
	for v >= continuationBit {
		span[n] = byte(v) | continuationBit
		v >>= 7
		n++
	}
	span[n] = byte(v)
	n++
	w.Advance(n)

	return n
}

// Read decodes a varint from the front of *seq, rebinding *seq to the
// unconsumed suffix on success. It fails with wireerr.ErrUnderrun if the
// sequence runs out of bytes before a terminating byte is seen, or with
// wireerr.ErrMalformedVarint if more than MaxLen bytes are consumed without
// one.
func Read(seq *bytestream.Sequence) (uint64, error) {
	if seq.IsSingleSegment() {
		if v, n, ok := readFromSpan(seq.FirstSpan()); ok {
			rest, err := seq.Advance(n)
			if err != nil {
				return 0, err
			}
			*seq = rest

			return v, nil
		}
	}

	return readSlow(seq)
}

// readFromSpan attempts to decode a varint directly from a contiguous span
// without any sequence rebinding machinery, for the single-segment fast
// path. ok is false if the span doesn't contain a complete varint (the
// caller falls back to readSlow, which handles both the malformed and the
// legitimately-cross-segment cases).
func readFromSpan(span []byte) (value uint64, n int, ok bool) {
	if len(span) == 0 {
		return 0, 0, false
	}

	if span[0] < continuationBit {
		return uint64(span[0]), 1, true
	}

	var result uint64
	var shift uint
	for i := 0; i < len(span) && i < MaxLen; i++ {
		b := span[i]
		result |= uint64(b&payloadMask) << shift
		if b < continuationBit {
			return result, i + 1, true
		}
		shift += 7
	}

	return 0, 0, false
}

// readSlow decodes byte-by-byte via Sequence.CopyTo/Advance, correctly
// handling a varint that straddles a segment boundary or a sequence that
// runs out of bytes.
func readSlow(seq *bytestream.Sequence) (uint64, error) {
	var result uint64
	var shift uint
	var buf [1]byte

	cur := *seq
	for i := 0; i < MaxLen; i++ {
		if cur.Len() == 0 {
			return 0, wireerr.Underrun("varint", 1, 0)
		}
		if err := cur.CopyTo(buf[:]); err != nil {
			return 0, err
		}
		rest, err := cur.Advance(1)
		if err != nil {
			return 0, err
		}
		cur = rest

		b := buf[0]
		result |= uint64(b&payloadMask) << shift
		if b < continuationBit {
			// Only rebind the caller's sequence once the varint is known
			// complete, so a failing call leaves *seq observationally
			// unchanged.
			*seq = cur

			return result, nil
		}
		shift += 7
	}

	return 0, wireerr.ErrMalformedVarint
}
