package bytestream

import "github.com/bitwiser-io/chcodec/wireerr"

// Sequence is an ordered, zero-copy view over zero or more immutable byte
// segments. It is the input side of the codec: handlers read from a
// Sequence and rebind it to the unconsumed suffix after each read.
//
// The zero Sequence is valid and represents zero bytes.
type Sequence struct {
	segments [][]byte
	length   int
}

// New builds a Sequence from an ordered list of segments. Empty segments
// are dropped so that IsSingleSegment and FirstSpan behave predictably.
func New(segments ...[]byte) Sequence {
	var nonEmpty [][]byte
	total := 0
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		nonEmpty = append(nonEmpty, seg)
		total += len(seg)
	}

	return Sequence{segments: nonEmpty, length: total}
}

// Length returns the total number of unconsumed bytes.
func (s Sequence) Length() uint64 {
	return uint64(s.length)
}

// Len is the int-typed convenience form of Length, used internally where a
// slice index is needed.
func (s Sequence) Len() int {
	return s.length
}

// FirstSpan returns a contiguous view of the first segment. It is empty
// only when the sequence holds zero bytes total.
func (s Sequence) FirstSpan() []byte {
	if len(s.segments) == 0 {
		return nil
	}

	return s.segments[0]
}

// IsSingleSegment reports whether the sequence's bytes are addressable as
// one contiguous span, i.e. whether the SIMD fast path can be taken
// directly against FirstSpan without copying.
func (s Sequence) IsSingleSegment() bool {
	return len(s.segments) <= 1
}

// Slice returns the zero-copy subrange [start, start+length). It fails if
// the requested range falls outside the sequence's current bounds.
func (s Sequence) Slice(start, length int) (Sequence, error) {
	if start < 0 || length < 0 || start+length > s.length {
		return Sequence{}, wireerr.Underrun("Sequence.Slice", start+length, s.length)
	}

	if length == 0 {
		return Sequence{}, nil
	}

	segs := s.segments
	idx := 0
	skip := start
	for idx < len(segs) && skip >= len(segs[idx]) {
		skip -= len(segs[idx])
		idx++
	}

	var out [][]byte
	remaining := length
	offset := skip
	for idx < len(segs) && remaining > 0 {
		seg := segs[idx]
		hi := len(seg)
		if hi-offset > remaining {
			hi = offset + remaining
		}
		out = append(out, seg[offset:hi])
		remaining -= hi - offset
		offset = 0
		idx++
	}

	return Sequence{segments: out, length: length}, nil
}

// Advance consumes the first n bytes, returning the sequence re-bound to
// its suffix. Sequence is immutable, so callers consume a prefix by
// reassigning to the result of Advance.
func (s Sequence) Advance(n int) (Sequence, error) {
	return s.Slice(n, s.length-n)
}

// CopyTo copies the first len(dst) bytes into dst, walking across however
// many segments that requires. It fails if the sequence holds fewer bytes
// than len(dst).
func (s Sequence) CopyTo(dst []byte) error {
	if len(dst) > s.length {
		return wireerr.Underrun("Sequence.CopyTo", len(dst), s.length)
	}

	remaining := dst
	for _, seg := range s.segments {
		if len(remaining) == 0 {
			break
		}
		n := copy(remaining, seg)
		remaining = remaining[n:]
	}

	return nil
}
