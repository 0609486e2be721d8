package types

import (
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/varint"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// asciiBatchMaxTotal and asciiBatchMaxItem bound the small-string batching
// heuristic: a run of strings is eligible for a single combined writer span
// when their combined size is at most asciiBatchMaxTotal bytes and no
// individual string exceeds asciiBatchMaxItem bytes. Batching must be
// byte-identical to the unbatched path; it only changes how many Writer
// spans are requested.
const (
	asciiBatchMaxTotal = 1024
	asciiBatchMaxItem  = 64
)

// StringHandler implements String: a varint length prefix followed by
// exactly that many bytes, preserved verbatim (no UTF-8 validation).
type StringHandler struct {
	caps simd.Caps
}

// NewStringHandler returns a String handler.
func NewStringHandler(caps simd.Caps) *StringHandler {
	return &StringHandler{caps: caps}
}

func (h *StringHandler) ProtocolCode() byte   { return ProtoString }
func (h *StringHandler) TypeName() string     { return "String" }
func (h *StringHandler) IsFixedLength() bool  { return false }
func (h *StringHandler) FixedByteLength() int { return -1 }
func (h *StringHandler) SimdCaps() simd.Caps  { return h.caps }

// ReadValue decodes one length-prefixed string from the front of seq.
func (h *StringHandler) ReadValue(seq *bytestream.Sequence) (string, int, error) {
	start := *seq
	before := seq.Length()

	n, err := varint.Read(seq)
	if err != nil {
		return "", 0, err
	}

	if seq.Length() < n {
		got := int(seq.Length())
		*seq = start

		return "", 0, wireerr.Underrun("String", int(n), got)
	}

	buf := make([]byte, n)
	if n > 0 {
		if err := seq.CopyTo(buf); err != nil {
			return "", 0, err
		}
		rest, err := seq.Advance(int(n))
		if err != nil {
			return "", 0, err
		}
		*seq = rest
	}

	consumed := int(before - seq.Length())

	return string(buf), consumed, nil
}

// ReadValues fills dst with up to len(dst) items, stopping when seq is
// exhausted. A length prefix that cannot be satisfied by the remaining
// bytes fails Underrun for that element without consuming it.
func (h *StringHandler) ReadValues(seq *bytestream.Sequence, dst []string) (int, int, error) {
	before := seq.Length()

	for i := range dst {
		if seq.Length() == 0 {
			return i, int(before - seq.Length()), nil
		}

		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, int(before - seq.Length()), err
		}
		dst[i] = v
	}

	return len(dst), int(before - seq.Length()), nil
}

// WriteValue appends one length-prefixed string to w.
func (h *StringHandler) WriteValue(w *bytestream.Writer, v string) error {
	varint.Write(w, uint64(len(v)))
	if len(v) == 0 {
		return nil
	}

	span := w.GetSpan(len(v))
	copy(span, v)
	w.Advance(len(v))

	return nil
}

// WriteValues appends values. Consecutive runs of short, mostly-ASCII
// strings are batched into a single larger writer span; the bytes produced
// are identical to writing each value individually.
func (h *StringHandler) WriteValues(w *bytestream.Writer, values []string) error {
	i := 0
	for i < len(values) {
		j, total := batchRun(values, i)
		if j > i+1 && total <= asciiBatchMaxTotal && isMostlyASCII(values[i:j], total) {
			writeBatch(w, values[i:j])
		} else {
			for _, v := range values[i:j] {
				if err := h.WriteValue(w, v); err != nil {
					return err
				}
			}
		}
		i = j
	}

	return nil
}

// batchRun finds the maximal run starting at i of strings no longer than
// asciiBatchMaxItem whose combined length stays within asciiBatchMaxTotal,
// and returns its end index (exclusive) and total byte length.
func batchRun(values []string, start int) (end int, total int) {
	end = start
	for end < len(values) {
		v := values[end]
		if len(v) > asciiBatchMaxItem {
			break
		}
		if total+len(v) > asciiBatchMaxTotal {
			break
		}
		total += len(v)
		end++
	}
	if end == start {
		end = start + 1
	}

	return end, total
}

// isMostlyASCII reports whether at least 70% of the combined bytes across
// run are in the ASCII range (high bit clear).
func isMostlyASCII(run []string, total int) bool {
	if total == 0 {
		return true
	}

	ascii := 0
	for _, v := range run {
		for i := 0; i < len(v); i++ {
			if v[i]&0x80 == 0 {
				ascii++
			}
		}
	}

	return float64(ascii)/float64(total) >= 0.7
}

// writeBatch estimates the combined span size for run (varint prefixes
// plus payload bytes), reserves it in one GetSpan call, and writes every
// string's prefix and payload into it before a single Advance.
func writeBatch(w *bytestream.Writer, run []string) {
	size := 0
	for _, v := range run {
		size += varint.Size(uint64(len(v))) + len(v)
	}

	span := w.GetSpan(size)
	off := 0
	for _, v := range run {
		n := varint.Size(uint64(len(v)))
		encodeVarintInline(span[off:off+n], uint64(len(v)))
		off += n
		off += copy(span[off:], v)
	}
	w.Advance(size)
}

// encodeVarintInline writes v's varint encoding into dst, which must be
// exactly varint.Size(v) bytes, without going through a Writer. Mirrors
// varint.Write's byte-for-byte output.
func encodeVarintInline(dst []byte, v uint64) {
	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)
}

func (h *StringHandler) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]string, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *StringHandler) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]string)
	if !ok {
		return 0, wireerr.InvalidParameter("String", "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}
