package types

import (
	"fmt"

	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// FixedStringMaxLength is the largest declarable FixedString(n) length.
const FixedStringMaxLength = 1_000_000

// FixedStringHandler implements FixedString(n): exactly n bytes per value.
// Values shorter than n are zero-padded on write; trailing zero bytes are
// stripped on read (so an all-zero payload decodes to the empty string).
type FixedStringHandler struct {
	length int
	caps   simd.Caps
}

// NewFixedStringHandler constructs a FixedString(n) handler. n must be in
// [1, 1_000_000].
func NewFixedStringHandler(n int, caps simd.Caps) (*FixedStringHandler, error) {
	if n < 1 || n > FixedStringMaxLength {
		return nil, wireerr.InvalidParameter("FixedString", "length", n)
	}

	return &FixedStringHandler{length: n, caps: caps}, nil
}

func (h *FixedStringHandler) ProtocolCode() byte   { return ProtoFixedString }
func (h *FixedStringHandler) TypeName() string     { return fmt.Sprintf("FixedString(%d)", h.length) }
func (h *FixedStringHandler) IsFixedLength() bool  { return true }
func (h *FixedStringHandler) FixedByteLength() int { return h.length }
func (h *FixedStringHandler) SimdCaps() simd.Caps  { return h.caps }
func (h *FixedStringHandler) Length() int          { return h.length }

// ReadValue decodes one value from the front of seq, stripping trailing
// zero bytes.
func (h *FixedStringHandler) ReadValue(seq *bytestream.Sequence) (string, int, error) {
	if seq.Length() < uint64(h.length) {
		return "", 0, wireerr.Underrun(h.TypeName(), h.length, int(seq.Length()))
	}

	buf := make([]byte, h.length)
	if err := seq.CopyTo(buf); err != nil {
		return "", 0, err
	}
	rest, err := seq.Advance(h.length)
	if err != nil {
		return "", 0, err
	}
	*seq = rest

	return trimTrailingZeros(buf), h.length, nil
}

func trimTrailingZeros(buf []byte) string {
	end := len(buf)
	for end > 0 && buf[end-1] == 0 {
		end--
	}

	return string(buf[:end])
}

// ReadValues fills dst with up to len(dst) items.
func (h *FixedStringHandler) ReadValues(seq *bytestream.Sequence, dst []string) (int, int, error) {
	avail := int(seq.Length()) / h.length
	want := len(dst)
	if avail < want {
		want = avail
	}

	for i := 0; i < want; i++ {
		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, i * h.length, err
		}
		dst[i] = v
	}

	return want, want * h.length, nil
}

// WriteValue appends one value to w, zero-padding to n bytes. A value
// longer than n bytes is Overflow.
func (h *FixedStringHandler) WriteValue(w *bytestream.Writer, v string) error {
	if len(v) > h.length {
		return wireerr.Overflow(h.TypeName(), fmt.Sprintf("value of %d bytes exceeds declared length %d", len(v), h.length))
	}

	span := w.GetSpan(h.length)
	n := copy(span, v)
	for i := n; i < h.length; i++ {
		span[i] = 0
	}
	w.Advance(h.length)

	return nil
}

// WriteValues appends values.
func (h *FixedStringHandler) WriteValues(w *bytestream.Writer, values []string) error {
	for i, v := range values {
		if err := h.WriteValue(w, v); err != nil {
			return wireerr.OverflowAt(h.TypeName(), i, err.Error())
		}
	}

	return nil
}

func (h *FixedStringHandler) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]string, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *FixedStringHandler) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]string)
	if !ok {
		return 0, wireerr.InvalidParameter(h.TypeName(), "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}
