package types

import (
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// BoolHandler implements Bool: one byte, 0x00 for false; any nonzero byte
// decodes to true (canonical encoding writes 0x01). It shares UInt8's
// protocol code and is distinguished only by type name.
type BoolHandler struct {
	caps simd.Caps
}

// NewBoolHandler returns a Bool handler.
func NewBoolHandler(caps simd.Caps) *BoolHandler {
	return &BoolHandler{caps: caps}
}

func (h *BoolHandler) ProtocolCode() byte   { return ProtoUInt8 }
func (h *BoolHandler) TypeName() string     { return "Bool" }
func (h *BoolHandler) IsFixedLength() bool  { return true }
func (h *BoolHandler) FixedByteLength() int { return 1 }
func (h *BoolHandler) SimdCaps() simd.Caps  { return h.caps }

// ReadValue decodes one value from the front of seq.
func (h *BoolHandler) ReadValue(seq *bytestream.Sequence) (bool, int, error) {
	if seq.Length() < 1 {
		return false, 0, wireerr.Underrun("Bool", 1, 0)
	}

	var buf [1]byte
	if err := seq.CopyTo(buf[:]); err != nil {
		return false, 0, err
	}
	rest, err := seq.Advance(1)
	if err != nil {
		return false, 0, err
	}
	*seq = rest

	return buf[0] != 0, 1, nil
}

// ReadValues fills dst with up to len(dst) items.
func (h *BoolHandler) ReadValues(seq *bytestream.Sequence, dst []bool) (int, int, error) {
	avail := int(seq.Length())
	want := len(dst)
	if avail < want {
		want = avail
	}

	for i := 0; i < want; i++ {
		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, i, err
		}
		dst[i] = v
	}

	return want, want, nil
}

// WriteValue appends one value to w.
func (h *BoolHandler) WriteValue(w *bytestream.Writer, v bool) error {
	span := w.GetSpan(1)
	if v {
		span[0] = 0x01
	} else {
		span[0] = 0x00
	}
	w.Advance(1)

	return nil
}

// WriteValues appends values.
func (h *BoolHandler) WriteValues(w *bytestream.Writer, values []bool) error {
	if len(values) == 0 {
		return nil
	}

	span := w.GetSpan(len(values))
	for i, v := range values {
		if v {
			span[i] = 0x01
		} else {
			span[i] = 0x00
		}
	}
	w.Advance(len(values))

	return nil
}

func (h *BoolHandler) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]bool, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *BoolHandler) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]bool)
	if !ok {
		return 0, wireerr.InvalidParameter("Bool", "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}
