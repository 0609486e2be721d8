package types

import (
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// UUID is a 16-byte value in native
// [0..4][4..6][6..8][8..16] layout (the common platform UUID byte order,
// matching e.g. google/uuid's [16]byte representation).
type UUID [16]byte

// UUIDHandler implements UUID: 16 bytes, wire byte order
// [6..8][4..6][0..4][reverse(8..16)] relative to native order.
type UUIDHandler struct {
	caps simd.Caps
}

// NewUUIDHandler returns a UUID handler.
func NewUUIDHandler(caps simd.Caps) *UUIDHandler {
	return &UUIDHandler{caps: caps}
}

func (h *UUIDHandler) ProtocolCode() byte   { return ProtoUUID }
func (h *UUIDHandler) TypeName() string     { return "UUID" }
func (h *UUIDHandler) IsFixedLength() bool  { return true }
func (h *UUIDHandler) FixedByteLength() int { return 16 }
func (h *UUIDHandler) SimdCaps() simd.Caps  { return h.caps }

// ReadValue decodes one value from the front of seq, un-shuffling wire
// order back into native order.
func (h *UUIDHandler) ReadValue(seq *bytestream.Sequence) (UUID, int, error) {
	var out UUID
	if seq.Length() < 16 {
		return out, 0, wireerr.Underrun("UUID", 16, int(seq.Length()))
	}

	var wire [16]byte
	if err := seq.CopyTo(wire[:]); err != nil {
		return out, 0, err
	}
	rest, err := seq.Advance(16)
	if err != nil {
		return out, 0, err
	}
	*seq = rest

	applyShuffle16(out[:], wire[:], uuidWireToNative)

	return out, 16, nil
}

// ReadValues fills dst with up to len(dst) items.
func (h *UUIDHandler) ReadValues(seq *bytestream.Sequence, dst []UUID) (int, int, error) {
	avail := int(seq.Length()) / 16
	want := len(dst)
	if avail < want {
		want = avail
	}
	if want == 0 {
		return 0, 0, nil
	}

	if seq.IsSingleSegment() || len(seq.FirstSpan()) >= want*16 {
		tier := selectTier(h.caps, 16, want)
		src := seq.FirstSpan()[:want*16]
		flat := make([]byte, want*16)
		applyShuffleLanes(flat, src, uuidWireToNative, want, shuffleLanesPerStep(tier))
		for i := 0; i < want; i++ {
			copy(dst[i][:], flat[i*16:i*16+16])
		}
		rest, err := seq.Advance(want * 16)
		if err != nil {
			return 0, 0, err
		}
		*seq = rest

		return want, want * 16, nil
	}

	for i := 0; i < want; i++ {
		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, i * 16, err
		}
		dst[i] = v
	}

	return want, want * 16, nil
}

// WriteValue appends one value to w, shuffling native order to wire order.
func (h *UUIDHandler) WriteValue(w *bytestream.Writer, v UUID) error {
	span := w.GetSpan(16)
	applyShuffle16(span, v[:], uuidNativeToWire)
	w.Advance(16)

	return nil
}

// WriteValues appends values.
func (h *UUIDHandler) WriteValues(w *bytestream.Writer, values []UUID) error {
	if len(values) == 0 {
		return nil
	}

	tier := selectTier(h.caps, 16, len(values))

	flat := make([]byte, len(values)*16)
	for i, v := range values {
		copy(flat[i*16:i*16+16], v[:])
	}

	span := w.GetSpan(len(values) * 16)
	applyShuffleLanes(span, flat, uuidNativeToWire, len(values), shuffleLanesPerStep(tier))
	w.Advance(len(values) * 16)

	return nil
}

func (h *UUIDHandler) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]UUID, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *UUIDHandler) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]UUID)
	if !ok {
		return 0, wireerr.InvalidParameter("UUID", "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}
