package types

import (
	"unsafe"

	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/endian"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// Scalar is the set of value types the generic fixed-width handler can
// carry: every integer and float wire type, plus the day/second/tick
// counters backing Date, Date32, DateTime and DateTime64.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// FixedWidthHandler implements the common shape shared by every
// fixed-byte-length scalar type whose wire payload is a plain little-endian
// value: the signed and unsigned integers, the floats, and (via a distinct
// Go value type per handler) Date/Date32/DateTime. DateTime64 wraps the
// int64 instantiation; Decimal32/64/128 (big.Int unscaled values) and
// UUID/IPv4/IPv6 have their own handlers because their wire payload isn't a
// plain scalar.
type FixedWidthHandler[T Scalar] struct {
	protocolCode byte
	typeName     string
	elemBytes    int
	engine       endian.EndianEngine
	caps         simd.Caps
	put          func(dst []byte, engine endian.EndianEngine, v T)
	get          func(src []byte, engine endian.EndianEngine) T
	// nativeOrder is true when engine already matches the amd64 host's
	// in-memory byte order, so the bulk tiers below can move bytes with a
	// chunked copy instead of calling put/get per element.
	nativeOrder bool
}

func newFixedWidthHandler[T Scalar](
	code byte, name string, elemBytes int,
	engine endian.EndianEngine, caps simd.Caps,
	put func([]byte, endian.EndianEngine, T), get func([]byte, endian.EndianEngine) T,
) *FixedWidthHandler[T] {
	return &FixedWidthHandler[T]{
		protocolCode: code, typeName: name, elemBytes: elemBytes,
		engine: engine, caps: caps, put: put, get: get,
		nativeOrder: engine == endian.GetLittleEndianEngine(),
	}
}

func (h *FixedWidthHandler[T]) ProtocolCode() byte   { return h.protocolCode }
func (h *FixedWidthHandler[T]) TypeName() string     { return h.typeName }
func (h *FixedWidthHandler[T]) IsFixedLength() bool  { return true }
func (h *FixedWidthHandler[T]) FixedByteLength() int { return h.elemBytes }
func (h *FixedWidthHandler[T]) SimdCaps() simd.Caps  { return h.caps }

// ReadValue decodes one value from the front of seq.
func (h *FixedWidthHandler[T]) ReadValue(seq *bytestream.Sequence) (T, int, error) {
	var zero T

	if seq.Length() < uint64(h.elemBytes) {
		return zero, 0, wireerr.Underrun(h.typeName, h.elemBytes, int(seq.Length()))
	}

	var buf [16]byte // large enough for every instantiation (max 8 bytes today)
	span := buf[:h.elemBytes]

	if seq.IsSingleSegment() {
		src := seq.FirstSpan()[:h.elemBytes]
		v := h.get(src, h.engine)
		rest, err := seq.Advance(h.elemBytes)
		if err != nil {
			return zero, 0, err
		}
		*seq = rest

		return v, h.elemBytes, nil
	}

	if err := seq.CopyTo(span); err != nil {
		return zero, 0, err
	}
	v := h.get(span, h.engine)
	rest, err := seq.Advance(h.elemBytes)
	if err != nil {
		return zero, 0, err
	}
	*seq = rest

	return v, h.elemBytes, nil
}

// ReadValues fills dst with up to len(dst) items, stopping early if seq
// runs out of whole elements. It never partially decodes a trailing
// element.
func (h *FixedWidthHandler[T]) ReadValues(seq *bytestream.Sequence, dst []T) (int, int, error) {
	avail := int(seq.Length()) / h.elemBytes
	want := len(dst)
	if avail < want {
		want = avail
	}
	if want == 0 {
		return 0, 0, nil
	}

	if seq.IsSingleSegment() || len(seq.FirstSpan()) >= want*h.elemBytes {
		return h.readValuesContiguous(seq, dst[:want])
	}

	return h.readValuesScalarFallback(seq, dst[:want])
}

// readValuesContiguous decodes from a single in-range span. When the
// selected tier clears the minimum batch length and the wire byte order
// already matches the host's (nativeOrder), every element's bytes are
// identical to its in-memory representation, so the whole span is moved
// with chunkCopy's tier-sized bulk steps instead of a per-element get
// call. Below that tier, or for a non-native byte order, get runs once
// per element. Both paths produce identical values.
func (h *FixedWidthHandler[T]) readValuesContiguous(seq *bytestream.Sequence, dst []T) (int, int, error) {
	n := len(dst)
	byteLen := n * h.elemBytes
	src := seq.FirstSpan()[:byteLen]

	tier := selectTier(h.caps, h.elemBytes, n)
	if chunk := bulkChunkBytes(tier); h.nativeOrder && chunk > 0 {
		chunkCopy(asBytes(dst), src, chunk)
	} else {
		for i := 0; i < n; i++ {
			dst[i] = h.get(src[i*h.elemBytes:i*h.elemBytes+h.elemBytes], h.engine)
		}
	}

	rest, err := seq.Advance(byteLen)
	if err != nil {
		return 0, 0, err
	}
	*seq = rest

	return n, byteLen, nil
}

// asBytes reinterprets values' backing array as a byte slice, valid
// because every Scalar instantiation's wire width equals unsafe.Sizeof(T):
// a plain integer or float's in-memory layout on amd64 is already its
// little-endian wire encoding.
func asBytes[T Scalar](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zero T

	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*int(unsafe.Sizeof(zero)))
}

// chunkCopy copies src into dst in chunk-sized steps (the last step
// truncated to whatever remains). dst and src must be the same length.
// The chunk size is the only thing that varies across tiers; it stands in
// for the width of the vector register a real assembly kernel at that
// tier would load and store in one instruction.
func chunkCopy(dst, src []byte, chunk int) {
	for off := 0; off < len(src); off += chunk {
		end := off + chunk
		if end > len(src) {
			end = len(src)
		}
		copy(dst[off:end], src[off:end])
	}
}

func (h *FixedWidthHandler[T]) readValuesScalarFallback(seq *bytestream.Sequence, dst []T) (int, int, error) {
	for i := range dst {
		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, i * h.elemBytes, err
		}
		dst[i] = v
	}

	return len(dst), len(dst) * h.elemBytes, nil
}

// WriteValue appends one value to w.
func (h *FixedWidthHandler[T]) WriteValue(w *bytestream.Writer, v T) error {
	span := w.GetSpan(h.elemBytes)
	h.put(span, h.engine, v)
	w.Advance(h.elemBytes)

	return nil
}

// WriteValues appends values. Under the same nativeOrder and
// tier-threshold conditions as readValuesContiguous, it moves values'
// bytes directly with chunkCopy rather than calling put per element; both
// paths are observationally equivalent to a loop over WriteValue.
func (h *FixedWidthHandler[T]) WriteValues(w *bytestream.Writer, values []T) error {
	if len(values) == 0 {
		return nil
	}

	byteLen := len(values) * h.elemBytes
	span := w.GetSpan(byteLen)

	tier := selectTier(h.caps, h.elemBytes, len(values))
	if chunk := bulkChunkBytes(tier); h.nativeOrder && chunk > 0 {
		chunkCopy(span, asBytes(values), chunk)
	} else {
		for i, v := range values {
			h.put(span[i*h.elemBytes:i*h.elemBytes+h.elemBytes], h.engine, v)
		}
	}
	w.Advance(byteLen)

	return nil
}

func (h *FixedWidthHandler[T]) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]T, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *FixedWidthHandler[T]) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]T)
	if !ok {
		return 0, wireerr.InvalidParameter(h.typeName, "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}
