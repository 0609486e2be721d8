package types

import (
	"fmt"
	"math/big"

	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// decimalCaps by precision cap, per type.
const (
	decimal32PrecisionCap  = 9
	decimal64PrecisionCap  = 18
	decimal128PrecisionCap = 38
)

// Decimal carries a Decimal32/64/128 value as its unscaled integer and
// scale: value = Unscaled / 10^Scale. Unscaled is a *big.Int so the same
// type serves all three widths, including the 128-bit case that has no
// native Go integer.
type Decimal struct {
	Unscaled *big.Int
	Scale    int
}

// String renders the decimal in fixed-point form.
func (d Decimal) String() string {
	if d.Scale == 0 {
		return d.Unscaled.String()
	}

	neg := d.Unscaled.Sign() < 0
	abs := new(big.Int).Abs(d.Unscaled)
	s := abs.String()
	for len(s) <= d.Scale {
		s = "0" + s
	}
	intPart := s[:len(s)-d.Scale]
	fracPart := s[len(s)-d.Scale:]
	sign := ""
	if neg {
		sign = "-"
	}

	return fmt.Sprintf("%s%s.%s", sign, intPart, fracPart)
}

// DecimalHandler implements Decimal32/64/128(precision, scale): a 4/8/16
// byte signed little-endian unscaled integer interpreted at the given
// scale.
type DecimalHandler struct {
	protocolCode byte
	typeName     string
	elemBytes    int
	precision    int
	scale        int
	caps         simd.Caps
}

// newDecimalHandler builds a handler. The wire payload is always a
// little-endian unscaled integer regardless of host byte order (unlike
// the plain scalar types, there is no host-endianness-dependent encoding
// choice here), so unlike FixedWidthHandler this constructor takes no
// endian.EndianEngine.
func newDecimalHandler(code byte, family string, elemBytes, precisionCap, precision, scale int, caps simd.Caps) (*DecimalHandler, error) {
	if precision < 1 || precision > precisionCap {
		return nil, wireerr.InvalidParameter(family, "precision", precision)
	}
	if scale < 0 || scale > precision {
		return nil, wireerr.InvalidParameter(family, "scale", scale)
	}

	return &DecimalHandler{
		protocolCode: code,
		typeName:     fmt.Sprintf("%s(%d,%d)", family, precision, scale),
		elemBytes:    elemBytes,
		precision:    precision,
		scale:        scale,
		caps:         caps,
	}, nil
}

// NewDecimal32Handler constructs a Decimal32(precision,scale) handler.
// precision must be in [1, 9] and scale in [0, precision].
func NewDecimal32Handler(precision, scale int, caps simd.Caps) (*DecimalHandler, error) {
	return newDecimalHandler(ProtoDecimal32, "Decimal32", 4, decimal32PrecisionCap, precision, scale, caps)
}

// NewDecimal64Handler constructs a Decimal64(precision,scale) handler.
// precision must be in [1, 18] and scale in [0, precision].
func NewDecimal64Handler(precision, scale int, caps simd.Caps) (*DecimalHandler, error) {
	return newDecimalHandler(ProtoDecimal64, "Decimal64", 8, decimal64PrecisionCap, precision, scale, caps)
}

// NewDecimal128Handler constructs a Decimal128(precision,scale) handler.
// precision must be in [1, 38] and scale in [0, precision]. Scales beyond
// the platform's native 28-digit decimal precision are represented exactly
// here (via big.Int) but callers converting out to a fixed-precision
// decimal type may need step-wise division and can lose precision, per the
// wire format's own documented limitation.
func NewDecimal128Handler(precision, scale int, caps simd.Caps) (*DecimalHandler, error) {
	return newDecimalHandler(ProtoDecimal128, "Decimal128", 16, decimal128PrecisionCap, precision, scale, caps)
}

func (h *DecimalHandler) ProtocolCode() byte   { return h.protocolCode }
func (h *DecimalHandler) TypeName() string     { return h.typeName }
func (h *DecimalHandler) IsFixedLength() bool  { return true }
func (h *DecimalHandler) FixedByteLength() int { return h.elemBytes }
func (h *DecimalHandler) SimdCaps() simd.Caps  { return h.caps }
func (h *DecimalHandler) Precision() int       { return h.precision }
func (h *DecimalHandler) Scale() int           { return h.scale }

// maxUnscaled is the largest absolute unscaled value representable at this
// handler's precision, 10^precision - 1.
func (h *DecimalHandler) maxUnscaled() *big.Int {
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(h.precision)), nil)

	return bound.Sub(bound, big.NewInt(1))
}

func (h *DecimalHandler) encodeUnscaled(dst []byte, v *big.Int) error {
	if v.CmpAbs(h.maxUnscaled()) > 0 {
		return wireerr.Overflow(h.typeName, fmt.Sprintf("unscaled value %s exceeds precision %d", v, h.precision))
	}

	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	b := abs.Bytes() // big-endian
	if len(b) > h.elemBytes {
		return wireerr.Overflow(h.typeName, fmt.Sprintf("unscaled value %s exceeds %d bytes", v, h.elemBytes))
	}

	for i := range dst {
		dst[i] = 0
	}
	// place big-endian magnitude into the low-order (little-endian tail) bytes
	for i, bb := range b {
		dst[len(b)-1-i] = bb
	}

	if neg {
		negateLE(dst)
	}

	return nil
}

// negateLE two's-complement negates a little-endian byte array in place.
func negateLE(b []byte) {
	carry := 1
	for i := range b {
		sum := int(^b[i]&0xFF) + carry
		b[i] = byte(sum)
		carry = sum >> 8
	}
}

func (h *DecimalHandler) decodeUnscaled(src []byte) *big.Int {
	neg := src[h.elemBytes-1]&0x80 != 0
	work := make([]byte, h.elemBytes)
	copy(work, src)

	if neg {
		negateLE(work)
	}

	// work is little-endian magnitude; big.Int.SetBytes wants big-endian.
	be := make([]byte, h.elemBytes)
	for i := 0; i < h.elemBytes; i++ {
		be[h.elemBytes-1-i] = work[i]
	}
	mag := new(big.Int).SetBytes(be)
	if neg {
		mag.Neg(mag)
	}

	return mag
}

// ReadValue decodes one value from the front of seq.
func (h *DecimalHandler) ReadValue(seq *bytestream.Sequence) (Decimal, int, error) {
	if seq.Length() < uint64(h.elemBytes) {
		return Decimal{}, 0, wireerr.Underrun(h.typeName, h.elemBytes, int(seq.Length()))
	}

	buf := make([]byte, h.elemBytes)
	if err := seq.CopyTo(buf); err != nil {
		return Decimal{}, 0, err
	}
	rest, err := seq.Advance(h.elemBytes)
	if err != nil {
		return Decimal{}, 0, err
	}
	*seq = rest

	return Decimal{Unscaled: h.decodeUnscaled(buf), Scale: h.scale}, h.elemBytes, nil
}

// ReadValues fills dst with up to len(dst) items.
func (h *DecimalHandler) ReadValues(seq *bytestream.Sequence, dst []Decimal) (int, int, error) {
	avail := int(seq.Length()) / h.elemBytes
	want := len(dst)
	if avail < want {
		want = avail
	}

	for i := 0; i < want; i++ {
		v, _, err := h.ReadValue(seq)
		if err != nil {
			return i, i * h.elemBytes, err
		}
		dst[i] = v
	}

	return want, want * h.elemBytes, nil
}

// WriteValue appends one value to w. v.Scale is ignored; the handler's own
// configured scale determines the wire unscaled integer's meaning, so
// callers must pre-rescale v.Unscaled to this handler's scale.
func (h *DecimalHandler) WriteValue(w *bytestream.Writer, v Decimal) error {
	span := w.GetSpan(h.elemBytes)
	if err := h.encodeUnscaled(span, v.Unscaled); err != nil {
		return err
	}
	w.Advance(h.elemBytes)

	return nil
}

// WriteValues appends values.
func (h *DecimalHandler) WriteValues(w *bytestream.Writer, values []Decimal) error {
	if len(values) == 0 {
		return nil
	}

	span := w.GetSpan(len(values) * h.elemBytes)
	for i, v := range values {
		if err := h.encodeUnscaled(span[i*h.elemBytes:i*h.elemBytes+h.elemBytes], v.Unscaled); err != nil {
			return wireerr.OverflowAt(h.typeName, i, err.Error())
		}
	}
	w.Advance(len(values) * h.elemBytes)

	return nil
}

func (h *DecimalHandler) ReadValuesAny(seq *bytestream.Sequence, n int) (any, int, int, error) {
	dst := make([]Decimal, n)
	read, consumed, err := h.ReadValues(seq, dst)

	return dst[:read], read, consumed, err
}

func (h *DecimalHandler) WriteValuesAny(w *bytestream.Writer, values any) (int, error) {
	typed, ok := values.([]Decimal)
	if !ok {
		return 0, wireerr.InvalidParameter(h.typeName, "values", values)
	}
	before := w.Len()
	if err := h.WriteValues(w, typed); err != nil {
		return 0, err
	}

	return w.Len() - before, nil
}
