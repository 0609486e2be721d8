package types

import (
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/simd"
)

// Protocol codes, the wire-identity byte for each scalar type. Bool shares
// UInt8's code; the two are distinguished only by the handler's type name.
const (
	ProtoUInt8       byte = 0x01
	ProtoUInt16      byte = 0x02
	ProtoUInt32      byte = 0x03
	ProtoUInt64      byte = 0x04
	ProtoInt8        byte = 0x07
	ProtoInt16       byte = 0x08
	ProtoInt32       byte = 0x09
	ProtoInt64       byte = 0x0A
	ProtoDate        byte = 0x10
	ProtoDateTime    byte = 0x11
	ProtoIPv4        byte = 0x13
	ProtoIPv6        byte = 0x14
	ProtoString      byte = 0x15
	ProtoFixedString byte = 0x16
	ProtoDecimal64   byte = 0x17
	ProtoDecimal128  byte = 0x18
	ProtoDateTime64  byte = 0x19
	ProtoUUID        byte = 0x1D
	ProtoDate32      byte = 0x1E
	ProtoDecimal32   byte = 0x42
	ProtoFloat32     byte = 0x43
	ProtoFloat64     byte = 0x44
)

// Handler is the type-erased contract every scalar handler satisfies. It
// carries wire identity and metadata, plus an any-typed bulk path
// (ReadValuesAny/WriteValuesAny) so the block model and registry can hold a
// column of any concrete value type in a single slice of Handler.
//
// Concrete handlers additionally expose strongly-typed ReadValue(s) and
// WriteValue(s) methods over their specific value type; callers that know
// the concrete type at compile time should prefer those over the Any
// forms.
type Handler interface {
	// ProtocolCode returns the wire-identity byte for this type.
	ProtocolCode() byte

	// TypeName returns the printable type name, including parameters for
	// parametric types (e.g. "Decimal64(18,2)", "FixedString(10)").
	TypeName() string

	// IsFixedLength reports whether every value of this type occupies the
	// same number of wire bytes.
	IsFixedLength() bool

	// FixedByteLength returns the per-value wire byte length for
	// fixed-length types, or -1 for variable-length types.
	FixedByteLength() int

	// SimdCaps returns the capability value this handler was constructed
	// with.
	SimdCaps() simd.Caps

	// ReadValuesAny reads up to n values into a freshly allocated slice of
	// this handler's concrete value type, returned as any. It reports how
	// many items were read and how many bytes were consumed.
	ReadValuesAny(seq *bytestream.Sequence, n int) (values any, itemsRead int, bytesConsumed int, err error)

	// WriteValuesAny writes values, which must be a slice of this
	// handler's concrete value type, and returns the number of bytes
	// written.
	WriteValuesAny(w *bytestream.Writer, values any) (bytesWritten int, err error)
}
