package types

import (
	"math"

	"github.com/bitwiser-io/chcodec/endian"
	"github.com/bitwiser-io/chcodec/simd"
)

// NewInt8Handler returns a handler for Int8: one signed byte.
func NewInt8Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[int8] {
	return newFixedWidthHandler(ProtoInt8, "Int8", 1, engine, caps,
		func(dst []byte, _ endian.EndianEngine, v int8) { dst[0] = byte(v) },
		func(src []byte, _ endian.EndianEngine) int8 { return int8(src[0]) },
	)
}

// NewUInt8Handler returns a handler for UInt8: one unsigned byte.
func NewUInt8Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[uint8] {
	return newFixedWidthHandler(ProtoUInt8, "UInt8", 1, engine, caps,
		func(dst []byte, _ endian.EndianEngine, v uint8) { dst[0] = v },
		func(src []byte, _ endian.EndianEngine) uint8 { return src[0] },
	)
}

// NewInt16Handler returns a handler for Int16.
func NewInt16Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[int16] {
	return newFixedWidthHandler(ProtoInt16, "Int16", 2, engine, caps,
		func(dst []byte, e endian.EndianEngine, v int16) { e.PutUint16(dst, uint16(v)) },
		func(src []byte, e endian.EndianEngine) int16 { return int16(e.Uint16(src)) },
	)
}

// NewUInt16Handler returns a handler for UInt16.
func NewUInt16Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[uint16] {
	return newFixedWidthHandler(ProtoUInt16, "UInt16", 2, engine, caps,
		func(dst []byte, e endian.EndianEngine, v uint16) { e.PutUint16(dst, v) },
		func(src []byte, e endian.EndianEngine) uint16 { return e.Uint16(src) },
	)
}

// NewInt32Handler returns a handler for Int32.
func NewInt32Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[int32] {
	return newFixedWidthHandler(ProtoInt32, "Int32", 4, engine, caps,
		func(dst []byte, e endian.EndianEngine, v int32) { e.PutUint32(dst, uint32(v)) },
		func(src []byte, e endian.EndianEngine) int32 { return int32(e.Uint32(src)) },
	)
}

// NewUInt32Handler returns a handler for UInt32.
func NewUInt32Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[uint32] {
	return newFixedWidthHandler(ProtoUInt32, "UInt32", 4, engine, caps,
		func(dst []byte, e endian.EndianEngine, v uint32) { e.PutUint32(dst, v) },
		func(src []byte, e endian.EndianEngine) uint32 { return e.Uint32(src) },
	)
}

// NewInt64Handler returns a handler for Int64.
func NewInt64Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[int64] {
	return newFixedWidthHandler(ProtoInt64, "Int64", 8, engine, caps,
		func(dst []byte, e endian.EndianEngine, v int64) { e.PutUint64(dst, uint64(v)) },
		func(src []byte, e endian.EndianEngine) int64 { return int64(e.Uint64(src)) },
	)
}

// NewUInt64Handler returns a handler for UInt64.
func NewUInt64Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[uint64] {
	return newFixedWidthHandler(ProtoUInt64, "UInt64", 8, engine, caps,
		func(dst []byte, e endian.EndianEngine, v uint64) { e.PutUint64(dst, v) },
		func(src []byte, e endian.EndianEngine) uint64 { return e.Uint64(src) },
	)
}

// NewFloat32Handler returns a handler for Float32. NaN payloads round-trip
// bit-exactly because the conversion is a direct bit reinterpretation, not
// a decimal parse.
func NewFloat32Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[float32] {
	return newFixedWidthHandler(ProtoFloat32, "Float32", 4, engine, caps,
		func(dst []byte, e endian.EndianEngine, v float32) { e.PutUint32(dst, math.Float32bits(v)) },
		func(src []byte, e endian.EndianEngine) float32 { return math.Float32frombits(e.Uint32(src)) },
	)
}

// NewFloat64Handler returns a handler for Float64.
func NewFloat64Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[float64] {
	return newFixedWidthHandler(ProtoFloat64, "Float64", 8, engine, caps,
		func(dst []byte, e endian.EndianEngine, v float64) { e.PutUint64(dst, math.Float64bits(v)) },
		func(src []byte, e endian.EndianEngine) float64 { return math.Float64frombits(e.Uint64(src)) },
	)
}

// NewDateHandler returns a handler for Date: 2 bytes, unsigned days since
// 1970-01-01.
func NewDateHandler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[uint16] {
	return newFixedWidthHandler(ProtoDate, "Date", 2, engine, caps,
		func(dst []byte, e endian.EndianEngine, v uint16) { e.PutUint16(dst, v) },
		func(src []byte, e endian.EndianEngine) uint16 { return e.Uint16(src) },
	)
}

// NewDate32Handler returns a handler for Date32: 4 bytes, signed days since
// 1900-01-01.
func NewDate32Handler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[int32] {
	return newFixedWidthHandler(ProtoDate32, "Date32", 4, engine, caps,
		func(dst []byte, e endian.EndianEngine, v int32) { e.PutUint32(dst, uint32(v)) },
		func(src []byte, e endian.EndianEngine) int32 { return int32(e.Uint32(src)) },
	)
}

// NewDateTimeHandler returns a handler for DateTime: 4 bytes, unsigned
// seconds since the Unix epoch.
func NewDateTimeHandler(engine endian.EndianEngine, caps simd.Caps) *FixedWidthHandler[uint32] {
	return newFixedWidthHandler(ProtoDateTime, "DateTime", 4, engine, caps,
		func(dst []byte, e endian.EndianEngine, v uint32) { e.PutUint32(dst, v) },
		func(src []byte, e endian.EndianEngine) uint32 { return e.Uint32(src) },
	)
}
