// Package endian exposes the byte-order operations the wire codec needs as
// a small interface rather than hard-wiring binary.LittleEndian or
// binary.BigEndian into every handler. ClickHouse's native protocols put
// every fixed-width scalar on the wire in little-endian order regardless
// of host architecture, so handlers take their engine as a constructor
// argument instead of assuming the host's native order.
package endian

import "encoding/binary"

// EndianEngine is the byte-order operations a handler needs: the
// fixed-destination Get/Put calls for every integer width, plus the
// allocation-free Append variants used when building up a Writer span
// incrementally. binary.LittleEndian and binary.BigEndian already satisfy
// both halves of this interface.
//
// AppendByteOrder matters on the write path: PutUintNN requires the
// caller to size a destination slice first, while AppendUintNN grows the
// slice itself and chains without an intermediate temporary buffer.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian EndianEngine that
// backs the codec's default handlers.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns a big-endian EndianEngine, for handlers
// built against a non-native byte order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
