// Package chcodec provides a SIMD-accelerated binary wire-format codec for
// a ClickHouse-like columnar database server: typed scalar value handlers,
// a column-block model, and the two block framings the server speaks
// (RowBinary and Native).
//
// # Basic usage
//
// Building a block and serializing it under RowBinary:
//
//	descriptors := []block.ColumnDescriptor{
//	    {Name: "id", Handler: types.NewInt32Handler(endian.GetLittleEndianEngine(), simd.Native())},
//	    {Name: "value", Handler: types.NewStringHandler(simd.Native())},
//	}
//	b, err := block.New(descriptors, []any{
//	    []int32{1, 2, 3},
//	    []string{"a", "bb", ""},
//	}, 3)
//
//	w := bytestream.NewWriter()
//	defer w.Finish()
//	n, err := chcodec.EncodeRowBinary(w, b)
//
// Decoding the same bytes back, given the row count and column
// descriptors the caller already knows from schema metadata:
//
//	seq := bytestream.New(w.Bytes())
//	decoded, err := chcodec.DecodeRowBinary(&seq, descriptors, 3)
//
// Native framing carries its own header (column count, row count, and
// each column's name and declared type name), so decoding only needs a
// type registry to resolve handlers by name, not caller-supplied
// descriptors:
//
//	n, err := chcodec.EncodeNative(w, b)
//	...
//	decoded, err := chcodec.DecodeNative(&seq, registry.Default)
//
// # Package structure
//
// This file provides convenience wrappers around the lower-level
// packages (types, registry, block, wireformat, transport). For advanced
// usage — custom SIMD tier caps, parametric type construction, scripted
// transport fixtures for tests — use those packages directly.
package chcodec

import (
	"github.com/bitwiser-io/chcodec/block"
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/registry"
	"github.com/bitwiser-io/chcodec/wireformat"
)

// EncodeRowBinary serializes b under the row-oriented framing (no
// header). See wireformat.WriteRowBinary.
func EncodeRowBinary(w *bytestream.Writer, b *block.Block) (int, error) {
	return wireformat.WriteRowBinary(w, b)
}

// DecodeRowBinary decodes rowCount rows of descriptors' columns from the
// row-oriented framing. RowBinary carries no header, so the caller must
// already know the row count and column descriptors (from prior schema
// negotiation). See wireformat.ReadRowBinary.
func DecodeRowBinary(seq *bytestream.Sequence, descriptors []block.ColumnDescriptor, rowCount int) (*block.Block, error) {
	return wireformat.ReadRowBinary(seq, descriptors, rowCount)
}

// EncodeNative serializes b under the column-oriented framing, including
// its varint-prefixed header and per-column name/type-name. See
// wireformat.WriteNative.
func EncodeNative(w *bytestream.Writer, b *block.Block) (int, error) {
	return wireformat.WriteNative(w, b)
}

// DecodeNative decodes one Native-framed block, resolving each column's
// handler from its declared type name via reg (typically
// registry.Default). See wireformat.ReadNative.
func DecodeNative(seq *bytestream.Sequence, reg *registry.Registry) (*block.Block, error) {
	return wireformat.ReadNative(seq, reg)
}

// NewNativeBlockStream returns an iterator over successive Native-framed
// blocks in seq, stopping at the end-of-stream marker or an exhausted
// sequence. See wireformat.NativeBlockStream.
func NewNativeBlockStream(seq *bytestream.Sequence, reg *registry.Registry) *wireformat.NativeBlockStream {
	return wireformat.NewNativeBlockStream(seq, reg)
}

// WriteNativeBlockStream writes blocks in order under the Native framing,
// followed by the end-of-stream marker. See wireformat.WriteNativeBlockStream.
func WriteNativeBlockStream(w *bytestream.Writer, blocks []*block.Block) (int, error) {
	return wireformat.WriteNativeBlockStream(w, blocks)
}

// Registry returns the process-wide default type registry (immutable
// after initialization), resolving protocol codes and type names to
// handler instances. See registry.Default.
func Registry() *registry.Registry {
	return registry.Default
}
