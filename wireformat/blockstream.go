package wireformat

import (
	"io"

	"github.com/bitwiser-io/chcodec/block"
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/registry"
	"github.com/bitwiser-io/chcodec/varint"
)

// NativeBlockStream iterates successive Native-framed blocks out of one
// Sequence, stopping at a zero-column block (the server's Native
// end-of-stream marker) or when the sequence runs dry. This is additive
// sugar over the single-block Native codec — it does not change the
// single-block wire contract.
type NativeBlockStream struct {
	seq *bytestream.Sequence
	reg *registry.Registry
	end bool
}

// NewNativeBlockStream returns a stream reading from seq, resolving
// column handlers through reg. seq is consumed in place as Next is
// called.
func NewNativeBlockStream(seq *bytestream.Sequence, reg *registry.Registry) *NativeBlockStream {
	return &NativeBlockStream{seq: seq, reg: reg}
}

// Next decodes the next block, or returns io.EOF once the end-of-stream
// marker or an exhausted sequence is reached.
func (s *NativeBlockStream) Next() (*block.Block, error) {
	if s.end || s.seq.Length() == 0 {
		s.end = true

		return nil, io.EOF
	}

	colCount, rowCount, err := readNativeHeader(s.seq)
	if err != nil {
		return nil, err
	}

	if colCount == 0 {
		s.end = true

		return nil, io.EOF
	}

	return readNativeColumns(s.seq, s.reg, colCount, rowCount)
}

// WriteNativeBlockStream writes each of blocks under the Native framing in
// order, followed by the zero-column, zero-row end-of-stream marker.
func WriteNativeBlockStream(w *bytestream.Writer, blocks []*block.Block) (int, error) {
	total := 0
	for _, b := range blocks {
		n, err := WriteNative(w, b)
		total += n
		if err != nil {
			return total, err
		}
	}

	total += varint.Write(w, 0)
	total += varint.Write(w, 0)

	return total, nil
}
