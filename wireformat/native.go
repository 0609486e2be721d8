package wireformat

import (
	"github.com/bitwiser-io/chcodec/block"
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/registry"
	"github.com/bitwiser-io/chcodec/varint"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// WriteNative emits b under the column-oriented framing:
// varint(column_count); varint(row_count); then per column
// varint(name_len) name_bytes varint(type_name_len) type_name_bytes
// handler.write_values(column_values). Returns the number of bytes
// written.
func WriteNative(w *bytestream.Writer, b *block.Block) (int, error) {
	total := varint.Write(w, uint64(b.ColumnCount()))
	total += varint.Write(w, uint64(b.RowCount()))

	for c := 0; c < b.ColumnCount(); c++ {
		d := b.Descriptor(c)
		total += writeLengthPrefixed(w, d.Name)
		total += writeLengthPrefixed(w, d.Handler.TypeName())

		n, err := d.Handler.WriteValuesAny(w, b.ColumnValues(c))
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// ReadNative decodes one Native-framed block from the front of seq,
// resolving each column's handler from its declared type name via reg,
// and rebinds *seq to the unconsumed suffix.
func ReadNative(seq *bytestream.Sequence, reg *registry.Registry) (*block.Block, error) {
	colCount, rowCount, err := readNativeHeader(seq)
	if err != nil {
		return nil, err
	}

	return readNativeColumns(seq, reg, colCount, rowCount)
}

func readNativeHeader(seq *bytestream.Sequence) (colCount, rowCount uint64, err error) {
	colCount, err = varint.Read(seq)
	if err != nil {
		return 0, 0, err
	}

	rowCount, err = varint.Read(seq)
	if err != nil {
		return 0, 0, err
	}

	return colCount, rowCount, nil
}

func readNativeColumns(seq *bytestream.Sequence, reg *registry.Registry, colCount, rowCount uint64) (*block.Block, error) {
	descriptors := make([]block.ColumnDescriptor, colCount)
	columns := make([]any, colCount)

	for c := range descriptors {
		name, err := readLengthPrefixed(seq)
		if err != nil {
			return nil, err
		}

		typeName, err := readLengthPrefixed(seq)
		if err != nil {
			return nil, err
		}

		handler, err := reg.Resolve(typeName)
		if err != nil {
			return nil, err
		}

		values, itemsRead, _, err := handler.ReadValuesAny(seq, int(rowCount))
		if err != nil {
			return nil, err
		}
		if itemsRead != int(rowCount) {
			return nil, wireerr.UnderrunAt(typeName, itemsRead, int(rowCount), itemsRead)
		}

		descriptors[c] = block.ColumnDescriptor{Name: name, Handler: handler}
		columns[c] = values
	}

	return block.New(descriptors, columns, int(rowCount))
}

func writeLengthPrefixed(w *bytestream.Writer, s string) int {
	n := varint.Write(w, uint64(len(s)))
	if len(s) == 0 {
		return n
	}

	span := w.GetSpan(len(s))
	copy(span, s)
	w.Advance(len(s))

	return n + len(s)
}

func readLengthPrefixed(seq *bytestream.Sequence) (string, error) {
	n, err := varint.Read(seq)
	if err != nil {
		return "", err
	}
	if seq.Length() < n {
		return "", wireerr.Underrun("Native.name", int(n), int(seq.Length()))
	}
	if n == 0 {
		return "", nil
	}

	buf := make([]byte, n)
	if err := seq.CopyTo(buf); err != nil {
		return "", err
	}
	rest, err := seq.Advance(int(n))
	if err != nil {
		return "", err
	}
	*seq = rest

	return string(buf), nil
}
