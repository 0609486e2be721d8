package wireformat

import (
	"reflect"

	"github.com/bitwiser-io/chcodec/block"
	"github.com/bitwiser-io/chcodec/bytestream"
)

// WriteRowBinary emits b under the row-oriented framing: no header, just
// the row-major concatenation of handler_c.write_value(writer,
// column[c][r]) for r in [0, row_count) and c in [0, column_count).
// Returns the number of bytes written.
func WriteRowBinary(w *bytestream.Writer, b *block.Block) (int, error) {
	total := 0

	for r := 0; r < b.RowCount(); r++ {
		for c := 0; c < b.ColumnCount(); c++ {
			values := reflect.ValueOf(b.ColumnValues(c))
			row := values.Slice(r, r+1).Interface()

			n, err := b.Descriptor(c).Handler.WriteValuesAny(w, row)
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	return total, nil
}

// ReadRowBinary decodes rowCount rows of descriptors' columns from the
// row-oriented framing. The caller supplies the expected row count and
// column descriptors; RowBinary carries no header to recover them from.
func ReadRowBinary(seq *bytestream.Sequence, descriptors []block.ColumnDescriptor, rowCount int) (*block.Block, error) {
	columns := make([]reflect.Value, len(descriptors))
	initialized := make([]bool, len(descriptors))

	for r := 0; r < rowCount; r++ {
		for c, d := range descriptors {
			value, _, _, err := d.Handler.ReadValuesAny(seq, 1)
			if err != nil {
				return nil, err
			}

			rv := reflect.ValueOf(value)
			if !initialized[c] {
				columns[c] = reflect.MakeSlice(rv.Type(), 0, rowCount)
				initialized[c] = true
			}
			columns[c] = reflect.AppendSlice(columns[c], rv)
		}
	}

	out := make([]any, len(descriptors))
	for c, cv := range columns {
		if !initialized[c] {
			// rowCount == 0: no read ever ran, so fall back to a handler
			// probe to learn the concrete element type.
			empty, _, _, err := descriptors[c].Handler.ReadValuesAny(seq, 0)
			if err != nil {
				return nil, err
			}
			out[c] = empty

			continue
		}
		out[c] = cv.Interface()
	}

	return block.New(descriptors, out, rowCount)
}
