// Package block implements the column-wise container a block-level
// framing serializes: an ordered list of (name, handler) descriptors plus
// one parallel typed value list per column, plus a row count. A Block is
// constructed once from column data and is immutable for the duration of a
// serialize pass.
package block

import (
	"reflect"

	"github.com/bitwiser-io/chcodec/types"
	"github.com/bitwiser-io/chcodec/wireerr"
)

// ColumnDescriptor names one column and its handler.
type ColumnDescriptor struct {
	Name    string
	Handler types.Handler
}

// Block is an immutable column-wise container.
type Block struct {
	descriptors []ColumnDescriptor
	columns     []any // columns[i] is a slice of descriptors[i].Handler's concrete value type
	rowCount    int
}

// New constructs a Block from parallel descriptor and column-value lists
// and a row count. It validates that every column's value list has exactly
// rowCount elements and that column names are unique.
func New(descriptors []ColumnDescriptor, columns []any, rowCount int) (*Block, error) {
	if len(descriptors) != len(columns) {
		return nil, wireerr.SchemaMismatch("descriptor count and column count disagree")
	}

	seen := make(map[string]struct{}, len(descriptors))
	for i, d := range descriptors {
		if _, dup := seen[d.Name]; dup {
			return nil, wireerr.SchemaMismatch("duplicate column name " + d.Name)
		}
		seen[d.Name] = struct{}{}

		n := reflect.ValueOf(columns[i]).Len()
		if n != rowCount {
			return nil, wireerr.SchemaMismatch("column " + d.Name + " has wrong row count")
		}
	}

	return &Block{
		descriptors: append([]ColumnDescriptor(nil), descriptors...),
		columns:     append([]any(nil), columns...),
		rowCount:    rowCount,
	}, nil
}

// ColumnCount returns the number of columns.
func (b *Block) ColumnCount() int { return len(b.descriptors) }

// RowCount returns the number of rows.
func (b *Block) RowCount() int { return b.rowCount }

// Descriptor returns the i'th column's descriptor.
func (b *Block) Descriptor(i int) ColumnDescriptor { return b.descriptors[i] }

// ColumnValues returns the i'th column's value list, as the concrete slice
// type the column's handler produces (e.g. []int32, []string).
func (b *Block) ColumnValues(i int) any { return b.columns[i] }

// Equal reports whether b and other have the same column descriptors (by
// name and type name, in order), the same row count, and column-wise equal
// values. Used by round-trip tests.
func (b *Block) Equal(other *Block) bool {
	if b.rowCount != other.rowCount || len(b.descriptors) != len(other.descriptors) {
		return false
	}
	for i := range b.descriptors {
		if b.descriptors[i].Name != other.descriptors[i].Name {
			return false
		}
		if b.descriptors[i].Handler.TypeName() != other.descriptors[i].Handler.TypeName() {
			return false
		}
		if !reflect.DeepEqual(b.columns[i], other.columns[i]) {
			return false
		}
	}

	return true
}
