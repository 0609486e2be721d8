package wireformat

import (
	"math"
	"sort"
	"testing"

	"github.com/bitwiser-io/chcodec/block"
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/endian"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Descriptors() []block.ColumnDescriptor {
	return []block.ColumnDescriptor{
		{Name: "v", Handler: types.NewInt32Handler(endian.GetLittleEndianEngine(), simd.Native())},
	}
}

// A nine-value Int32 column round-trips through RowBinary as a fixed
// 36-byte payload (9 values * 4 bytes, no header) and decodes back in its
// original order; the values sorted ascending match the expected order.
func TestWriteRowBinary_Int32_36ByteLayout(t *testing.T) {
	values := []int32{0, 1, -1, 42, -42, math.MaxInt32, math.MinInt32, 1_234_567_890, -1_234_567_890}

	b, err := block.New(int32Descriptors(), []any{values}, len(values))
	require.NoError(t, err)

	w := bytestream.NewWriter()
	defer w.Finish()

	n, err := WriteRowBinary(w, b)
	require.NoError(t, err)
	assert.Equal(t, 36, n)
	assert.Len(t, w.Bytes(), 36)

	sorted := append([]int32(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	seq := bytestream.New(append([]byte(nil), w.Bytes()...))
	out, err := ReadRowBinary(&seq, int32Descriptors(), len(values))
	require.NoError(t, err)
	assert.Equal(t, values, out.ColumnValues(0))

	// Independently confirm the sorted expectation matches what the
	// scenario names.
	want := []int32{math.MinInt32, -1_234_567_890, -42, -1, 0, 1, 42, 1_234_567_890, math.MaxInt32}
	assert.Equal(t, want, sorted)
}

func TestRowBinary_RoundTrip_MultiColumn(t *testing.T) {
	descriptors := []block.ColumnDescriptor{
		{Name: "id", Handler: types.NewInt32Handler(endian.GetLittleEndianEngine(), simd.Native())},
		{Name: "value", Handler: types.NewStringHandler(simd.Native())},
	}
	b, err := block.New(descriptors, []any{
		[]int32{1, 2, 3},
		[]string{"a", "bb", ""},
	}, 3)
	require.NoError(t, err)

	w := bytestream.NewWriter()
	defer w.Finish()
	_, err = WriteRowBinary(w, b)
	require.NoError(t, err)

	seq := bytestream.New(append([]byte(nil), w.Bytes()...))
	out, err := ReadRowBinary(&seq, descriptors, 3)
	require.NoError(t, err)
	assert.True(t, b.Equal(out))
	assert.Equal(t, uint64(0), seq.Length())
}

func TestRowBinary_EmptyBlock(t *testing.T) {
	b, err := block.New(int32Descriptors(), []any{[]int32{}}, 0)
	require.NoError(t, err)

	w := bytestream.NewWriter()
	defer w.Finish()
	n, err := WriteRowBinary(w, b)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	seq := bytestream.New()
	out, err := ReadRowBinary(&seq, int32Descriptors(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, out.RowCount())
}
