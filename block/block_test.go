package block

import (
	"testing"

	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/types"
	"github.com/bitwiser-io/chcodec/wireerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoColumnDescriptors() []ColumnDescriptor {
	return []ColumnDescriptor{
		{Name: "id", Handler: types.NewInt32Handler(leEngine(), simd.Native())},
		{Name: "value", Handler: types.NewStringHandler(simd.Native())},
	}
}

func TestNew_ValidBlock(t *testing.T) {
	b, err := New(twoColumnDescriptors(), []any{
		[]int32{1, 2, 3},
		[]string{"a", "bb", ""},
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, b.ColumnCount())
	assert.Equal(t, 3, b.RowCount())
	assert.Equal(t, "id", b.Descriptor(0).Name)
	assert.Equal(t, []int32{1, 2, 3}, b.ColumnValues(0))
}

func TestNew_RowCountMismatch(t *testing.T) {
	_, err := New(twoColumnDescriptors(), []any{
		[]int32{1, 2, 3},
		[]string{"a", "bb"},
	}, 3)
	require.ErrorIs(t, err, wireerr.ErrSchemaMismatch)
}

func TestNew_DuplicateColumnNames(t *testing.T) {
	descs := []ColumnDescriptor{
		{Name: "id", Handler: types.NewInt32Handler(leEngine(), simd.Native())},
		{Name: "id", Handler: types.NewInt32Handler(leEngine(), simd.Native())},
	}
	_, err := New(descs, []any{[]int32{1}, []int32{2}}, 1)
	require.ErrorIs(t, err, wireerr.ErrSchemaMismatch)
}

func TestNew_DescriptorColumnCountMismatch(t *testing.T) {
	_, err := New(twoColumnDescriptors(), []any{[]int32{1}}, 1)
	require.ErrorIs(t, err, wireerr.ErrSchemaMismatch)
}

func TestEqual_SameContentsTrue(t *testing.T) {
	a, err := New(twoColumnDescriptors(), []any{[]int32{1, 2}, []string{"x", "y"}}, 2)
	require.NoError(t, err)
	b, err := New(twoColumnDescriptors(), []any{[]int32{1, 2}, []string{"x", "y"}}, 2)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestEqual_DifferentValuesFalse(t *testing.T) {
	a, err := New(twoColumnDescriptors(), []any{[]int32{1, 2}, []string{"x", "y"}}, 2)
	require.NoError(t, err)
	b, err := New(twoColumnDescriptors(), []any{[]int32{1, 9}, []string{"x", "y"}}, 2)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
}
