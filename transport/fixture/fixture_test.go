package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/bitwiser-io/chcodec/block"
	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/endian"
	"github.com/bitwiser-io/chcodec/registry"
	"github.com/bitwiser-io/chcodec/simd"
	"github.com/bitwiser-io/chcodec/transport"
	"github.com/bitwiser-io/chcodec/types"
	"github.com/bitwiser-io/chcodec/wireformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ transport.Transport = (*Transport)(nil)

func TestTransport_ExecuteNonQuery_RecordsAndReturnsScriptedError(t *testing.T) {
	wantErr := errors.New("boom")
	tr := New(WithNonQueryError(wantErr))

	err := tr.ExecuteNonQuery(context.Background(), "CREATE TABLE t (id Int32) ENGINE=Memory")
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, []string{"CREATE TABLE t (id Int32) ENGINE=Memory"}, tr.NonQueries())
}

func TestTransport_SendData_CopiesBufferAndRecords(t *testing.T) {
	tr := New()
	buf := []byte{1, 2, 3}

	require.NoError(t, tr.SendData(context.Background(), "INSERT INTO t FORMAT RowBinary", buf))
	buf[0] = 0xFF // mutate caller's buffer after the call

	records := tr.SentRecords()
	require.Len(t, records, 1)
	assert.Equal(t, []byte{1, 2, 3}, records[0].Data)
}

func TestTransport_QueryData_UnscriptedSQLIsAnError(t *testing.T) {
	tr := New()
	_, err := tr.QueryData(context.Background(), "SELECT 1")
	require.Error(t, err)
}

// Exercises the scripted send/query round trip this fixture exists for:
// encode a block, hand it to SendData, script the same bytes back out of
// QueryData, and decode.
func TestTransport_SendThenQuery_RoundTripsAnEncodedBlock(t *testing.T) {
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
	_, err = wireformat.WriteNative(w, b)
	require.NoError(t, err)
	payload := append([]byte(nil), w.Bytes()...)

	const insertSQL = "INSERT INTO t FORMAT Native"
	const selectSQL = "SELECT id, value FROM t FORMAT Native"

	tr := New(WithQueryResponse(selectSQL, payload))

	require.NoError(t, tr.SendData(context.Background(), insertSQL, payload))
	got, err := tr.QueryData(context.Background(), selectSQL)
	require.NoError(t, err)

	seq := bytestream.New(got)
	decoded, err := wireformat.ReadNative(&seq, registry.Default)
	require.NoError(t, err)
	assert.True(t, b.Equal(decoded))
}
