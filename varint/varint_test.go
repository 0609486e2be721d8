package varint

import (
	"testing"

	"github.com/bitwiser-io/chcodec/bytestream"
	"github.com/bitwiser-io/chcodec/wireerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, v uint64) (uint64, int) {
	t.Helper()

	w := bytestream.NewWriter()
	defer w.Finish()

	n := Write(w, v)
	require.Equal(t, Size(v), n)

	seq := bytestream.New(w.Bytes())
	got, err := Read(&seq)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), seq.Length(), "varint should consume exactly its own bytes")

	return got, n
}

func TestRoundTrip_Boundaries(t *testing.T) {
	values := []uint64{
		0, 1, 127, 128, 129, 16383, 16384, 16385,
		1 << 20, 1 << 32, 1 << 48,
		^uint64(0) - 1, ^uint64(0),
	}
	for _, v := range values {
		got, _ := roundTrip(t, v)
		assert.Equal(t, v, got)
	}
}

func TestWrite_FastPathLengths(t *testing.T) {
	tests := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
	}
	for _, tt := range tests {
		_, n := roundTrip(t, tt.v)
		assert.Equal(t, tt.want, n, "value %d", tt.v)
	}
}

func TestRead_MalformedVarint(t *testing.T) {
	// 10 continuation bytes, never terminating.
	data := make([]byte, 11)
	for i := range data {
		data[i] = 0xFF
	}
	seq := bytestream.New(data)

	_, err := Read(&seq)
	require.ErrorIs(t, err, wireerr.ErrMalformedVarint)
}

func TestRead_Underrun(t *testing.T) {
	// A continuation byte with nothing following.
	seq := bytestream.New([]byte{0x80})
	_, err := Read(&seq)
	require.ErrorIs(t, err, wireerr.ErrUnderrun)
}

func TestRead_EmptySequence(t *testing.T) {
	seq := bytestream.New()
	_, err := Read(&seq)
	require.ErrorIs(t, err, wireerr.ErrUnderrun)
}

func TestRead_AcrossSegmentBoundary(t *testing.T) {
	w := bytestream.NewWriter()
	defer w.Finish()
	Write(w, 1_234_567_890)
	encoded := append([]byte(nil), w.Bytes()...)

	for k := 0; k <= len(encoded); k++ {
		seq := bytestream.New(encoded[:k], encoded[k:])
		got, err := Read(&seq)
		require.NoError(t, err, "split at %d", k)
		assert.Equal(t, uint64(1_234_567_890), got)
	}
}

func TestRead_LeavesSequenceUnchangedOnFailure(t *testing.T) {
	data := []byte{0x80} // continuation byte, then nothing
	seq := bytestream.New(data)
	before := seq.Length()

	_, err := Read(&seq)
	require.Error(t, err)
	assert.Equal(t, before, seq.Length(), "failed read must not consume bytes")
}

func TestRead_StopsAtTerminatorNotConsumingTrailingBytes(t *testing.T) {
	w := bytestream.NewWriter()
	defer w.Finish()
	Write(w, 300)
	encoded := w.Bytes()
	padded := append(append([]byte(nil), encoded...), 0xAA, 0xBB)

	seq := bytestream.New(padded)
	got, err := Read(&seq)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), got)
	assert.Equal(t, uint64(2), seq.Length(), "trailing bytes after the varint must remain unconsumed")
}

func TestSize_MatchesWrittenLength(t *testing.T) {
	for _, v := range []uint64{0, 127, 128, 16383, 16384, 1 << 40, ^uint64(0)} {
		w := bytestream.NewWriter()
		n := Write(w, v)
		assert.Equal(t, Size(v), n)
		w.Finish()
	}
}
