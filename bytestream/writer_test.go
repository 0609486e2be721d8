package bytestream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_GetSpanAdvance_CommitsExactBytes(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	span := w.GetSpan(8)
	require.Len(t, span, 8)
	copy(span, []byte{1, 2, 3})
	w.Advance(3)

	assert.Equal(t, []byte{1, 2, 3}, w.Bytes())
	assert.Equal(t, 3, w.Len())
}

func TestWriter_MultipleSpans(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	span1 := w.GetSpan(4)
	copy(span1, []byte{0xAA, 0xBB})
	w.Advance(2)

	span2 := w.GetSpan(4)
	copy(span2, []byte{0xCC, 0xDD, 0xEE})
	w.Advance(3)

	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}, w.Bytes())
}

func TestWriter_ReserveMoreThanUsed(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	// Simulates the varint fast path: reserve the max width, use less.
	span := w.GetSpan(10)
	span[0] = 0x7F
	w.Advance(1)

	assert.Equal(t, []byte{0x7F}, w.Bytes())
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	span := w.GetSpan(4)
	copy(span, []byte{1, 2, 3, 4})
	w.Advance(4)
	require.Equal(t, 4, w.Len())

	w.Reset()
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, w.Bytes())
}

func TestWriter_PanicsAfterFinish(t *testing.T) {
	w := NewWriter()
	w.Finish()

	assert.Panics(t, func() { w.GetSpan(1) })
	assert.Panics(t, func() { w.Bytes() })
	assert.Panics(t, func() { w.Len() })
}

func TestWriter_AdvancePastSpanPanics(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	w.GetSpan(4)
	assert.Panics(t, func() { w.Advance(100) })
}

func TestNewBlockWriter_UsesLargerPool(t *testing.T) {
	w := NewBlockWriter()
	defer w.Finish()

	span := w.GetSpan(16)
	require.Len(t, span, 16)
}

func TestWriter_GrowsAcrossManySmallWrites(t *testing.T) {
	w := NewWriter()
	defer w.Finish()

	var want []byte
	for i := 0; i < 10_000; i++ {
		b := byte(i)
		span := w.GetSpan(1)
		span[0] = b
		w.Advance(1)
		want = append(want, b)
	}

	assert.Equal(t, want, w.Bytes())
}
