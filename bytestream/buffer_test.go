package bytestream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowBuffer_EnsureWithinCapacityIsNoop(t *testing.T) {
	g := newGrowBuffer(16)
	before := g.cap()

	g.ensure(8)

	assert.Equal(t, before, g.cap())
}

func TestGrowBuffer_EnsureBeyondCapacityGrows(t *testing.T) {
	g := newGrowBuffer(4)
	g.setLen(4)

	g.ensure(100)

	assert.GreaterOrEqual(t, g.cap(), 104)
	assert.Equal(t, 4, g.len(), "existing bytes are preserved across growth")
}

func TestGrowBuffer_LargeBufferGrowsByFraction(t *testing.T) {
	g := newGrowBuffer(8 * writerDefaultSize)
	g.setLen(8 * writerDefaultSize)
	before := g.cap()

	g.ensure(1)

	assert.Greater(t, g.cap(), before)
	assert.Less(t, g.cap()-before, before, "fractional growth step should be smaller than the buffer itself")
}

func TestBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := newBufferPool(8, 16)

	big := newGrowBuffer(8)
	big.ensure(100)
	require.Greater(t, big.cap(), 16)

	p.put(big)

	got := p.get()
	require.NotNil(t, got)
	assert.LessOrEqual(t, got.cap(), 16, "oversized buffer should not have been retained")
}

func TestBufferPool_RetainsAndResetsSmallBuffers(t *testing.T) {
	p := newBufferPool(8, 128)

	g := p.get()
	g.setLen(4)
	p.put(g)

	assert.Equal(t, 0, g.len(), "put should reset the buffer before pooling")
}
