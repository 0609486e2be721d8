package bytestream

import "sync"

// Pooled buffer sizing. A plain Writer (one handler's worth of output, or
// a single column) stays small; a block writer accumulating a whole
// RowBinary or Native payload is pre-sized larger so it rarely needs to
// grow mid-block.
const (
	writerDefaultSize = 1024 * 16       // 16KiB
	writerMaxRetained = 1024 * 128      // 128KiB
	blockDefaultSize  = 1024 * 1024     // 1MiB
	blockMaxRetained  = 1024 * 1024 * 8 // 8MiB
)

// growBuffer is the append-only backing store for Writer. It grows in
// large steps to amortize reallocation across the many small Advance
// calls a column encode pass makes, rather than doubling like append's
// default strategy would.
type growBuffer struct {
	b []byte
}

func newGrowBuffer(size int) *growBuffer {
	return &growBuffer{b: make([]byte, 0, size)}
}

func (g *growBuffer) len() int { return len(g.b) }
func (g *growBuffer) cap() int { return cap(g.b) }

func (g *growBuffer) reset() { g.b = g.b[:0] }

// setLen extends or truncates the buffer to n bytes without touching
// capacity. n must not exceed cap(g.b).
func (g *growBuffer) setLen(n int) { g.b = g.b[:n] }

// slice returns g.b[start:end], panicking if end exceeds capacity.
func (g *growBuffer) slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(g.b) {
		panic("bytestream: buffer slice out of range")
	}

	return g.b[start:end]
}

// ensure grows the buffer so at least n more bytes are available past the
// current length, without disturbing already-written bytes.
//
// Growth strategy: buffers whose capacity is at most 4*writerDefaultSize
// grow by a fixed writerDefaultSize step; beyond that, growth is 25% of
// current capacity,
// so a buffer that has already grown large doesn't keep paying for many
// small steps.
func (g *growBuffer) ensure(n int) {
	if g.cap()-g.len() >= n {
		return
	}

	growBy := writerDefaultSize
	if g.cap() > 4*writerDefaultSize {
		growBy = g.cap() / 4
	}
	if growBy < n {
		growBy = n
	}

	grown := make([]byte, g.len(), g.len()+growBy)
	copy(grown, g.b)
	g.b = grown
}

type bufferPool struct {
	pool        sync.Pool
	maxRetained int
}

func newBufferPool(defaultSize, maxRetained int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return newGrowBuffer(defaultSize) },
		},
		maxRetained: maxRetained,
	}
}

func (p *bufferPool) get() *growBuffer {
	buf, _ := p.pool.Get().(*growBuffer)

	return buf
}

func (p *bufferPool) put(buf *growBuffer) {
	if buf == nil {
		return
	}
	if buf.cap() > p.maxRetained {
		// An outsized buffer stays outsized; don't let one huge block
		// payload inflate the pool's steady-state footprint.
		return
	}

	buf.reset()
	p.pool.Put(buf)
}

var (
	writerPool = newBufferPool(writerDefaultSize, writerMaxRetained)
	blockPool  = newBufferPool(blockDefaultSize, blockMaxRetained)
)
