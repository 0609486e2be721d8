package bytestream

// Writer is an append-only sink. Callers obtain a writable span of at
// least the requested size via GetSpan, write into it, then commit exactly
// how many bytes they used via Advance. The sink owns its buffer's
// lifetime; callers never free it directly — call Finish when done to
// return the backing buffer to its pool.
type Writer struct {
	buf          *growBuffer
	pendingStart int
	pendingLen   int
	blockSized   bool
}

// NewWriter returns a Writer backed by the default (single-handler-sized)
// pooled buffer.
func NewWriter() *Writer {
	return &Writer{buf: writerPool.get()}
}

// NewBlockWriter returns a Writer backed by the larger block-sized pooled
// buffer, for accumulating a whole RowBinary or Native payload.
func NewBlockWriter() *Writer {
	return &Writer{buf: blockPool.get(), blockSized: true}
}

// GetSpan returns a contiguous writable region of at least min bytes. The
// sink may return more; the caller must not retain the span past the next
// call to GetSpan, Advance, Bytes, Reset, or Finish.
//
// Panics if called after Finish.
func (w *Writer) GetSpan(min int) []byte {
	if w.buf == nil {
		panic("bytestream: GetSpan called after Finish")
	}

	start := w.buf.len()
	w.buf.ensure(min)
	w.pendingStart = start
	w.pendingLen = min

	return w.buf.slice(start, start+min)
}

// Advance commits exactly n bytes of the span most recently returned by
// GetSpan. n must not exceed the span's length.
//
// Panics if called after Finish, or if n would extend past the reserved
// span.
func (w *Writer) Advance(n int) {
	if w.buf == nil {
		panic("bytestream: Advance called after Finish")
	}
	if n < 0 || n > w.pendingLen {
		panic("bytestream: Advance out of range")
	}

	w.buf.setLen(w.pendingStart + n)
}

// Bytes returns the bytes committed so far. The returned slice is valid
// until the next call to GetSpan, Reset, or Finish.
//
// Panics if called after Finish.
func (w *Writer) Bytes() []byte {
	if w.buf == nil {
		panic("bytestream: Bytes called after Finish")
	}

	return w.buf.b
}

// Len returns the number of bytes committed so far.
func (w *Writer) Len() int {
	if w.buf == nil {
		panic("bytestream: Len called after Finish")
	}

	return w.buf.len()
}

// Reset clears committed bytes but keeps the underlying buffer for reuse.
func (w *Writer) Reset() {
	if w.buf == nil {
		panic("bytestream: Reset called after Finish")
	}

	w.buf.reset()
}

// Finish returns the backing buffer to its pool. The Writer must not be
// used after Finish.
func (w *Writer) Finish() {
	if w.buf == nil {
		return
	}

	if w.blockSized {
		blockPool.put(w.buf)
	} else {
		writerPool.put(w.buf)
	}
	w.buf = nil
}
