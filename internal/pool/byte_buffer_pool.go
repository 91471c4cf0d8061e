// Package pool provides reusable byte buffers for building flat events and
// frames.
package pool

import (
	"io"
	"sync"
)

// Default and retention limits of the shared pools.
const (
	EventBufferDefaultSize  = 1024 * 64       // 64KiB, a few dozen tracks
	EventBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
	FrameBufferDefaultSize  = 1024 * 16       // 16KiB
	FrameBufferMaxThreshold = 1024 * 1024 * 2 // 2MiB
)

// ByteBuffer is a reusable byte slice.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with defaultSize capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

func (bb *ByteBuffer) Bytes() []byte { return bb.B }
func (bb *ByteBuffer) Len() int      { return len(bb.B) }
func (bb *ByteBuffer) Cap() int      { return cap(bb.B) }

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Append appends data, growing the buffer if necessary.
func (bb *ByteBuffer) Append(data []byte) {
	bb.reserve(len(data))
	bb.B = append(bb.B, data...)
}

// Resize sets the length to n, growing the buffer if necessary. Bytes past
// the previous length are not zeroed when existing memory is reused.
func (bb *ByteBuffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n > cap(bb.B) {
		bb.reserve(n - len(bb.B))
	}
	bb.B = bb.B[:n]
}

// reserve makes room for n more bytes. Small buffers grow by
// FrameBufferDefaultSize, larger ones by a quarter of their capacity, and
// never by less than n.
func (bb *ByteBuffer) reserve(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := FrameBufferDefaultSize
	if cap(bb.B) > 4*FrameBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	growBy = max(growBy, n)

	buf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(buf, bb.B)
	bb.B = buf
}

// WriteTo writes the buffer contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers. Buffers grown beyond
// maxThreshold are dropped on Put.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with defaultSize capacity.
// A maxThreshold of 0 retains every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. Nil and oversized buffers are dropped.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil || (bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold) {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	eventPool = NewByteBufferPool(EventBufferDefaultSize, EventBufferMaxThreshold)
	framePool = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
)

// GetEventBuffer retrieves a buffer for building a flat event.
func GetEventBuffer() *ByteBuffer { return eventPool.Get() }

// PutEventBuffer returns a buffer obtained from GetEventBuffer.
func PutEventBuffer(bb *ByteBuffer) { eventPool.Put(bb) }

// GetFrameBuffer retrieves a buffer for encoding a frame.
func GetFrameBuffer() *ByteBuffer { return framePool.Get() }

// PutFrameBuffer returns a buffer obtained from GetFrameBuffer.
func PutFrameBuffer(bb *ByteBuffer) { framePool.Put(bb) }
