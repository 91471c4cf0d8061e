package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_AppendAndReset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.Append([]byte("frame"))
	bb.Append([]byte(" payload"))
	assert.Equal(t, []byte("frame payload"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap(), "reset keeps memory")
}

func TestByteBuffer_Resize(t *testing.T) {
	t.Run("within capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Resize(24)
		assert.Equal(t, 24, bb.Len())
		assert.Equal(t, 64, bb.Cap(), "should not reallocate")
	})

	t.Run("shrink", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.Append([]byte("abcdefgh"))
		bb.Resize(3)
		assert.Equal(t, []byte("abc"), bb.Bytes())
		bb.Resize(-1)
		assert.Equal(t, 0, bb.Len())
	})

	t.Run("grow keeps data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.Append([]byte("abcd"))
		bb.Resize(100)
		assert.Equal(t, 100, bb.Len())
		assert.Equal(t, []byte("abcd"), bb.Bytes()[:4])
	})
}

func TestByteBuffer_Growth(t *testing.T) {
	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(FrameBufferDefaultSize)
		bb.Resize(FrameBufferDefaultSize)
		bb.Append(make([]byte, 1024))
		assert.Equal(t, 2*FrameBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * FrameBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.Resize(size)
		bb.Append([]byte{1})
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("never less than required", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Resize(10 * FrameBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 10*FrameBufferDefaultSize)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.Append([]byte("EF20 frame"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
	assert.Equal(t, "EF20 frame", buf.String())

	n, err = bb.WriteTo(failingWriter{})
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.Append([]byte("reused"))
	p.Put(bb)
	p.Put(nil)

	again := p.Get()
	assert.Equal(t, 0, again.Len(), "pooled buffers come back empty")
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Resize(1024)
	p.Put(bb) // dropped

	for range 4 {
		assert.LessOrEqual(t, p.Get().Cap(), 32)
	}
}

func TestDefaultPools(t *testing.T) {
	ev := GetEventBuffer()
	assert.GreaterOrEqual(t, ev.Cap(), EventBufferDefaultSize)
	PutEventBuffer(ev)

	fr := GetFrameBuffer()
	assert.GreaterOrEqual(t, fr.Cap(), FrameBufferDefaultSize)
	PutFrameBuffer(fr)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bb := GetFrameBuffer()
			defer PutFrameBuffer(bb)
			bb.Append(bytes.Repeat([]byte{byte(i)}, 128))
			assert.Equal(t, 128, bb.Len())
		}(i)
	}
	wg.Wait()
}

func BenchmarkPool_GetAppendPut(b *testing.B) {
	data := make([]byte, 4096)
	for b.Loop() {
		bb := GetFrameBuffer()
		bb.Append(data)
		PutFrameBuffer(bb)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}
