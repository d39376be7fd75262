package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 64, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.MustWrite([]byte("hello"))

	b := bb.Bytes()

	assert.Equal(t, []byte("hello"), b)
	assert.True(t, &bb.B[0] == &b[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_MustWriteByte(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.MustWriteByte(0xbf)
	bb.MustWriteByte(0xff)
	bb.MustWriteByte(0x00)

	assert.Equal(t, []byte{0xbf, 0xff, 0x00}, bb.Bytes())
}

func TestByteBuffer_Truncate(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	bb.Truncate(3)
	assert.Equal(t, []byte("pay"), bb.Bytes())

	bb.Truncate(0)
	assert.Equal(t, 0, bb.Len())

	require.Panics(t, func() { bb.Truncate(1) })
	require.Panics(t, func() { bb.Truncate(-1) })
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = bb.Write([]byte(" more"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "test more", string(bb.Bytes()))
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.MustWrite([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.MustWrite([]byte("test"))

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(0), n)
}

type errorWriter struct {
	err error
}

func (w *errorWriter) Write([]byte) (int, error) {
	return 0, w.err
}

// =============================================================================
// ByteBuffer Grow Tests
// =============================================================================

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		bb.MustWrite(make([]byte, 10))
		bb.Grow(1)
		assert.Equal(t, 10+PayloadBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * PayloadBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.MustWrite(make([]byte, size))
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("grows at least required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PayloadBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, bb.Cap(), PayloadBufferDefaultSize*3)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.MustWrite([]byte("abcd"))
		bb.Grow(100)
		assert.Equal(t, "abcd", string(bb.Bytes()))
	})
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()
	defer PutPayloadBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), PayloadBufferDefaultSize)
}

func TestGetBatchBuffer(t *testing.T) {
	bb := GetBatchBuffer()
	defer PutBatchBuffer(bb)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), BatchBufferDefaultSize)
}

func TestPutPayloadBuffer_NilBuffer(t *testing.T) {
	require.NotPanics(t, func() { PutPayloadBuffer(nil) })
	require.NotPanics(t, func() { PutBatchBuffer(nil) })
}

func TestPool_ResetsClearsData(t *testing.T) {
	for i := 0; i < 10; i++ {
		bb := GetPayloadBuffer()
		assert.Equal(t, 0, bb.Len(), "pooled buffer should be reset")
		bb.MustWrite([]byte("dirty"))
		PutPayloadBuffer(bb)
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				bb := GetPayloadBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutPayloadBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(64, 256)

	bb := p.Get()
	bb.Grow(4096)
	assert.Greater(t, bb.Cap(), 256)
	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 256, "oversized buffer should not be reused")
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	bb := p.Get()
	bb.Grow(1 << 16)
	require.NotPanics(t, func() { p.Put(bb) })
	assert.NotNil(t, p.Get())
}
