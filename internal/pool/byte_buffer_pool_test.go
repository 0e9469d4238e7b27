package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.MustWrite([]byte{0x01})
	bb.MustWrite([]byte{0x02, 0x03})
	n, err := bb.Write([]byte{0x04})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bb.Bytes())
	assert.True(t, &bb.B[0] == &bb.Bytes()[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncodeBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len(), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("abcdefgh"))
		bb.Grow(1)
		assert.Equal(t, 8+EncodeBufferDefaultSize, bb.Cap())
		assert.Equal(t, []byte("abcdefgh"), bb.Bytes(), "Grow must preserve content")
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * EncodeBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(EncodeBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, bb.Cap(), EncodeBufferDefaultSize*3)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())

		bb.MustWrite([]byte("x"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len(), "pooled buffers must be reset")
	})

	t.Run("put nil", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		bb := NewByteBuffer(128)
		bb.MustWrite([]byte("big"))
		p.Put(bb)
		assert.Equal(t, 3, bb.Len(), "dropped buffer is left untouched")
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		tests := []struct {
			name  string
			size  int
			reset bool
		}{
			{"below", 32, true},
			{"at threshold", 64, true},
			{"above", 65, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				bb := NewByteBuffer(tt.size)
				bb.MustWrite([]byte("x"))
				p.Put(bb)
				assert.Equal(t, tt.reset, bb.Len() == 0)
			})
		}
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				bb := GetEncodeBuffer()
				bb.MustWrite([]byte{byte(i)})
				assert.Equal(t, 1, bb.Len())
				PutEncodeBuffer(bb)
			}(i)
		}
		wg.Wait()
	})
}
