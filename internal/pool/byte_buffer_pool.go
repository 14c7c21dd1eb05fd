package pool

import (
	"strconv"
	"sync"
)

const (
	RenderBufferDefaultSize  = 1024 * 16       // 16KiB
	RenderBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a growable byte slice used to render JSON documents.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// String returns a copy of the buffer contents as a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by RenderBufferDefaultSize, larger ones by 25% of their
// current capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if bb.Cap()-bb.Len() >= requiredBytes {
		return
	}

	growBy := RenderBufferDefaultSize
	if bb.Cap() > 4*RenderBufferDefaultSize {
		growBy = bb.Cap() / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// WriteString appends s to the buffer.
func (bb *ByteBuffer) WriteString(s string) {
	bb.B = append(bb.B, s...)
}

// WriteUint appends the decimal form of v to the buffer.
func (bb *ByteBuffer) WriteUint(v uint64) {
	bb.B = strconv.AppendUint(bb.B, v, 10)
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put so a single
// very large document does not pin memory for the rest of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && bb.Cap() > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var renderDefaultPool = NewByteBufferPool(RenderBufferDefaultSize, RenderBufferMaxThreshold)

// GetRenderBuffer retrieves a ByteBuffer from the default render pool.
func GetRenderBuffer() *ByteBuffer {
	return renderDefaultPool.Get()
}

// PutRenderBuffer returns a ByteBuffer to the default render pool.
func PutRenderBuffer(bb *ByteBuffer) {
	renderDefaultPool.Put(bb)
}
