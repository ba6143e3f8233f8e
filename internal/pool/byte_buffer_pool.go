package pool

import (
	"io"
	"sync"
)

// Default sizes for the pooled buffers.
const (
	SubelementBufferDefaultSize  = 256      // one framed subelement always fits
	SubelementBufferMaxThreshold = 1024 * 4 // 4KiB
	ReportBufferDefaultSize      = 1024     // 1KiB
	ReportBufferMaxThreshold     = 1024 * 64
)

// ByteBuffer is a growable byte slice with pooling-friendly reset semantics.
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

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
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

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// Buffers grow by at least SubelementBufferDefaultSize, or by 25% of the current
// capacity once they exceed a report buffer.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := SubelementBufferDefaultSize
	if cap(bb.B) > ReportBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity grew past maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
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

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	subelementPool = NewByteBufferPool(SubelementBufferDefaultSize, SubelementBufferMaxThreshold)
	reportPool     = NewByteBufferPool(ReportBufferDefaultSize, ReportBufferMaxThreshold)
)

// GetSubelementBuffer retrieves a buffer sized for a single subelement payload.
func GetSubelementBuffer() *ByteBuffer {
	return subelementPool.Get()
}

// PutSubelementBuffer returns a buffer to the subelement pool.
func PutSubelementBuffer(bb *ByteBuffer) {
	subelementPool.Put(bb)
}

// GetReportBuffer retrieves a buffer sized for a joined report or archive.
func GetReportBuffer() *ByteBuffer {
	return reportPool.Get()
}

// PutReportBuffer returns a buffer to the report pool.
func PutReportBuffer(bb *ByteBuffer) {
	reportPool.Put(bb)
}
