package handler

import (
	"bytes"
	"sync"
)

// maxPooledBuffer keeps one oversized response (a long price history) from
// pinning its buffer in the pool.
const maxPooledBuffer = 64 << 10

var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
