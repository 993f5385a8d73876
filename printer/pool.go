package printer

import (
	"bytes"
	"sync"
)

// Buffers that grew past this are dropped instead of pooled.
const maxBufferCap = 64 * 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxBufferCap {
		return
	}
	bufferPool.Put(buf)
}

func newPrinter() *printer {
	return &printer{buf: getBuffer()}
}

// release returns the printer's buffer to the pool. The printer must not be
// used afterwards.
func (p *printer) release() {
	putBuffer(p.buf)
	p.buf = nil
}
