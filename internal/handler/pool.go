package handler

import (
	"bytes"
	"sync"
)

const (
	respBufferSize    = 1 << 10
	respBufferMaxKeep = 64 << 10
)

// respBuffers holds encode buffers for respondJSON. Leaderboards and
// catalog listings are the large payloads; buffers that grew past
// respBufferMaxKeep are dropped instead of pinned in the pool.
var respBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, respBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return respBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > respBufferMaxKeep {
		return
	}
	buf.Reset()
	respBuffers.Put(buf)
}
