package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds reusable buffers for encoding recordings.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}
