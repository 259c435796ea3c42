package utils

import (
	"sync"

	"github.com/ethaniccc/float32-cube/cube"
)

// BBoxListPool holds reusable slices for collecting collision boxes during a step.
var BBoxListPool = sync.Pool{
	New: func() any {
		s := make([]cube.BBox, 0, 16)
		return &s
	},
}

// GetBBoxList returns an empty box slice from the pool.
func GetBBoxList() *[]cube.BBox {
	list := BBoxListPool.Get().(*[]cube.BBox)
	*list = (*list)[:0]
	return list
}

// PutBBoxList returns a box slice to the pool.
func PutBBoxList(list *[]cube.BBox) {
	if list == nil {
		return
	}
	*list = (*list)[:0]
	BBoxListPool.Put(list)
}
