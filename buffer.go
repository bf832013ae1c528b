package dercodec

/*
buffer.go implements pooled scratch storage for the encode walker,
the one piece of allocation churn spec.md's Concurrency & Resource
Model calls out: building a constructed node's content means
concatenating each child's already-encoded bytes, and that scratch
slice is safe to recycle the moment the concatenation is copied out.
*/

import "sync"

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

func getBuf() *[]byte {
	p := bufPool.Get().(*[]byte)
	*p = (*p)[:0]
	return p
}

func putBuf(p *[]byte) {
	if cap(*p) > 1<<20 {
		// Don't let one oversized encode permanently inflate the pool.
		return
	}
	bufPool.Put(p)
}

/*
concatPooled appends each of parts in order using a pooled scratch
slice, then copies the result out to a right-sized slice before
returning the scratch buffer to the pool.
*/
func concatPooled(parts [][]byte) []byte {
	bufPtr := getBuf()
	b := *bufPtr
	for _, p := range parts {
		b = append(b, p...)
	}
	out := append([]byte(nil), b...)
	*bufPtr = b
	putBuf(bufPtr)
	return out
}
