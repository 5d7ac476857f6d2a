package utf8codec

import "sync"

// scratchSize is the encode chunk used by Writer.WriteCodepoints
const scratchSize = 4096

// scratch holds a pre-allocated encode buffer so bulk writes don't allocate
type scratch struct {
	buf [scratchSize]byte
	n   int // bytes of buf in use
}

// Zero-allocation scratch pool shared by all Writers
var scratchPool = sync.Pool{
	New: func() interface{} {
		return &scratch{}
	},
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func putScratch(s *scratch) {
	s.reset()
	scratchPool.Put(s)
}

// reset clears the scratch for reuse without allocating
func (s *scratch) reset() {
	s.n = 0
}
