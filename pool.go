package fastcdc

import "sync"

// ChunkerPool recycles *Chunker instances that all share the same
// ChunkConfig, avoiding repeated allocation of the Chunker struct (and,
// when hashing is enabled, its BLAKE3 hasher) in high-throughput
// scenarios such as chunking many small files back to back.
//
// A Chunker returned by Get is already Reset and ready for a fresh
// stream. Callers must call Put once they are done with it, and must
// not use the Chunker again afterward.
type ChunkerPool struct {
	pool sync.Pool
	cfg  ChunkConfig
}

// NewChunkerPool creates a pool of Chunkers configured with cfg.
func NewChunkerPool(cfg ChunkConfig) *ChunkerPool {
	return &ChunkerPool{cfg: cfg}
}

// Get returns a Chunker ready to chunk a new stream, either reused from
// the pool or freshly allocated.
func (p *ChunkerPool) Get() *Chunker {
	if v := p.pool.Get(); v != nil {
		c := v.(*Chunker)
		c.Reset()
		return c
	}
	return NewChunker(p.cfg)
}

// Put returns c to the pool for reuse. c must not be used again after
// this call. Put panics if c was not created for this pool's config,
// since recycling it would silently change the chunking behavior seen
// by whoever calls Get next.
func (p *ChunkerPool) Put(c *Chunker) {
	if c.config != p.cfg {
		panic("fastcdc: ChunkerPool.Put called with a Chunker from a different config")
	}
	p.pool.Put(c)
}
