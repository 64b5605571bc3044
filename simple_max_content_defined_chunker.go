package fastcdc

import (
	"bufio"
	"io"
)

// SimpleMaxBoundaryChunker is a naive, unoptimized reimplementation of
// the algorithm behind MaxBoundaryChunker: on each call it rescans the
// full lookahead window from scratch to find the position that
// maximizes the rolling hash, rather than maintaining a stack of
// candidate cuts across calls. It produces byte-identical chunks to
// MaxBoundaryChunker for the same input and config; it exists to give
// that optimization something to be checked against in tests, not for
// production use.
type SimpleMaxBoundaryChunker struct {
	r      *bufio.Reader
	config ChunkConfig
	hasher *strongHasher
	offset uint64

	previousChunkSizeBytes int
}

// NewSimpleMaxBoundaryChunker returns a SimpleMaxBoundaryChunker reading
// from r using cfg's MinSize and MaxSize.
func NewSimpleMaxBoundaryChunker(r io.Reader, cfg ChunkConfig) *SimpleMaxBoundaryChunker {
	c := &SimpleMaxBoundaryChunker{
		r:      bufio.NewReaderSize(r, int(cfg.MinSize()+cfg.MaxSize())),
		config: cfg,
	}
	if cfg.HashEnabled() {
		c.hasher = newStrongHasher()
	}
	return c
}

// Next implements ChunkReader.
func (c *SimpleMaxBoundaryChunker) Next() (Chunk, error) {
	data, err := c.readNextChunk()
	if err != nil {
		return Chunk{}, err
	}
	chunk := Chunk{Data: data, Offset: c.offset, HasOffset: true}
	if c.hasher != nil {
		c.hasher.reset()
		c.hasher.update(data)
		chunk.Hash = c.hasher.finalize()
		chunk.HasHash = true
	}
	c.offset += uint64(len(data))
	return chunk, nil
}

func (c *SimpleMaxBoundaryChunker) readNextChunk() ([]byte, error) {
	minSize := int(c.config.MinSize())
	maxSize := int(c.config.MaxSize())

	discarded, err := c.r.Discard(c.previousChunkSizeBytes)
	c.previousChunkSizeBytes -= discarded
	if err != nil {
		return nil, err
	}

	d, err := c.r.Peek(minSize + maxSize)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(d) <= 2*minSize {
		if len(d) == 0 {
			return nil, io.EOF
		}
		c.previousChunkSizeBytes = len(d)
		return d, nil
	}
	d = d[:len(d)-minSize]

	lookback := minSize - 64
	if lookback < 0 {
		lookback = 0
	}
	var hash uint64
	for _, b := range d[lookback:minSize] {
		hash = (hash << 1) + gearTable[b]
	}

	bestHash := hash
	bestSize := minSize
	for i, b := range d[minSize:] {
		hash = (hash << 1) + gearTable[b]
		if bestHash < hash {
			bestHash = hash
			bestSize = minSize + i + 1
		}
	}

	c.previousChunkSizeBytes = bestSize
	return d[:bestSize], nil
}
