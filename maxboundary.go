package fastcdc

import (
	"bufio"
	"io"
)

// maxChunkMark records a candidate cutting point considered by
// MaxBoundaryChunker: the rolling hash value at that position and the
// position itself, relative to the start of the reader's current
// unconsumed data.
type maxChunkMark struct {
	hash uint64
	end  int
}

// MaxBoundaryChunker is an alternative to Chunker that places cuts at
// the position where the Gear rolling hash is locally maximized, rather
// than at the first position matching a bitmask. Chunk sizes it
// produces are close to uniformly distributed between MinSize and
// MaxSize, instead of FastCDC's normal-like distribution around
// AvgSize; ChunkConfig.AvgSize is unused by this strategy.
//
// Finding the maximum requires looking ahead up to MaxSize-MinSize
// bytes past any candidate cut, so MaxBoundaryChunker is built around
// an io.Reader (via ChunkReader) rather than Chunker's push-based
// interface: buffering the lookahead is intrinsic to the algorithm, not
// an implementation convenience.
//
// MaxBoundaryChunker is not safe for concurrent use.
type MaxBoundaryChunker struct {
	r      *bufio.Reader
	config ChunkConfig
	hasher *strongHasher
	offset uint64
	marks  []maxChunkMark
}

// NewMaxBoundaryChunker returns a MaxBoundaryChunker reading from r,
// using cfg's MinSize and MaxSize (AvgSize is ignored) and hashing
// chunks iff cfg.HashEnabled.
func NewMaxBoundaryChunker(r io.Reader, cfg ChunkConfig) *MaxBoundaryChunker {
	c := &MaxBoundaryChunker{
		r:      bufio.NewReaderSize(r, int(cfg.MinSize()+cfg.MaxSize())),
		config: cfg,
		marks:  make([]maxChunkMark, 1, int(cfg.MaxSize()/cfg.MinSize())+2),
	}
	if cfg.HashEnabled() {
		c.hasher = newStrongHasher()
	}
	return c
}

// Next implements ChunkReader.
func (c *MaxBoundaryChunker) Next() (Chunk, error) {
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

// readNextChunk implements the lookahead-with-a-mark-stack algorithm:
// cutting points are candidates whenever the rolling hash exceeds every
// hash seen since the previous candidate, and candidates are collapsed
// as soon as a later one proves more favorable. This lets the chunker
// commit to the first mark on the stack once it is definitely optimal,
// without rehashing bytes it has already scanned.
func (c *MaxBoundaryChunker) readNextChunk() ([]byte, error) {
	minSize := int(c.config.MinSize())
	maxSize := int(c.config.MaxSize())

	discarded, err := c.r.Discard(c.marks[0].end)
	for i := range c.marks {
		c.marks[i].end -= discarded
	}
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
		c.marks = append(c.marks[:0], maxChunkMark{end: len(d)})
		return d, nil
	}
	d = d[:len(d)-minSize]

	var previous, current maxChunkMark
	var settled []maxChunkMark
	if len(c.marks) > 2 {
		previous, current = c.marks[len(c.marks)-2], c.marks[len(c.marks)-1]
		settled = append(c.marks[:0], c.marks[1:len(c.marks)-2]...)
	} else {
		var hash uint64
		lookback := minSize - 64
		if lookback < 0 {
			lookback = 0
		}
		for _, b := range d[lookback:minSize] {
			hash = (hash << 1) + gearTable[b]
		}
		previous = maxChunkMark{hash: hash, end: minSize}
		current = previous
		settled = c.marks[:0]
	}

	for {
		region := d[current.end:]
		if m := minSize - (current.end - previous.end); len(region) > m {
			region = region[:m]
		}
		if len(region) == 0 {
			if current.end-previous.end == minSize {
				settled = append(settled, previous)
				previous = current
				continue
			}
			c.marks = append(settled, previous, current)
			return d[:c.marks[0].end], nil
		}

		for i, b := range region {
			current.hash = (current.hash << 1) + gearTable[b]
			if current.hash > previous.hash {
				for len(settled) > 0 && current.hash > settled[len(settled)-1].hash {
					settled = settled[:len(settled)-1]
				}
				previous = maxChunkMark{hash: current.hash, end: current.end + i + 1}
			}
		}
		current.end += len(region)
	}
}
