package fastcdc

// Chunker owns rolling-hash state across arbitrarily sized input
// batches and emits content-defined Chunk values as it detects cut
// points. It is not safe for concurrent use by multiple goroutines,
// but a *Chunker may be handed off between goroutines between calls.
//
// A Chunker is used by calling Push repeatedly as data becomes
// available, then Finish once to flush the final, possibly
// undersized, tail chunk. After Finish, further Push or Finish calls
// return ErrStreamClosed.
type Chunker struct {
	config   ChunkConfig
	detector boundaryDetector

	hash   uint64
	cursor uint32

	absoluteOffset uint64
	carry          []byte

	hasher *strongHasher

	closed bool
}

// NewChunker creates a Chunker that emits chunks conforming to cfg.
func NewChunker(cfg ChunkConfig) *Chunker {
	c := &Chunker{
		config:   cfg,
		detector: newBoundaryDetector(cfg),
	}
	if cfg.hashEnabled {
		c.hasher = newStrongHasher()
	}
	return c
}

// Config returns the configuration this Chunker was constructed with.
func (c *Chunker) Config() ChunkConfig {
	return c.config
}

// Offset returns the total length of all chunks emitted so far, which
// is the offset the next emitted chunk (or the Finish tail) will be
// stamped with. Bytes still held in the carry are not counted.
func (c *Chunker) Offset() uint64 {
	return c.absoluteOffset
}

// Push feeds input into the chunker. It conceptually appends input to
// any carried-over bytes from a previous call, walks the combined
// bytes looking for cut points, and returns every complete chunk found
// plus the trailing bytes that remain part of an open chunk (the
// residual). The residual is also retained internally as the carry for
// the next call.
//
// A chunk's Data references input directly whenever the chunk lies
// entirely within this call; it is copied into a freshly allocated
// buffer only when it spans the previous carry and this call's input.
// Push never mutates the caller's input slice or reuses its backing
// array beyond what it hands back as a chunk.
//
// Push returns ErrStreamClosed if Finish has already been called.
func (c *Chunker) Push(input []byte) ([]Chunk, []byte, error) {
	if c.closed {
		return nil, nil, ErrStreamClosed
	}

	var chunks []Chunk
	chunkStart := 0 // start, within input, of the bytes not yet folded into a chunk or the carry

	for i, b := range input {
		if c.detector.step(&c.hash, &c.cursor, b) {
			newBytes := input[chunkStart : i+1]
			data := c.materializeChunk(newBytes)
			chunks = append(chunks, c.emitChunk(data, newBytes))
			chunkStart = i + 1
		}
	}

	if chunkStart < len(input) {
		tail := input[chunkStart:]
		if c.hasher != nil {
			c.hasher.update(tail)
		}
		c.carry = combineBytes(c.carry, tail)
	}
	// If chunkStart == len(input), every byte of input was folded into
	// a completed chunk by the loop above, and materializeChunk already
	// cleared c.carry as part of emitting the chunk that consumed it
	// (or c.carry was already empty, e.g. when input itself is empty).

	return chunks, c.carry, nil
}

// Finish flushes any carried-over bytes as a final chunk. The final
// chunk may be shorter than MinSize; if there is no carry, Finish
// returns ok == false. After Finish, the Chunker is closed: further
// Push or Finish calls return ErrStreamClosed.
func (c *Chunker) Finish() (chunk Chunk, ok bool, err error) {
	if c.closed {
		return Chunk{}, false, ErrStreamClosed
	}
	c.closed = true

	if len(c.carry) == 0 {
		return Chunk{}, false, nil
	}

	chunk = Chunk{
		Data:      c.carry,
		Offset:    c.absoluteOffset,
		HasOffset: true,
	}
	if c.hasher != nil {
		// Every byte of carry was already streamed into the hasher as
		// it arrived, in Push's tail-carry branch above.
		chunk.Hash = c.hasher.finalize()
		chunk.HasHash = true
	}
	c.absoluteOffset += uint64(len(c.carry))
	c.carry = nil
	return chunk, true, nil
}

// Reset reinitializes the Chunker to the state NewChunker(c.config)
// would produce, discarding any carry and open hasher state. It exists
// so a ChunkerPool can recycle a *Chunker across unrelated streams; a
// single chunking run never needs to call it.
func (c *Chunker) Reset() {
	c.hash = 0
	c.cursor = 0
	c.absoluteOffset = 0
	c.carry = nil
	c.closed = false
	if c.hasher != nil {
		c.hasher.reset()
	}
}

// materializeChunk returns the complete bytes of a just-cut chunk,
// combining any pending carry with newBytes (the portion contributed
// by the current Push call). It clears the carry, since it has now
// been folded into an emitted chunk.
func (c *Chunker) materializeChunk(newBytes []byte) []byte {
	if len(c.carry) == 0 {
		return newBytes
	}
	data := combineBytes(c.carry, newBytes)
	c.carry = nil
	return data
}

// emitChunk builds the Chunk for a just-cut span of data, finalizing
// and resetting the strong hasher if enabled. Only newBytes (this
// call's contribution) is fed to the hasher here: any carry bytes in
// data were already hashed as they arrived, in a previous Push's
// tail-carry branch.
func (c *Chunker) emitChunk(data, newBytes []byte) Chunk {
	chunk := Chunk{
		Data:      data,
		Offset:    c.absoluteOffset,
		HasOffset: true,
	}

	if c.hasher != nil {
		c.hasher.update(newBytes)
		chunk.Hash = c.hasher.finalize()
		chunk.HasHash = true
		c.hasher.reset()
	}

	c.absoluteOffset += uint64(len(data))
	c.cursor = 0
	c.hash = 0
	return chunk
}

// combineBytes concatenates a and b without disturbing either slice's
// backing array. It returns b directly when a is empty and a directly
// when b is empty, avoiding an allocation in the common case where a
// chunk never needs to span a Push boundary.
func combineBytes(a, b []byte) []byte {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
