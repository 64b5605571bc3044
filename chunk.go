package fastcdc

import "fmt"

// Chunk is a content-defined chunk emitted by a Chunker.
//
// Data is a zero-copy view into the caller's input buffer in the
// common case (a chunk entirely contained within one Push call). When
// a cut falls inside a Push argument but the chunk began in a previous
// call's carry, Data is a freshly allocated slice combining the two
// spans; see Chunker.Push.
type Chunk struct {
	Data []byte

	// Offset is the absolute byte offset of Data[0] in the logical
	// stream. HasOffset is always true for chunks produced by Chunker;
	// the field exists so a Chunk can also be constructed standalone
	// (e.g. in tests) without an offset.
	Offset    uint64
	HasOffset bool

	// Hash is the BLAKE3 digest of Data, present iff the owning
	// Chunker's config had hashing enabled.
	Hash    ChunkHash
	HasHash bool
}

// Len returns len(c.Data).
func (c Chunk) Len() int {
	return len(c.Data)
}

// Start returns c.Offset (or 0 if HasOffset is false).
func (c Chunk) Start() uint64 {
	if !c.HasOffset {
		return 0
	}
	return c.Offset
}

// End returns the exclusive end offset of the chunk: Start()+Len().
func (c Chunk) End() uint64 {
	return c.Start() + uint64(c.Len())
}

// Range returns [Start(), End()).
func (c Chunk) Range() (start, end uint64) {
	return c.Start(), c.End()
}

func (c Chunk) String() string {
	if c.HasHash {
		return fmt.Sprintf("Chunk(%d bytes @ %d, hash=%s)", c.Len(), c.Offset, c.Hash.Hex())
	}
	return fmt.Sprintf("Chunk(%d bytes @ %d)", c.Len(), c.Offset)
}
