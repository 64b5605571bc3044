package fastcdc

import (
	"bufio"
	"errors"
	"io"
)

// defaultReadBufferSize is the size of the internal read buffer used by
// ReaderChunker when the caller does not request a specific size.
const defaultReadBufferSize = 64 * 1024

// ReaderChunker is a caller-side convenience that drives a core Chunker
// from an io.Reader, matching the FastCDC boundary detection this
// package implements without requiring the caller to manage its own
// read buffer. It is built entirely on top of Chunker's public Push and
// Finish and is not part of the chunking core itself: per this
// package's design, I/O drivers are external collaborators.
type ReaderChunker struct {
	r       *bufio.Reader
	chunker *Chunker
	readBuf []byte
	pending []Chunk
	done    bool
}

// NewReaderChunker returns a ReaderChunker that reads from r and yields
// chunks conforming to cfg via Next.
func NewReaderChunker(r io.Reader, cfg ChunkConfig) *ReaderChunker {
	return NewReaderChunkerSize(r, cfg, defaultReadBufferSize)
}

// NewReaderChunkerSize is like NewReaderChunker but lets the caller pick
// the internal read buffer size. bufferSize is clamped up to at least
// cfg.MaxSize so a single read can always make progress toward a cut.
func NewReaderChunkerSize(r io.Reader, cfg ChunkConfig, bufferSize int) *ReaderChunker {
	if bufferSize < int(cfg.MaxSize()) {
		bufferSize = int(cfg.MaxSize())
	}
	return &ReaderChunker{
		r:       bufio.NewReaderSize(r, bufferSize),
		chunker: NewChunker(cfg),
		readBuf: make([]byte, bufferSize),
	}
}

// Next returns the next chunk read from the underlying reader. It
// returns io.EOF once the stream and its final tail chunk have both
// been fully consumed.
func (rc *ReaderChunker) Next() (Chunk, error) {
	for {
		if len(rc.pending) > 0 {
			chunk := rc.pending[0]
			rc.pending = rc.pending[1:]
			return chunk, nil
		}
		if rc.done {
			return Chunk{}, io.EOF
		}

		n, err := rc.r.Read(rc.readBuf)
		if n > 0 {
			chunks, _, pushErr := rc.chunker.Push(rc.readBuf[:n])
			if pushErr != nil {
				return Chunk{}, pushErr
			}
			rc.pending = chunks
			// The returned chunks and the chunker's carry reference the
			// bytes just pushed, so the next read goes into a new buffer.
			rc.readBuf = make([]byte, len(rc.readBuf))
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Chunk{}, err
			}
			final, ok, finishErr := rc.chunker.Finish()
			if finishErr != nil {
				return Chunk{}, finishErr
			}
			rc.done = true
			if ok {
				rc.pending = append(rc.pending, final)
			}
			// Loop again: either rc.pending now holds the final chunk,
			// or there's nothing left and the next iteration returns
			// io.EOF via rc.done.
			continue
		}

		if len(rc.pending) == 0 {
			// Read succeeded but produced no complete chunk yet
			// (n could even be 0 without error for some readers);
			// keep reading.
			continue
		}
	}
}

// Offset returns the total length of the chunks produced so far (see
// Chunker.Offset); once Next has returned io.EOF it equals the number
// of bytes read from the reader.
func (rc *ReaderChunker) Offset() uint64 {
	return rc.chunker.Offset()
}
