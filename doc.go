// Package fastcdc implements content-defined chunking (CDC) using the
// FastCDC algorithm with a Gear rolling hash.
//
// It splits a byte stream into variable-length chunks whose boundaries
// depend on local content rather than byte offset, and attaches a
// BLAKE3 content hash to each chunk. The same logical stream produces
// byte-identical chunk boundaries and hashes regardless of how it is
// split across calls to Push, which makes the package a primitive for
// delta-sync, deduplicating backup, and content-addressable storage
// systems.
//
// The package does not read files, open sockets, or manage goroutines.
// Callers hand it byte buffers; it hands back Chunk values that
// reference those buffers without copying, except where a chunk spans
// two separate calls to Push.
//
// # Quick start
//
//	chunker := fastcdc.NewChunker(fastcdc.DefaultChunkConfig())
//	chunks, _, err := chunker.Push(data)
//	if final, ok, err := chunker.Finish(); ok {
//	    chunks = append(chunks, final)
//	}
//
// For chunking an io.Reader directly, see ReaderChunker. For an
// alternative boundary strategy that cuts where the rolling hash is
// locally maximized instead of matching a bitmask, see
// MaxBoundaryChunker.
package fastcdc
