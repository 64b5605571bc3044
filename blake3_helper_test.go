package fastcdc_test

import (
	"github.com/gocdc/fastcdc"
	"github.com/zeebo/blake3"
)

// blake3Sum computes the one-shot BLAKE3 digest of data independently
// of the package's incremental strongHasher, for cross-checking
// invariant 4 (hash determinism) in chunker_test.go.
func blake3Sum(data []byte) fastcdc.ChunkHash {
	return fastcdc.ChunkHash(blake3.Sum256(data))
}
