package fastcdc

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// ChunkHash is the 32-byte BLAKE3 content identifier of a chunk.
// Equality and ordering are byte-wise.
type ChunkHash [32]byte

// Hex returns the lowercase hex encoding of the hash (64 characters).
func (h ChunkHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements fmt.Stringer, returning the same value as Hex.
func (h ChunkHash) String() string {
	return h.Hex()
}

// Compare returns -1, 0, or 1 depending on the byte-wise ordering of h
// and other, matching the semantics of bytes.Compare.
func (h ChunkHash) Compare(other ChunkHash) int {
	return bytes.Compare(h[:], other[:])
}

// ChunkHashFromHex decodes a 64-character lowercase hex string into a
// ChunkHash. It rejects strings of the wrong length or containing
// non-hex characters.
func ChunkHashFromHex(s string) (ChunkHash, error) {
	var h ChunkHash
	if len(s) != hex.EncodedLen(len(h)) {
		return ChunkHash{}, fmt.Errorf("fastcdc: hash hex string must be %d characters, got %d", hex.EncodedLen(len(h)), len(s))
	}
	n, err := hex.Decode(h[:], []byte(s))
	if err != nil {
		return ChunkHash{}, fmt.Errorf("fastcdc: invalid hash hex string: %w", err)
	}
	if n != len(h) {
		return ChunkHash{}, fmt.Errorf("fastcdc: invalid hash hex string: short decode")
	}
	return h, nil
}

// strongHasher wraps an incremental BLAKE3 hasher, finalizing to a
// ChunkHash. It updates with every byte range that becomes part of the
// currently open chunk, including bytes fed in a previous Push call,
// and resets after each chunk boundary.
type strongHasher struct {
	h *blake3.Hasher
}

func newStrongHasher() *strongHasher {
	return &strongHasher{h: blake3.New()}
}

func (s *strongHasher) update(p []byte) {
	// blake3.Hasher.Write never returns an error.
	_, _ = s.h.Write(p)
}

func (s *strongHasher) finalize() ChunkHash {
	var out ChunkHash
	sum := s.h.Sum(nil)
	copy(out[:], sum)
	return out
}

func (s *strongHasher) reset() {
	s.h.Reset()
}
