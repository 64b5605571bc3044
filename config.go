package fastcdc

import "math/bits"

const (
	// DefaultMinSize is the default minimum chunk size (4 KiB).
	DefaultMinSize = 4 * 1024

	// DefaultAvgSize is the default average chunk size (16 KiB).
	DefaultAvgSize = 16 * 1024

	// DefaultMaxSize is the default maximum chunk size (64 KiB).
	DefaultMaxSize = 64 * 1024

	// normalizationLevel controls how far the small/large boundary
	// masks are spread apart from a plain log2(avg)-bit mask: mask_s
	// gets bits+normalizationLevel one-bits, mask_l gets
	// bits-normalizationLevel. It is a fixed implementation constant
	// rather than a configuration knob: changing it changes chunk
	// identity for every existing config, the same way changing the
	// strong hash algorithm would. See DESIGN.md for why level 2 is
	// the correct value here, not a tunable.
	normalizationLevel = 2
)

// ChunkConfig holds the size bounds and hashing flag that parameterize
// a Chunker. It is an immutable value: constructing one validates the
// bounds once, and every derived Chunker shares the same masks.
type ChunkConfig struct {
	minSize, avgSize, maxSize uint32
	maskS, maskL              uint64
	hashEnabled               bool
}

// NewChunkConfig validates min <= avg <= max (all positive) and that
// avg is a power of two, then derives the boundary-detector masks.
// Hashing is enabled by default in the returned config.
func NewChunkConfig(minSize, avgSize, maxSize uint32) (ChunkConfig, error) {
	if minSize == 0 || avgSize == 0 || maxSize == 0 {
		return ChunkConfig{}, invalidConfigf("chunk sizes must be non-zero")
	}
	if minSize > avgSize {
		return ChunkConfig{}, invalidConfigf("min_size (%d) must be <= avg_size (%d)", minSize, avgSize)
	}
	if avgSize > maxSize {
		return ChunkConfig{}, invalidConfigf("avg_size (%d) must be <= max_size (%d)", avgSize, maxSize)
	}
	if avgSize&(avgSize-1) != 0 {
		return ChunkConfig{}, invalidConfigf("avg_size (%d) must be a power of two", avgSize)
	}

	maskS, maskL := computeMasks(avgSize)

	return ChunkConfig{
		minSize:     minSize,
		avgSize:     avgSize,
		maxSize:     maxSize,
		maskS:       maskS,
		maskL:       maskL,
		hashEnabled: true,
	}, nil
}

// DefaultChunkConfig returns {min=4KiB, avg=16KiB, max=64KiB} with
// hashing enabled.
func DefaultChunkConfig() ChunkConfig {
	cfg, err := NewChunkConfig(DefaultMinSize, DefaultAvgSize, DefaultMaxSize)
	if err != nil {
		// Unreachable: the defaults always satisfy NewChunkConfig's invariants.
		panic(err)
	}
	return cfg
}

// computeMasks derives the two normalized-chunking bitmasks from
// avgSize, following the FastCDC construction: a mask_s that requires
// more zero bits (harder to match, biasing chunks up toward avgSize
// from below) and a mask_l that requires fewer (easier to match,
// biasing chunks down toward avgSize from above).
func computeMasks(avgSize uint32) (maskS, maskL uint64) {
	avgBits := bits.TrailingZeros32(avgSize)

	sBits := avgBits + normalizationLevel
	lBits := avgBits - normalizationLevel
	if lBits < 0 {
		lBits = 0
	}

	maskS = (uint64(1) << uint(sBits)) - 1
	maskL = (uint64(1) << uint(lBits)) - 1
	return maskS, maskL
}

// WithHashEnabled returns a copy of cfg with hashing enabled or
// disabled as specified.
func (c ChunkConfig) WithHashEnabled(enabled bool) ChunkConfig {
	c.hashEnabled = enabled
	return c
}

// MinSize returns the minimum chunk size in bytes.
func (c ChunkConfig) MinSize() uint32 { return c.minSize }

// AvgSize returns the average (target) chunk size in bytes.
func (c ChunkConfig) AvgSize() uint32 { return c.avgSize }

// MaxSize returns the maximum chunk size in bytes.
func (c ChunkConfig) MaxSize() uint32 { return c.maxSize }

// HashEnabled reports whether chunks produced from this config carry a
// BLAKE3 content hash.
func (c ChunkConfig) HashEnabled() bool { return c.hashEnabled }
