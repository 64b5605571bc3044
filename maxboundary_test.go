package fastcdc_test

import (
	"io"
	"math/rand"
	"testing"

	"github.com/gocdc/fastcdc"
	"github.com/stretchr/testify/require"
)

func TestMaxBoundaryChunkerMatchesSimple(t *testing.T) {
	// MaxBoundaryChunker's stack-based lookahead is an optimization of
	// the same algorithm SimpleMaxBoundaryChunker computes from
	// scratch on every call; the two must agree byte for byte.
	seed := rand.Int63()
	r1 := rand.New(rand.NewSource(seed))
	r2 := rand.New(rand.NewSource(seed))

	cfg, err := fastcdc.NewChunkConfig(2*1024, 8*1024, 16*1024)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		simple := fastcdc.NewSimpleMaxBoundaryChunker(io.LimitReader(r1, 256*1024), cfg)
		optimized := fastcdc.NewMaxBoundaryChunker(io.LimitReader(r2, 256*1024), cfg)

		for totalRead := 0; totalRead < 256*1024; {
			chunk1, err1 := simple.Next()
			require.NoError(t, err1)
			require.LessOrEqual(t, int(cfg.MinSize()), chunk1.Len())
			require.GreaterOrEqual(t, int(cfg.MaxSize()), chunk1.Len())

			chunk2, err2 := optimized.Next()
			require.NoError(t, err2)
			require.Equal(t, chunk1.Data, chunk2.Data)
			require.Equal(t, chunk1.Offset, chunk2.Offset)
			require.Equal(t, chunk1.Hash, chunk2.Hash)
			totalRead += chunk1.Len()
		}

		_, err1 := simple.Next()
		require.Equal(t, io.EOF, err1)
		_, err2 := optimized.Next()
		require.Equal(t, io.EOF, err2)
	}
}

func TestMaxBoundaryChunkerImplementsChunkReader(t *testing.T) {
	var _ fastcdc.ChunkReader = (*fastcdc.MaxBoundaryChunker)(nil)
	var _ fastcdc.ChunkReader = (*fastcdc.SimpleMaxBoundaryChunker)(nil)
	var _ fastcdc.ChunkReader = (*fastcdc.ReaderChunker)(nil)
}
