package fastcdc_test

import (
	"testing"

	"github.com/gocdc/fastcdc"
	"github.com/stretchr/testify/require"
)

func TestChunkerPoolReuseIsTransparent(t *testing.T) {
	cfg := fastcdc.DefaultChunkConfig()
	pool := fastcdc.NewChunkerPool(cfg)
	data := pseudoRandomBytes(0xC0FFEE, 256*1024)

	c1 := pool.Get()
	first := chunkAllWith(t, c1, data, 4096)
	pool.Put(c1)

	c2 := pool.Get()
	second := chunkAllWith(t, c2, data, 999)
	pool.Put(c2)

	require.Equal(t, toTriples(first), toTriples(second))
}

func TestChunkerPoolPutRejectsForeignConfig(t *testing.T) {
	poolA := fastcdc.NewChunkerPool(fastcdc.DefaultChunkConfig())
	otherCfg, err := fastcdc.NewChunkConfig(1024, 4096, 16384)
	require.NoError(t, err)

	foreign := fastcdc.NewChunker(otherCfg)
	require.Panics(t, func() {
		poolA.Put(foreign)
	})
}
