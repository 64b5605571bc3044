package fastcdc_test

import (
	"testing"

	"github.com/gocdc/fastcdc"
	"github.com/stretchr/testify/require"
)

func TestChunkRange(t *testing.T) {
	c := fastcdc.Chunk{Data: []byte("hello"), Offset: 100, HasOffset: true}
	require.Equal(t, 5, c.Len())
	require.Equal(t, uint64(100), c.Start())
	require.Equal(t, uint64(105), c.End())

	start, end := c.Range()
	require.Equal(t, uint64(100), start)
	require.Equal(t, uint64(105), end)
}

func TestChunkString(t *testing.T) {
	c := fastcdc.Chunk{Data: []byte("hello"), Offset: 0, HasOffset: true}
	require.Contains(t, c.String(), "5 bytes")
	require.NotContains(t, c.String(), "hash=")

	c.HasHash = true
	require.Contains(t, c.String(), "hash=")
}
