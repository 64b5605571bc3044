package fastcdc_test

import (
	"testing"

	"github.com/gocdc/fastcdc"
	"github.com/stretchr/testify/require"
)

func TestChunkHashHexRoundTrip(t *testing.T) {
	var h fastcdc.ChunkHash
	for i := range h {
		h[i] = byte(i)
	}

	hex := h.Hex()
	require.Len(t, hex, 64)

	decoded, err := fastcdc.ChunkHashFromHex(hex)
	require.NoError(t, err)
	require.Equal(t, h, decoded)
	require.Equal(t, hex, decoded.String())
}

func TestChunkHashFromHexRejectsBadInput(t *testing.T) {
	_, err := fastcdc.ChunkHashFromHex("too-short")
	require.Error(t, err)

	_, err = fastcdc.ChunkHashFromHex("zz" + fixedHexOfLen(62))
	require.Error(t, err)
}

func TestChunkHashCompareIsByteWise(t *testing.T) {
	var a, b fastcdc.ChunkHash
	a[0] = 1
	b[0] = 2
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func fixedHexOfLen(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = '0'
	}
	return string(out)
}
