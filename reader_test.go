package fastcdc_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/gocdc/fastcdc"
	"github.com/stretchr/testify/require"
)

func TestReaderChunkerMatchesPushFinish(t *testing.T) {
	cfg := fastcdc.DefaultChunkConfig()
	data := pseudoRandomBytes(0xC0FFEE, 512*1024)

	direct := chunkAll(t, cfg, data, len(data))

	rc := fastcdc.NewReaderChunker(bytes.NewReader(data), cfg)
	var viaReader []fastcdc.Chunk
	for {
		chunk, err := rc.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		viaReader = append(viaReader, chunk)
	}

	require.Equal(t, toTriples(direct), toTriples(viaReader))
	require.Equal(t, uint64(len(data)), rc.Offset())
}

func TestReaderChunkerEmptyReader(t *testing.T) {
	rc := fastcdc.NewReaderChunker(bytes.NewReader(nil), fastcdc.DefaultChunkConfig())
	_, err := rc.Next()
	require.Equal(t, io.EOF, err)
}

func TestReaderChunkerPropagatesReadError(t *testing.T) {
	rc := fastcdc.NewReaderChunker(errorReader{}, fastcdc.DefaultChunkConfig())
	_, err := rc.Next()
	require.Error(t, err)
	require.NotEqual(t, io.EOF, err)
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
