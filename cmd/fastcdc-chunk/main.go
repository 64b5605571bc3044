// Command fastcdc-chunk splits a file (or stdin) into content-defined
// chunks and prints one line per chunk: its BLAKE3 hash and length.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gocdc/fastcdc"
)

func printChunk(chunk fastcdc.Chunk) {
	if chunk.HasHash {
		fmt.Printf("%s-%d\n", chunk.Hash.Hex(), chunk.Len())
		return
	}
	fmt.Printf("<unhashed>-%d\n", chunk.Len())
}

func humanizeBytes(n uint64) string {
	return humanize.Bytes(n)
}

func main() {
	var f *os.File
	if len(os.Args) > 1 {
		var err error
		f, err = os.Open(os.Args[1])
		if err != nil {
			log.Fatal("Failed to open input file: ", err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}

	rc := fastcdc.NewReaderChunker(f, fastcdc.DefaultChunkConfig())

	chunkCount := 0
	for {
		chunk, err := rc.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			log.Fatal(err)
		}
		chunkCount++
		printChunk(chunk)
	}
	log.Printf("Created %d chunks, %s total", chunkCount, humanizeBytes(rc.Offset()))
}
