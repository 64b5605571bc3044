// Command fastcdc-tar reads a tar stream from stdin, re-serializes it
// with normalized timestamps (so that identical file content produces
// an identical byte stream regardless of when the tarball was built),
// and chunks the result, printing one line per chunk.
package main

import (
	"archive/tar"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/gocdc/fastcdc"
)

func main() {
	pr, pw := io.Pipe()
	var g errgroup.Group
	timeZero := time.Unix(0, 0)

	g.Go(func() error {
		tr := tar.NewReader(os.Stdin)
		tw := tar.NewWriter(pw)
		for {
			h, err := tr.Next()
			if err != nil {
				if err == io.EOF {
					pw.Close()
					return nil
				}
				pw.CloseWithError(err)
				return err
			}
			if h.Typeflag == tar.TypeXGlobalHeader {
				continue
			}
			h.ModTime = timeZero
			h.AccessTime = time.Time{}
			h.ChangeTime = time.Time{}
			if err := tw.WriteHeader(h); err != nil {
				pw.CloseWithError(err)
				return err
			}
			if _, err := io.Copy(tw, tr); err != nil {
				pw.CloseWithError(err)
				return err
			}
		}
	})

	var totalBytes uint64
	var chunkCount int
	g.Go(func() error {
		rc := fastcdc.NewReaderChunker(pr, fastcdc.DefaultChunkConfig())
		for {
			chunk, err := rc.Next()
			if err != nil {
				if err == io.EOF {
					pr.Close()
					return nil
				}
				pr.CloseWithError(err)
				return err
			}
			chunkCount++
			totalBytes += uint64(chunk.Len())
			if chunk.HasHash {
				fmt.Printf("%s-%d\n", chunk.Hash.Hex(), chunk.Len())
			} else {
				fmt.Printf("<unhashed>-%d\n", chunk.Len())
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Printf("Created %d chunks, %s total", chunkCount, humanize.Bytes(totalBytes))
}
