package fastcdc

// boundaryDetector implements the FastCDC cut-point rule as a pure
// function of (rolling hash, bytes-since-last-cut, next byte). It owns
// no mutable state of its own; the streaming Chunker carries the hash
// and cursor across calls so the detector can be a small value type
// embedded directly in Chunker, avoiding a pointer indirection on the
// hot per-byte path.
type boundaryDetector struct {
	minSize, avgSize, maxSize uint32
	maskS, maskL              uint64
}

func newBoundaryDetector(cfg ChunkConfig) boundaryDetector {
	return boundaryDetector{
		minSize: cfg.minSize,
		avgSize: cfg.avgSize,
		maxSize: cfg.maxSize,
		maskS:   cfg.maskS,
		maskL:   cfg.maskL,
	}
}

// step advances the rolling hash by one byte and reports whether a cut
// point falls on this byte. hash and cursor are the caller's rolling
// state; step mutates both in place.
//
//   - cursor < minSize: never cuts, regardless of hash.
//   - minSize <= cursor < avgSize: cuts iff hash&maskS == 0.
//   - avgSize <= cursor < maxSize: cuts iff hash&maskL == 0.
//   - cursor == maxSize: forced cut, independent of hash.
func (d *boundaryDetector) step(hash *uint64, cursor *uint32, b byte) bool {
	*hash = (*hash << 1) + gearTable[b]
	*cursor++

	n := *cursor
	if n < d.minSize {
		return false
	}
	if n >= d.maxSize {
		return true
	}

	mask := d.maskL
	if n < d.avgSize {
		mask = d.maskS
	}
	return *hash&mask == 0
}
