package fastcdc

import "github.com/seehuhn/mt19937"

// gearTable is the fixed 256-entry Gear hash lookup table shared by
// every Chunker in the process. The FastCDC paper mentions that the
// table needs to be initialized with random-looking values but does
// not fix a canonical set of constants for reuse outside the paper's
// own reference implementation; like buildbarn's go-cdc, this package
// derives a fixed table from the first 256 outputs of a Mersenne
// Twister seeded with zero, so the table is deterministic across
// processes and platforms without depending on unavailable published
// constants. See DESIGN.md for the full rationale.
var gearTable [256]uint64

func init() {
	twister := mt19937.New()
	twister.Seed(0)
	for i := range gearTable {
		gearTable[i] = twister.Uint64()
	}
}
