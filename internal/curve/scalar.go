package curve

import "github.com/holiman/uint256"

// RangeLow and RangeHigh bound the 71-bit keyspace of puzzle #71,
// inclusive on both ends: LOW = 2^70, HIGH = 2^71 - 1.
var (
	RangeLow  = uint256.MustFromHex("0x400000000000000000")
	RangeHigh = uint256.MustFromHex("0x7FFFFFFFFFFFFFFFFF")
)

// ChunkSize returns batchSize*numBatches as a uint256: the number of
// consecutive keys a single random seed covers.
func ChunkSize(batchSize, numBatches int) *uint256.Int {
	z := new(uint256.Int)
	return z.Mul(uint256.NewInt(uint64(batchSize)), uint256.NewInt(uint64(numBatches)))
}

// SeedBound returns HIGH - chunkSize + 1, the largest value a seed may
// take without letting its chunk walk past RangeHigh. Seed draws above
// this bound must be rejected and redrawn.
func SeedBound(chunkSize *uint256.Int) *uint256.Int {
	z := new(uint256.Int)
	z.Sub(RangeHigh, chunkSize)
	return z.AddUint64(z, 1)
}

// Seed builds a candidate starting key from a 2-bit quarter-range
// selector and a 64-bit low half: (4+hi2)<<68 | lo. Bits 64-67 are
// always clear, matching the source scanner's seed construction.
func Seed(hi2, lo uint64) *uint256.Int {
	z := uint256.NewInt(4 + (hi2 & 0x3))
	z.Lsh(z, 68)

	var loPart uint256.Int
	loPart.SetUint64(lo)
	return z.Or(z, &loPart)
}

// AddOffset returns seed+offset as a new uint256, the matching private
// key given a seed and a within-chunk index.
func AddOffset(seed *uint256.Int, offset uint64) *uint256.Int {
	z := new(uint256.Int)
	return z.AddUint64(seed, offset)
}
