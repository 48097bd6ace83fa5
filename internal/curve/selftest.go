package curve

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"
	"puzzle71scan/internal/hash160"
)

// generatorHash160 is the known hash160 of the compressed secp256k1
// generator point, used to catch a broken hash pipeline before any
// worker starts.
var generatorHash160 = [20]byte{
	0x75, 0x1e, 0x76, 0xe8, 0x19, 0x91, 0x96, 0xd4,
	0x54, 0x94, 0x1c, 0x45, 0xd1, 0xb3, 0xa3, 0x23,
	0xf1, 0x43, 0x3b, 0xd6,
}

// SelfTest runs the three startup correctness checks the scanner
// depends on before it starts searching: hash160 of the known
// generator point, agreement between the batched walk and direct
// scalar multiplication, and agreement between batch-affine conversion
// and direct scalar multiplication for several points at once. It
// returns an error describing the first mismatch found rather than
// panicking, so the caller can log and exit cleanly.
func SelfTest() error {
	g := Generator()
	gCompressed := Compress(&g)
	gotHash := hash160.Hash160(gCompressed)
	if gotHash != generatorHash160 {
		return fmt.Errorf("hash160(G) self-test failed: got %x, want %x", gotHash, generatorHash160)
	}

	var twoGByStep secp256k1.JacobianPoint
	Step(&g, &twoGByStep)

	twoGByMul := SeedMul(uint256.NewInt(2))
	pts := []secp256k1.JacobianPoint{twoGByStep, twoGByMul}
	BatchToAffine(pts, make([]secp256k1.FieldVal, len(pts)))
	if pts[0].X != pts[1].X || pts[0].Y != pts[1].Y {
		return fmt.Errorf("2G self-test failed: step-doubled G and scalar-multiplied 2G disagree")
	}

	batch := make([]secp256k1.JacobianPoint, 4)
	cur := g
	for i := range batch {
		if i == 0 {
			batch[0] = g
			continue
		}
		var next secp256k1.JacobianPoint
		Step(&cur, &next)
		cur = next
		batch[i] = cur
	}
	running := make([]secp256k1.FieldVal, len(batch))
	BatchToAffine(batch, running)

	for i := range batch {
		direct := SeedMul(uint256.NewInt(uint64(i + 1)))
		directAffine := []secp256k1.JacobianPoint{direct}
		BatchToAffine(directAffine, running)
		if batch[i].X != directAffine[0].X || batch[i].Y != directAffine[0].Y {
			return fmt.Errorf("batch self-test failed at index %d: walked point and scalar multiple of %d*G disagree", i, i+1)
		}
	}

	return nil
}
