package curve

import (
	"math/rand"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"
)

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
}

// TestBatchAgreesWithScalarMult walks a seed forward by Step for batch
// sizes of 1, 2, 4 and 2048 and checks every resulting affine point
// against an independent scalar multiplication of the same key.
func TestBatchAgreesWithScalarMult(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{1, 2, 4, 2048} {
		for trial := 0; trial < 5; trial++ {
			seed := uint256.NewInt(1 + rng.Uint64()%1_000_000)

			pts := make([]secp256k1.JacobianPoint, n)
			cur := SeedMul(seed)
			for i := 0; i < n; i++ {
				pts[i] = cur
				var next secp256k1.JacobianPoint
				Step(&cur, &next)
				cur = next
			}
			running := make([]secp256k1.FieldVal, n)
			BatchToAffine(pts, running)

			for i := 0; i < n; i++ {
				k := new(uint256.Int).AddUint64(seed, uint64(i))
				direct := []secp256k1.JacobianPoint{SeedMul(k)}
				BatchToAffine(direct, make([]secp256k1.FieldVal, 1))

				if pts[i].X != direct[0].X || pts[i].Y != direct[0].Y {
					t.Fatalf("n=%d trial=%d index=%d: batch point disagrees with scalar mult of %s", n, trial, i, k.Hex())
				}
			}
		}
	}
}

func TestCompressRoundTripsSignBit(t *testing.T) {
	g := Generator()
	c := Compress(&g)
	if c[0] != 0x02 {
		t.Fatalf("Compress(G)[0] = %#x, want 0x02 (G.y is even)", c[0])
	}

	var twoG secp256k1.JacobianPoint
	Step(&g, &twoG)
	pts := []secp256k1.JacobianPoint{twoG}
	BatchToAffine(pts, make([]secp256k1.FieldVal, len(pts)))
	_ = Compress(&pts[0]) // must not panic on a freshly affine-converted point
}
