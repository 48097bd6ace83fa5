package hash160

import (
	"math/rand"
	"testing"
)

// TestHash160MatchesReference checks the fixed-block SHA-256/RIPEMD-160
// specialization against the stdlib + x/crypto oracle over random
// 33-byte compressed-pubkey-shaped inputs.
func TestHash160MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		var pub [33]byte
		rng.Read(pub[:])
		pub[0] = byte(0x02 + i%2) // keep the leading byte plausible, not that it matters to the hash

		got := Hash160(pub)
		want := Reference(pub[:])
		if got != want {
			t.Fatalf("case %d: Hash160(%x) = %x, want %x", i, pub, got, want)
		}
	}
}

// TestHash160KnownVector checks hash160 of the compressed secp256k1
// generator point against its known value.
func TestHash160KnownVector(t *testing.T) {
	// Compressed G = 02 79BE667E F9DCBBAC 55A06295 CE870B07 029BFCDB
	// 2DCE28D9 59F2815B 16F81798
	pub := [33]byte{
		0x02,
		0x79, 0xbe, 0x66, 0x7e, 0xf9, 0xdc, 0xbb, 0xac,
		0x55, 0xa0, 0x62, 0x95, 0xce, 0x87, 0x0b, 0x07,
		0x02, 0x9b, 0xfc, 0xdb, 0x2d, 0xce, 0x28, 0xd9,
		0x59, 0xf2, 0x81, 0x5b, 0x16, 0xf8, 0x17, 0x98,
	}

	want := [20]byte{
		0x75, 0x1e, 0x76, 0xe8, 0x19, 0x91, 0x96, 0xd4,
		0x54, 0x94, 0x1c, 0x45, 0xd1, 0xb3, 0xa3, 0x23,
		0xf1, 0x43, 0x3b, 0xd6,
	}

	got := Hash160(pub)
	if got != want {
		t.Fatalf("Hash160(G) = %x, want %x", got, want)
	}

	ref := Reference(pub[:])
	if ref != want {
		t.Fatalf("Reference(G) = %x, want %x", ref, want)
	}
}

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest: %v", err)
	}
}
