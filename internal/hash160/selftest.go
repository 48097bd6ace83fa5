package hash160

import "fmt"

// knownVector is the compressed secp256k1 generator point, hashed by
// both the fixed-block path and Reference to catch a broken fixed-block
// specialization independently of internal/curve's own self-test.
var knownVector = [33]byte{
	0x02, 0x79, 0xbe, 0x66, 0x7e, 0xf9, 0xdc, 0xbb,
	0xac, 0x55, 0xa0, 0x62, 0x95, 0xce, 0x87, 0x0b,
	0x07, 0x02, 0x9b, 0xfc, 0xdb, 0x2d, 0xce, 0x28,
	0xd9, 0x59, 0xf2, 0x81, 0x5b, 0x16, 0xf8, 0x17,
	0x98,
}

// SelfTest checks the fixed-block SHA-256/RIPEMD-160 specialization
// against the independent standard-library oracle on a known vector.
// It returns an error describing the mismatch rather than panicking.
func SelfTest() error {
	got := Hash160(knownVector)
	want := Reference(knownVector[:])
	if got != want {
		return fmt.Errorf("hash160 self-test failed: fixed-block path gave %x, reference gave %x", got, want)
	}
	return nil
}
