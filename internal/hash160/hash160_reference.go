package hash160

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //lint:ignore SA1019 kept as an independent oracle for the hot-path specialization above
)

// Reference computes RIPEMD160(SHA256(x)) using the standard library and
// golang.org/x/crypto, independently of SHA256_33/RIPEMD160_32. It exists
// to cross-check the fixed-block specialization in tests and in the
// startup SelfTest; nothing in the scanning hot path calls it.
func Reference(x []byte) [20]byte {
	sh := sha256.Sum256(x)

	r := ripemd160.New()
	r.Write(sh[:])

	var out [20]byte
	copy(out[:], r.Sum(nil))
	return out
}
