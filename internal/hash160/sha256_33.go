// Package hash160 provides fixed-length specializations of SHA-256 and
// RIPEMD-160 for the exact input sizes the scanner's hot path needs: a
// 33-byte compressed public key into SHA-256, and its 32-byte digest
// into RIPEMD-160. Specializing to a single fixed block removes the
// general streaming state machine and its padding logic from the loop
// that runs once per candidate key.
package hash160

var sha256H0 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func ror32(x uint32, n uint) uint32 { return (x >> n) | (x << (32 - n)) }

func sha256Ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func sha256Maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }
func bigSigma0(x uint32) uint32       { return ror32(x, 2) ^ ror32(x, 13) ^ ror32(x, 22) }
func bigSigma1(x uint32) uint32       { return ror32(x, 6) ^ ror32(x, 11) ^ ror32(x, 25) }
func smallSigma0(x uint32) uint32     { return ror32(x, 7) ^ ror32(x, 18) ^ (x >> 3) }
func smallSigma1(x uint32) uint32     { return ror32(x, 17) ^ ror32(x, 19) ^ (x >> 10) }

func putBE32(dst []byte, v uint32) {
	dst[0] = byte(v >> 24)
	dst[1] = byte(v >> 16)
	dst[2] = byte(v >> 8)
	dst[3] = byte(v)
}

// SHA256_33 computes SHA-256 over exactly 33 bytes of input: a
// compressed secp256k1 public key. The padding for a 33-byte message
// (0x80 followed by zeros, then the big-endian 264-bit length) is baked
// into the block layout directly rather than computed generically.
func SHA256_33(input *[33]byte) [32]byte {
	var block [64]byte
	copy(block[:33], input[:])
	block[33] = 0x80
	// block[34:62] already zero.
	block[62] = 0x01
	block[63] = 0x08 // 33*8 = 264 bits = 0x0108

	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 |
			uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
	}
	for i := 16; i < 64; i++ {
		w[i] = smallSigma1(w[i-2]) + w[i-7] + smallSigma0(w[i-15]) + w[i-16]
	}

	a, b, c, d := sha256H0[0], sha256H0[1], sha256H0[2], sha256H0[3]
	e, f, g, h := sha256H0[4], sha256H0[5], sha256H0[6], sha256H0[7]

	for i := 0; i < 64; i++ {
		t1 := h + bigSigma1(e) + sha256Ch(e, f, g) + sha256K[i] + w[i]
		t2 := bigSigma0(a) + sha256Maj(a, b, c)
		h, g, f = g, f, e
		e = d + t1
		d, c, b = c, b, a
		a = t1 + t2
	}

	var out [32]byte
	putBE32(out[0:4], a+sha256H0[0])
	putBE32(out[4:8], b+sha256H0[1])
	putBE32(out[8:12], c+sha256H0[2])
	putBE32(out[12:16], d+sha256H0[3])
	putBE32(out[16:20], e+sha256H0[4])
	putBE32(out[20:24], f+sha256H0[5])
	putBE32(out[24:28], g+sha256H0[6])
	putBE32(out[28:32], h+sha256H0[7])
	return out
}
