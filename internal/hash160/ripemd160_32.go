package hash160

var rmd160H0 = [5]uint32{
	0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0,
}

func rmdF(x, y, z uint32) uint32 { return x ^ y ^ z }
func rmdG(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func rmdH(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func rmdI(x, y, z uint32) uint32 { return (x & z) | (y & ^z) }
func rmdJ(x, y, z uint32) uint32 { return x ^ (y | ^z) }

func rol32(x uint32, n uint) uint32 { return (x << n) | (x >> (32 - n)) }

// rmdRound performs one RIPEMD-160 step: a += f + x + k; a = rol(a,s) + e;
// c = rol(c, 10). Only a and c are mutated; b, d are inputs to the round
// function the caller already folded into f.
func rmdRound(a *uint32, e, f, x, k uint32, s uint, c *uint32) {
	*a += f + x + k
	*a = rol32(*a, s) + e
	*c = rol32(*c, 10)
}

// RIPEMD160_32 computes RIPEMD-160 over exactly 32 bytes of input: a
// SHA-256 digest. As with SHA256_33, the single 64-byte block and its
// padding (0x80, zeros, then the little-endian 256-bit length) are laid
// out directly instead of going through a streaming implementation.
func RIPEMD160_32(input *[32]byte) [20]byte {
	var x [16]uint32
	for i := 0; i < 8; i++ {
		x[i] = uint32(input[i*4]) | uint32(input[i*4+1])<<8 |
			uint32(input[i*4+2])<<16 | uint32(input[i*4+3])<<24
	}
	x[8] = 0x00000080
	x[9], x[10], x[11] = 0, 0, 0
	x[12], x[13] = 0, 0
	x[14] = 256
	x[15] = 0

	al, bl, cl, dl, el := rmd160H0[0], rmd160H0[1], rmd160H0[2], rmd160H0[3], rmd160H0[4]
	ar, br, cr, dr, er := rmd160H0[0], rmd160H0[1], rmd160H0[2], rmd160H0[3], rmd160H0[4]

	// Left line, round 1: F, K=0x00000000.
	rmdRound(&al, el, rmdF(bl, cl, dl), x[0], 0x00000000, 11, &cl)
	rmdRound(&el, dl, rmdF(al, bl, cl), x[1], 0x00000000, 14, &bl)
	rmdRound(&dl, cl, rmdF(el, al, bl), x[2], 0x00000000, 15, &al)
	rmdRound(&cl, bl, rmdF(dl, el, al), x[3], 0x00000000, 12, &el)
	rmdRound(&bl, al, rmdF(cl, dl, el), x[4], 0x00000000, 5, &dl)
	rmdRound(&al, el, rmdF(bl, cl, dl), x[5], 0x00000000, 8, &cl)
	rmdRound(&el, dl, rmdF(al, bl, cl), x[6], 0x00000000, 7, &bl)
	rmdRound(&dl, cl, rmdF(el, al, bl), x[7], 0x00000000, 9, &al)
	rmdRound(&cl, bl, rmdF(dl, el, al), x[8], 0x00000000, 11, &el)
	rmdRound(&bl, al, rmdF(cl, dl, el), x[9], 0x00000000, 13, &dl)
	rmdRound(&al, el, rmdF(bl, cl, dl), x[10], 0x00000000, 14, &cl)
	rmdRound(&el, dl, rmdF(al, bl, cl), x[11], 0x00000000, 15, &bl)
	rmdRound(&dl, cl, rmdF(el, al, bl), x[12], 0x00000000, 6, &al)
	rmdRound(&cl, bl, rmdF(dl, el, al), x[13], 0x00000000, 7, &el)
	rmdRound(&bl, al, rmdF(cl, dl, el), x[14], 0x00000000, 9, &dl)
	rmdRound(&al, el, rmdF(bl, cl, dl), x[15], 0x00000000, 8, &cl)

	// Left line, round 2: G, K=0x5A827999.
	rmdRound(&el, dl, rmdG(al, bl, cl), x[7], 0x5A827999, 7, &bl)
	rmdRound(&dl, cl, rmdG(el, al, bl), x[4], 0x5A827999, 6, &al)
	rmdRound(&cl, bl, rmdG(dl, el, al), x[13], 0x5A827999, 8, &el)
	rmdRound(&bl, al, rmdG(cl, dl, el), x[1], 0x5A827999, 13, &dl)
	rmdRound(&al, el, rmdG(bl, cl, dl), x[10], 0x5A827999, 11, &cl)
	rmdRound(&el, dl, rmdG(al, bl, cl), x[6], 0x5A827999, 9, &bl)
	rmdRound(&dl, cl, rmdG(el, al, bl), x[15], 0x5A827999, 7, &al)
	rmdRound(&cl, bl, rmdG(dl, el, al), x[3], 0x5A827999, 15, &el)
	rmdRound(&bl, al, rmdG(cl, dl, el), x[12], 0x5A827999, 7, &dl)
	rmdRound(&al, el, rmdG(bl, cl, dl), x[0], 0x5A827999, 12, &cl)
	rmdRound(&el, dl, rmdG(al, bl, cl), x[9], 0x5A827999, 15, &bl)
	rmdRound(&dl, cl, rmdG(el, al, bl), x[5], 0x5A827999, 9, &al)
	rmdRound(&cl, bl, rmdG(dl, el, al), x[2], 0x5A827999, 11, &el)
	rmdRound(&bl, al, rmdG(cl, dl, el), x[14], 0x5A827999, 7, &dl)
	rmdRound(&al, el, rmdG(bl, cl, dl), x[11], 0x5A827999, 13, &cl)
	rmdRound(&el, dl, rmdG(al, bl, cl), x[8], 0x5A827999, 12, &bl)

	// Left line, round 3: H, K=0x6ED9EBA1.
	rmdRound(&dl, cl, rmdH(el, al, bl), x[3], 0x6ED9EBA1, 11, &al)
	rmdRound(&cl, bl, rmdH(dl, el, al), x[10], 0x6ED9EBA1, 13, &el)
	rmdRound(&bl, al, rmdH(cl, dl, el), x[14], 0x6ED9EBA1, 6, &dl)
	rmdRound(&al, el, rmdH(bl, cl, dl), x[4], 0x6ED9EBA1, 7, &cl)
	rmdRound(&el, dl, rmdH(al, bl, cl), x[9], 0x6ED9EBA1, 14, &bl)
	rmdRound(&dl, cl, rmdH(el, al, bl), x[15], 0x6ED9EBA1, 9, &al)
	rmdRound(&cl, bl, rmdH(dl, el, al), x[8], 0x6ED9EBA1, 13, &el)
	rmdRound(&bl, al, rmdH(cl, dl, el), x[1], 0x6ED9EBA1, 15, &dl)
	rmdRound(&al, el, rmdH(bl, cl, dl), x[2], 0x6ED9EBA1, 14, &cl)
	rmdRound(&el, dl, rmdH(al, bl, cl), x[7], 0x6ED9EBA1, 8, &bl)
	rmdRound(&dl, cl, rmdH(el, al, bl), x[0], 0x6ED9EBA1, 13, &al)
	rmdRound(&cl, bl, rmdH(dl, el, al), x[6], 0x6ED9EBA1, 6, &el)
	rmdRound(&bl, al, rmdH(cl, dl, el), x[13], 0x6ED9EBA1, 5, &dl)
	rmdRound(&al, el, rmdH(bl, cl, dl), x[11], 0x6ED9EBA1, 12, &cl)
	rmdRound(&el, dl, rmdH(al, bl, cl), x[5], 0x6ED9EBA1, 7, &bl)
	rmdRound(&dl, cl, rmdH(el, al, bl), x[12], 0x6ED9EBA1, 5, &al)

	// Left line, round 4: I, K=0x8F1BBCDC.
	rmdRound(&cl, bl, rmdI(dl, el, al), x[1], 0x8F1BBCDC, 11, &el)
	rmdRound(&bl, al, rmdI(cl, dl, el), x[9], 0x8F1BBCDC, 12, &dl)
	rmdRound(&al, el, rmdI(bl, cl, dl), x[11], 0x8F1BBCDC, 14, &cl)
	rmdRound(&el, dl, rmdI(al, bl, cl), x[10], 0x8F1BBCDC, 15, &bl)
	rmdRound(&dl, cl, rmdI(el, al, bl), x[0], 0x8F1BBCDC, 14, &al)
	rmdRound(&cl, bl, rmdI(dl, el, al), x[8], 0x8F1BBCDC, 15, &el)
	rmdRound(&bl, al, rmdI(cl, dl, el), x[12], 0x8F1BBCDC, 9, &dl)
	rmdRound(&al, el, rmdI(bl, cl, dl), x[4], 0x8F1BBCDC, 8, &cl)
	rmdRound(&el, dl, rmdI(al, bl, cl), x[13], 0x8F1BBCDC, 9, &bl)
	rmdRound(&dl, cl, rmdI(el, al, bl), x[3], 0x8F1BBCDC, 14, &al)
	rmdRound(&cl, bl, rmdI(dl, el, al), x[7], 0x8F1BBCDC, 5, &el)
	rmdRound(&bl, al, rmdI(cl, dl, el), x[15], 0x8F1BBCDC, 6, &dl)
	rmdRound(&al, el, rmdI(bl, cl, dl), x[14], 0x8F1BBCDC, 8, &cl)
	rmdRound(&el, dl, rmdI(al, bl, cl), x[5], 0x8F1BBCDC, 6, &bl)
	rmdRound(&dl, cl, rmdI(el, al, bl), x[6], 0x8F1BBCDC, 5, &al)
	rmdRound(&cl, bl, rmdI(dl, el, al), x[2], 0x8F1BBCDC, 12, &el)

	// Left line, round 5: J, K=0xA953FD4E.
	rmdRound(&bl, al, rmdJ(cl, dl, el), x[4], 0xA953FD4E, 9, &dl)
	rmdRound(&al, el, rmdJ(bl, cl, dl), x[0], 0xA953FD4E, 15, &cl)
	rmdRound(&el, dl, rmdJ(al, bl, cl), x[5], 0xA953FD4E, 5, &bl)
	rmdRound(&dl, cl, rmdJ(el, al, bl), x[9], 0xA953FD4E, 11, &al)
	rmdRound(&cl, bl, rmdJ(dl, el, al), x[7], 0xA953FD4E, 6, &el)
	rmdRound(&bl, al, rmdJ(cl, dl, el), x[12], 0xA953FD4E, 8, &dl)
	rmdRound(&al, el, rmdJ(bl, cl, dl), x[2], 0xA953FD4E, 13, &cl)
	rmdRound(&el, dl, rmdJ(al, bl, cl), x[10], 0xA953FD4E, 12, &bl)
	rmdRound(&dl, cl, rmdJ(el, al, bl), x[14], 0xA953FD4E, 5, &al)
	rmdRound(&cl, bl, rmdJ(dl, el, al), x[1], 0xA953FD4E, 12, &el)
	rmdRound(&bl, al, rmdJ(cl, dl, el), x[3], 0xA953FD4E, 13, &dl)
	rmdRound(&al, el, rmdJ(bl, cl, dl), x[8], 0xA953FD4E, 14, &cl)
	rmdRound(&el, dl, rmdJ(al, bl, cl), x[11], 0xA953FD4E, 11, &bl)
	rmdRound(&dl, cl, rmdJ(el, al, bl), x[6], 0xA953FD4E, 8, &al)
	rmdRound(&cl, bl, rmdJ(dl, el, al), x[15], 0xA953FD4E, 5, &el)
	rmdRound(&bl, al, rmdJ(cl, dl, el), x[13], 0xA953FD4E, 6, &dl)

	// Right line, round 1: J, K=0x50A28BE6.
	rmdRound(&ar, er, rmdJ(br, cr, dr), x[5], 0x50A28BE6, 8, &cr)
	rmdRound(&er, dr, rmdJ(ar, br, cr), x[14], 0x50A28BE6, 9, &br)
	rmdRound(&dr, cr, rmdJ(er, ar, br), x[7], 0x50A28BE6, 9, &ar)
	rmdRound(&cr, br, rmdJ(dr, er, ar), x[0], 0x50A28BE6, 11, &er)
	rmdRound(&br, ar, rmdJ(cr, dr, er), x[9], 0x50A28BE6, 13, &dr)
	rmdRound(&ar, er, rmdJ(br, cr, dr), x[2], 0x50A28BE6, 15, &cr)
	rmdRound(&er, dr, rmdJ(ar, br, cr), x[11], 0x50A28BE6, 15, &br)
	rmdRound(&dr, cr, rmdJ(er, ar, br), x[4], 0x50A28BE6, 5, &ar)
	rmdRound(&cr, br, rmdJ(dr, er, ar), x[13], 0x50A28BE6, 7, &er)
	rmdRound(&br, ar, rmdJ(cr, dr, er), x[6], 0x50A28BE6, 7, &dr)
	rmdRound(&ar, er, rmdJ(br, cr, dr), x[15], 0x50A28BE6, 8, &cr)
	rmdRound(&er, dr, rmdJ(ar, br, cr), x[8], 0x50A28BE6, 11, &br)
	rmdRound(&dr, cr, rmdJ(er, ar, br), x[1], 0x50A28BE6, 14, &ar)
	rmdRound(&cr, br, rmdJ(dr, er, ar), x[10], 0x50A28BE6, 14, &er)
	rmdRound(&br, ar, rmdJ(cr, dr, er), x[3], 0x50A28BE6, 12, &dr)
	rmdRound(&ar, er, rmdJ(br, cr, dr), x[12], 0x50A28BE6, 6, &cr)

	// Right line, round 2: I, K=0x5C4DD124.
	rmdRound(&er, dr, rmdI(ar, br, cr), x[6], 0x5C4DD124, 9, &br)
	rmdRound(&dr, cr, rmdI(er, ar, br), x[11], 0x5C4DD124, 13, &ar)
	rmdRound(&cr, br, rmdI(dr, er, ar), x[3], 0x5C4DD124, 15, &er)
	rmdRound(&br, ar, rmdI(cr, dr, er), x[7], 0x5C4DD124, 7, &dr)
	rmdRound(&ar, er, rmdI(br, cr, dr), x[0], 0x5C4DD124, 12, &cr)
	rmdRound(&er, dr, rmdI(ar, br, cr), x[13], 0x5C4DD124, 8, &br)
	rmdRound(&dr, cr, rmdI(er, ar, br), x[5], 0x5C4DD124, 9, &ar)
	rmdRound(&cr, br, rmdI(dr, er, ar), x[10], 0x5C4DD124, 11, &er)
	rmdRound(&br, ar, rmdI(cr, dr, er), x[14], 0x5C4DD124, 7, &dr)
	rmdRound(&ar, er, rmdI(br, cr, dr), x[15], 0x5C4DD124, 7, &cr)
	rmdRound(&er, dr, rmdI(ar, br, cr), x[8], 0x5C4DD124, 12, &br)
	rmdRound(&dr, cr, rmdI(er, ar, br), x[12], 0x5C4DD124, 7, &ar)
	rmdRound(&cr, br, rmdI(dr, er, ar), x[4], 0x5C4DD124, 6, &er)
	rmdRound(&br, ar, rmdI(cr, dr, er), x[9], 0x5C4DD124, 15, &dr)
	rmdRound(&ar, er, rmdI(br, cr, dr), x[1], 0x5C4DD124, 13, &cr)
	rmdRound(&er, dr, rmdI(ar, br, cr), x[2], 0x5C4DD124, 11, &br)

	// Right line, round 3: H, K=0x6D703EF3.
	rmdRound(&dr, cr, rmdH(er, ar, br), x[15], 0x6D703EF3, 9, &ar)
	rmdRound(&cr, br, rmdH(dr, er, ar), x[5], 0x6D703EF3, 7, &er)
	rmdRound(&br, ar, rmdH(cr, dr, er), x[1], 0x6D703EF3, 15, &dr)
	rmdRound(&ar, er, rmdH(br, cr, dr), x[3], 0x6D703EF3, 11, &cr)
	rmdRound(&er, dr, rmdH(ar, br, cr), x[7], 0x6D703EF3, 8, &br)
	rmdRound(&dr, cr, rmdH(er, ar, br), x[14], 0x6D703EF3, 6, &ar)
	rmdRound(&cr, br, rmdH(dr, er, ar), x[6], 0x6D703EF3, 6, &er)
	rmdRound(&br, ar, rmdH(cr, dr, er), x[9], 0x6D703EF3, 14, &dr)
	rmdRound(&ar, er, rmdH(br, cr, dr), x[11], 0x6D703EF3, 12, &cr)
	rmdRound(&er, dr, rmdH(ar, br, cr), x[8], 0x6D703EF3, 13, &br)
	rmdRound(&dr, cr, rmdH(er, ar, br), x[12], 0x6D703EF3, 5, &ar)
	rmdRound(&cr, br, rmdH(dr, er, ar), x[2], 0x6D703EF3, 14, &er)
	rmdRound(&br, ar, rmdH(cr, dr, er), x[10], 0x6D703EF3, 13, &dr)
	rmdRound(&ar, er, rmdH(br, cr, dr), x[0], 0x6D703EF3, 13, &cr)
	rmdRound(&er, dr, rmdH(ar, br, cr), x[4], 0x6D703EF3, 7, &br)
	rmdRound(&dr, cr, rmdH(er, ar, br), x[13], 0x6D703EF3, 5, &ar)

	// Right line, round 4: G, K=0x7A6D76E9.
	rmdRound(&cr, br, rmdG(dr, er, ar), x[8], 0x7A6D76E9, 15, &er)
	rmdRound(&br, ar, rmdG(cr, dr, er), x[6], 0x7A6D76E9, 5, &dr)
	rmdRound(&ar, er, rmdG(br, cr, dr), x[4], 0x7A6D76E9, 8, &cr)
	rmdRound(&er, dr, rmdG(ar, br, cr), x[1], 0x7A6D76E9, 11, &br)
	rmdRound(&dr, cr, rmdG(er, ar, br), x[3], 0x7A6D76E9, 14, &ar)
	rmdRound(&cr, br, rmdG(dr, er, ar), x[11], 0x7A6D76E9, 14, &er)
	rmdRound(&br, ar, rmdG(cr, dr, er), x[15], 0x7A6D76E9, 6, &dr)
	rmdRound(&ar, er, rmdG(br, cr, dr), x[0], 0x7A6D76E9, 14, &cr)
	rmdRound(&er, dr, rmdG(ar, br, cr), x[5], 0x7A6D76E9, 6, &br)
	rmdRound(&dr, cr, rmdG(er, ar, br), x[12], 0x7A6D76E9, 9, &ar)
	rmdRound(&cr, br, rmdG(dr, er, ar), x[2], 0x7A6D76E9, 12, &er)
	rmdRound(&br, ar, rmdG(cr, dr, er), x[13], 0x7A6D76E9, 9, &dr)
	rmdRound(&ar, er, rmdG(br, cr, dr), x[9], 0x7A6D76E9, 12, &cr)
	rmdRound(&er, dr, rmdG(ar, br, cr), x[7], 0x7A6D76E9, 5, &br)
	rmdRound(&dr, cr, rmdG(er, ar, br), x[10], 0x7A6D76E9, 15, &ar)
	rmdRound(&cr, br, rmdG(dr, er, ar), x[14], 0x7A6D76E9, 8, &er)

	// Right line, round 5: F, K=0x00000000.
	rmdRound(&br, ar, rmdF(cr, dr, er), x[12], 0x00000000, 8, &dr)
	rmdRound(&ar, er, rmdF(br, cr, dr), x[15], 0x00000000, 5, &cr)
	rmdRound(&er, dr, rmdF(ar, br, cr), x[10], 0x00000000, 12, &br)
	rmdRound(&dr, cr, rmdF(er, ar, br), x[4], 0x00000000, 9, &ar)
	rmdRound(&cr, br, rmdF(dr, er, ar), x[1], 0x00000000, 12, &er)
	rmdRound(&br, ar, rmdF(cr, dr, er), x[5], 0x00000000, 5, &dr)
	rmdRound(&ar, er, rmdF(br, cr, dr), x[8], 0x00000000, 14, &cr)
	rmdRound(&er, dr, rmdF(ar, br, cr), x[7], 0x00000000, 6, &br)
	rmdRound(&dr, cr, rmdF(er, ar, br), x[6], 0x00000000, 8, &ar)
	rmdRound(&cr, br, rmdF(dr, er, ar), x[2], 0x00000000, 13, &er)
	rmdRound(&br, ar, rmdF(cr, dr, er), x[13], 0x00000000, 6, &dr)
	rmdRound(&ar, er, rmdF(br, cr, dr), x[14], 0x00000000, 5, &cr)
	rmdRound(&er, dr, rmdF(ar, br, cr), x[0], 0x00000000, 15, &br)
	rmdRound(&dr, cr, rmdF(er, ar, br), x[3], 0x00000000, 13, &ar)
	rmdRound(&cr, br, rmdF(dr, er, ar), x[9], 0x00000000, 11, &er)
	rmdRound(&br, ar, rmdF(cr, dr, er), x[11], 0x00000000, 11, &dr)

	h0 := rmd160H0[1] + cl + dr
	h1 := rmd160H0[2] + dl + er
	h2 := rmd160H0[3] + el + ar
	h3 := rmd160H0[4] + al + br
	h4 := rmd160H0[0] + bl + cr

	var out [20]byte
	out[0], out[1], out[2], out[3] = byte(h0), byte(h0>>8), byte(h0>>16), byte(h0>>24)
	out[4], out[5], out[6], out[7] = byte(h1), byte(h1>>8), byte(h1>>16), byte(h1>>24)
	out[8], out[9], out[10], out[11] = byte(h2), byte(h2>>8), byte(h2>>16), byte(h2>>24)
	out[12], out[13], out[14], out[15] = byte(h3), byte(h3>>8), byte(h3>>16), byte(h3>>24)
	out[16], out[17], out[18], out[19] = byte(h4), byte(h4>>8), byte(h4>>16), byte(h4>>24)
	return out
}
