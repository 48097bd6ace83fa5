// Package curve implements the batched secp256k1 scanning engine: a
// generator-table seed multiplication, a Jacobian+affine walk stepped by
// G, and the Montgomery simultaneous-inversion trick that converts an
// entire batch to affine coordinates with a single field inversion.
package curve

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"
)

var generator = buildGenerator()

func buildGenerator() secp256k1.JacobianPoint {
	params := secp256k1.S256()
	var g secp256k1.JacobianPoint
	g.X.SetByteSlice(params.Gx.Bytes())
	g.Y.SetByteSlice(params.Gy.Bytes())
	g.Z.SetInt(1)
	return g
}

// Generator returns the secp256k1 base point G in Jacobian form (Z=1).
func Generator() secp256k1.JacobianPoint {
	return generator
}

// Step advances p by one generator addition, computing p+G into result.
// The walk only ever adds G, so the single degenerate case worth
// checking explicitly is p == G itself, which would make the ordinary
// chord-slope addition formula divide by zero; that case is routed to
// point doubling instead.
func Step(p *secp256k1.JacobianPoint, result *secp256k1.JacobianPoint) {
	if sameAffinePoint(p, &generator) {
		secp256k1.DoubleNonConst(p, result)
		return
	}
	secp256k1.AddNonConst(p, &generator, result)
}

// sameAffinePoint reports whether p1 and p2 describe the same affine
// point without performing a field inversion. p2 is assumed to have
// Z == 1, which holds for every call site here since the only point
// ever compared against is the generator.
func sameAffinePoint(p1, p2 *secp256k1.JacobianPoint) bool {
	var z1z1 secp256k1.FieldVal
	z1z1.SquareVal(&p1.Z)

	var u2, s2 secp256k1.FieldVal
	u2.Mul2(&p2.X, &z1z1)
	s2.Mul2(&p2.Y, &z1z1)
	s2.Mul(&p1.Z)

	var u1, s1 secp256k1.FieldVal
	u1.Set(&p1.X)
	s1.Set(&p1.Y)

	u1.Normalize()
	u2.Normalize()
	s1.Normalize()
	s2.Normalize()

	var u1b, u2b, s1b, s2b [32]byte
	u1.PutBytesUnchecked(u1b[:])
	u2.PutBytesUnchecked(u2b[:])
	s1.PutBytesUnchecked(s1b[:])
	s2.PutBytesUnchecked(s2b[:])

	return u1b == u2b && s1b == s2b
}

// SeedMul computes k*G in Jacobian coordinates using the curve's
// precomputed generator-multiplication table, the one full scalar
// multiplication a worker performs per chunk.
func SeedMul(k *uint256.Int) secp256k1.JacobianPoint {
	b := k.Bytes32()
	x, y := secp256k1.S256().ScalarBaseMult(b[:])

	var p secp256k1.JacobianPoint
	p.X.SetByteSlice(x.Bytes())
	p.Y.SetByteSlice(y.Bytes())
	p.Z.SetInt(1)
	return p
}

// Compress serializes an affine point (Z must already be 1) into the
// 33-byte compressed public key form: a sign byte followed by the
// big-endian x-coordinate.
func Compress(p *secp256k1.JacobianPoint) [33]byte {
	var out [33]byte
	if p.Y.IsOdd() {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	p.X.PutBytesUnchecked(out[1:])
	return out
}
