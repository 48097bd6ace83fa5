package curve

import "github.com/decred/dcrd/dcrec/secp256k1/v4"

// BatchToAffine converts pts from Jacobian to affine coordinates in
// place using Montgomery's simultaneous-inversion trick: one field
// inversion amortized across the whole batch via a running product of
// the Z coordinates, instead of one inversion per point.
//
// running is caller-owned scratch space reused across calls; it must
// have length at least len(pts). Callers that run this once per batch
// in steady state (the worker loop) allocate it once up front rather
// than letting this function allocate on every call.
//
//	running[i] = Z0*Z1*...*Zi
//	inv        = running[n-1]^-1
//	Zi^-1      = running[i-1] * inv   (running[-1] := 1)
//	inv        = inv * Zi             (peel one factor off for the next i)
func BatchToAffine(pts []secp256k1.JacobianPoint, running []secp256k1.FieldVal) {
	n := len(pts)
	if n == 0 {
		return
	}

	running[0].Set(&pts[0].Z)
	for i := 1; i < n; i++ {
		running[i].Mul2(&running[i-1], &pts[i].Z)
	}

	var inv secp256k1.FieldVal
	inv.Set(&running[n-1])
	inv.Inverse()

	for i := n - 1; i >= 1; i-- {
		var zInv secp256k1.FieldVal
		zInv.Mul2(&running[i-1], &inv)
		inv.Mul(&pts[i].Z)
		affineFromZInv(&pts[i], &zInv)
	}
	affineFromZInv(&pts[0], &inv)
}

// affineFromZInv rewrites p's Jacobian X,Y in place as the affine
// x = X*Zinv^2, y = Y*Zinv^3, and sets Z to 1.
func affineFromZInv(p *secp256k1.JacobianPoint, zInv *secp256k1.FieldVal) {
	var zInv2, zInv3 secp256k1.FieldVal
	zInv2.SquareVal(zInv)
	zInv3.Mul2(&zInv2, zInv)

	p.X.Mul(&zInv2).Normalize()
	p.Y.Mul(&zInv3).Normalize()
	p.Z.SetInt(1).Normalize()
}
