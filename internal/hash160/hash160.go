package hash160

// Hash160 computes RIPEMD160(SHA256(pub)), the Bitcoin public-key-hash
// used both as the scanner's match target and as input to P2PKH address
// encoding.
func Hash160(pub [33]byte) [20]byte {
	digest := SHA256_33(&pub)
	return RIPEMD160_32(&digest)
}
