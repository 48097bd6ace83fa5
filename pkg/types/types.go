// Package types holds the shared data types passed between the
// scanner, its workers, the stats sampler and the report writer.
package types

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Target is the hash160 being searched for, plus its derived forms so
// neither the worker hot path nor the report writer has to recompute
// them.
type Target struct {
	Hash160 [20]byte
	// Prefix holds the first 4 bytes of Hash160, kept as a plain byte
	// array rather than a uint32 so the fast-reject comparison in the
	// worker hot path never depends on host endianness.
	Prefix  [4]byte
	Address string
}

// NewTarget derives a Target's address and prefix from a raw hash160,
// failing only if btcutil rejects the hash length (it never will for a
// [20]byte input, but the error return keeps the constructor honest).
func NewTarget(h160 [20]byte) (Target, error) {
	addr, err := btcutil.NewAddressPubKeyHash(h160[:], &chaincfg.MainNetParams)
	if err != nil {
		return Target{}, err
	}

	var prefix [4]byte
	copy(prefix[:], h160[:4])

	return Target{
		Hash160: h160,
		Prefix:  prefix,
		Address: addr.EncodeAddress(),
	}, nil
}

// WorkerConfig is the immutable, shared-by-value configuration every
// worker goroutine starts from.
type WorkerConfig struct {
	Target         Target
	BatchSize      int
	NumBatches     int
	FlushThreshold uint64
}

// FoundRecord is everything the report writer needs to render the
// solution file once a worker finds a matching key.
type FoundRecord struct {
	PrivateKeyHex string
	Target        Target
	Hash160Hex    string
	Found         time.Time
	TotalChecked  uint64
}

// ScanStats is a snapshot handed from the stats sampler to the logger
// on each tick.
type ScanStats struct {
	Elapsed      time.Duration
	TotalChecked uint64
	AverageRate  float64 // Mkeys/sec since the scan started
	InstantRate  float64 // Mkeys/sec since the previous tick
}
