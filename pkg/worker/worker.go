// Package worker implements a single scanning goroutine: draw a random
// chunk seed, walk it key by key with the batched curve engine, and
// hash160-check every candidate against the target.
package worker

import (
	"sync/atomic"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"

	"puzzle71scan/internal/curve"
	"puzzle71scan/internal/entropy"
	"puzzle71scan/internal/hash160"
	"puzzle71scan/pkg/types"
)

// rngSource is the slice of entropy.Source a worker needs; tests
// substitute a deterministic fake to make planted-key recovery exact.
type rngSource interface {
	Next() uint64
}

// Worker owns one goroutine's worth of scanning state: its own RNG
// stream and a reusable point buffer sized to one batch, so steady
// state allocates no point buffers per batch or per chunk.
type Worker struct {
	id    int
	cfg   types.WorkerConfig
	rng   rngSource
	found *atomic.Bool
	total *atomic.Uint64

	jac     []secp256k1.JacobianPoint
	running []secp256k1.FieldVal
}

// Result is what a worker returns when it finds a matching key.
type Result struct {
	Key          *uint256.Int
	TotalChecked uint64
}

// New builds a worker with its own entropy source salted by id, so
// sibling workers never share a random stream. The bool return reports
// whether the entropy source fell back to a non-crypto seed.
func New(id int, cfg types.WorkerConfig, found *atomic.Bool, total *atomic.Uint64) (*Worker, bool) {
	rng, fellBack := entropy.NewSource(uint64(id)*0x9e3779b97f4a7c15 + 1)
	return &Worker{
		id:    id,
		cfg:   cfg,
		rng:   rng,
		found:   found,
		total:   total,
		jac:     make([]secp256k1.JacobianPoint, cfg.BatchSize),
		running: make([]secp256k1.FieldVal, cfg.BatchSize),
	}, fellBack
}

// Run scans chunks until another worker sets the found flag or this
// worker finds the target itself, whichever comes first. It returns
// nil if it exits because of the found flag rather than its own match.
func (w *Worker) Run() *Result {
	chunkSize := curve.ChunkSize(w.cfg.BatchSize, w.cfg.NumBatches)
	bound := curve.SeedBound(chunkSize)

	var localChecked uint64

	for !w.found.Load() {
		seed := w.drawSeed(bound)
		cur := curve.SeedMul(seed)

		for batch := 0; batch < w.cfg.NumBatches; batch++ {
			if w.found.Load() {
				if localChecked > 0 {
					w.total.Add(localChecked)
				}
				return nil
			}

			for i := 0; i < w.cfg.BatchSize; i++ {
				w.jac[i] = cur
				var next secp256k1.JacobianPoint
				curve.Step(&cur, &next)
				cur = next
			}
			curve.BatchToAffine(w.jac, w.running)

			for i := 0; i < w.cfg.BatchSize; i++ {
				pub := curve.Compress(&w.jac[i])
				h := hash160.Hash160(pub)

				localChecked++
				if localChecked >= w.cfg.FlushThreshold {
					w.total.Add(localChecked)
					localChecked = 0
				}

				if !prefixMatches(h, w.cfg.Target.Prefix) {
					continue
				}
				if h != w.cfg.Target.Hash160 {
					continue
				}

				offset := uint64(batch*w.cfg.BatchSize + i)
				key := curve.AddOffset(seed, offset)

				total := w.total.Add(localChecked)
				localChecked = 0
				w.found.Store(true)
				return &Result{Key: key, TotalChecked: total}
			}
		}
	}

	if localChecked > 0 {
		w.total.Add(localChecked)
	}
	return nil
}

func prefixMatches(h [20]byte, prefix [4]byte) bool {
	return h[0] == prefix[0] && h[1] == prefix[1] && h[2] == prefix[2] && h[3] == prefix[3]
}

// drawSeed draws quarter-range selector and low bits from the worker's
// entropy source and rejects draws that would let the chunk overrun
// the puzzle's upper bound, redrawing until one fits.
func (w *Worker) drawSeed(bound *uint256.Int) *uint256.Int {
	for {
		hi2 := w.rng.Next() & 0x3
		lo := w.rng.Next()
		seed := curve.Seed(hi2, lo)
		if seed.Cmp(bound) <= 0 {
			return seed
		}
	}
}
