// Package scanner coordinates the worker pool and the stats sampler:
// start every goroutine, collect whichever one finds the key first,
// and report it.
package scanner

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"puzzle71scan/internal/config"
	"puzzle71scan/internal/logger"
	"puzzle71scan/pkg/report"
	"puzzle71scan/pkg/stats"
	"puzzle71scan/pkg/types"
	"puzzle71scan/pkg/worker"
)

// Scanner owns the shared found/total atomics every worker reads and
// writes, and the stats sampler that reports on them.
type Scanner struct {
	cfg    *config.Config
	log    *logger.Logger
	target types.Target

	found atomic.Bool
	total atomic.Uint64
}

// New builds a Scanner for the given target.
func New(cfg *config.Config, log *logger.Logger, target types.Target) *Scanner {
	return &Scanner{cfg: cfg, log: log, target: target}
}

// Run starts cfg.Workers scanning goroutines plus a stats sampler, and
// blocks until one of them finds the target key or Stop is called. After
// writing any found-key report it waits for every worker to return and
// logs a summary line (elapsed time, total keys, average rate). It
// returns nil if it was stopped before anything was found.
func (s *Scanner) Run() *types.FoundRecord {
	start := time.Now()

	statsCtx, cancelStats := context.WithCancel(context.Background())
	defer cancelStats()

	sampler := stats.NewSampler(&s.total, s.cfg.StatsInterval, start, func(line string) {
		s.log.Printf("%s", line)
	})
	go sampler.Run(statsCtx)

	workerCfg := types.WorkerConfig{
		Target:         s.target,
		BatchSize:      s.cfg.BatchSize,
		NumBatches:     s.cfg.NumBatches,
		FlushThreshold: s.cfg.FlushThreshold,
	}

	results := make(chan *worker.Result, s.cfg.Workers)
	var wg sync.WaitGroup

	for i := 0; i < s.cfg.Workers; i++ {
		w, fellBack := worker.New(i, workerCfg, &s.found, &s.total)
		if fellBack && s.cfg.Verbose {
			s.log.Printf("worker %d: crypto/rand unavailable, fell back to a clock-derived seed", i)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if r := w.Run(); r != nil {
				results <- r
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	result, ok := <-results
	cancelStats()

	defer func() {
		for range results {
		}
		elapsed := time.Since(start)
		checked := s.total.Load()
		s.log.Printf("Elapsed: %.1fs | Total keys checked: %d | Avg: %.2f Mk/s",
			elapsed.Seconds(), checked, float64(checked)/elapsed.Seconds()/1_000_000)
	}()

	if !ok || result == nil {
		return nil
	}

	record := &types.FoundRecord{
		PrivateKeyHex: strings.TrimPrefix(result.Key.Hex(), "0x"),
		Target:        s.target,
		Hash160Hex:    report.Hex(s.target.Hash160[:]),
		Found:         time.Now(),
		TotalChecked:  result.TotalChecked,
	}

	if err := report.Write(s.cfg.FoundKeyPath, s.cfg.BackupPaths, *record); err != nil {
		s.log.Printf("failed to write found-key report: %v", err)
		fmt.Fprint(os.Stderr, report.Format(*record))
	}

	return record
}

// Stop tells every worker to stop after its current batch. Safe to
// call more than once and from any goroutine.
func (s *Scanner) Stop() {
	s.found.Store(true)
}
