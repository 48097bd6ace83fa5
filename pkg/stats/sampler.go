// Package stats prints periodic scan-rate progress lines, grounded on
// the original scanner's stats thread: every tick it reads the shared
// counter, derives the average and instantaneous rate, and formats
// them for the logger.
package stats

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"puzzle71scan/pkg/types"
)

// Sampler prints a progress line every interval until its context is
// cancelled, using a single shared atomic counter as its only
// synchronization with the workers.
type Sampler struct {
	total    *atomic.Uint64
	interval time.Duration
	start    time.Time
	print    func(string)
}

// NewSampler builds a Sampler that reads total and reports through
// print (typically a *logger.Logger's Printf bound to one argument).
func NewSampler(total *atomic.Uint64, interval time.Duration, start time.Time, print func(string)) *Sampler {
	return &Sampler{total: total, interval: interval, start: start, print: print}
}

// Run blocks, emitting one line per tick, until ctx is done.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var lastChecked uint64
	lastTick := s.start

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			checked := s.total.Load()
			elapsed := now.Sub(s.start)
			sinceLast := now.Sub(lastTick)

			avg := rateMkeysPerSec(checked, elapsed)
			instant := rateMkeysPerSec(checked-lastChecked, sinceLast)

			stat := types.ScanStats{
				Elapsed:      elapsed,
				TotalChecked: checked,
				AverageRate:  avg,
				InstantRate:  instant,
			}
			s.print(Format(stat))

			lastChecked = checked
			lastTick = now
		}
	}
}

func rateMkeysPerSec(keys uint64, d time.Duration) float64 {
	secs := d.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(keys) / secs / 1_000_000
}

// Format renders a stats snapshot in the fixed-width layout the
// original scanner printed to stdout every tick.
func Format(s types.ScanStats) string {
	return fmt.Sprintf("[%7.1fs] Checked: %14d | Avg: %8.2f Mk/s | Now: %8.2f Mk/s",
		s.Elapsed.Seconds(), s.TotalChecked, s.AverageRate, s.InstantRate)
}
