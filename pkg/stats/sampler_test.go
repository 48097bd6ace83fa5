package stats

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"puzzle71scan/pkg/types"
)

func TestFormatLayout(t *testing.T) {
	s := types.ScanStats{
		Elapsed:      12500 * time.Millisecond,
		TotalChecked: 123456789,
		AverageRate:  9.87,
		InstantRate:  10.5,
	}
	line := Format(s)
	want := "[   12.5s] Checked:      123456789 | Avg:     9.87 Mk/s | Now:    10.50 Mk/s"
	if line != want {
		t.Fatalf("Format() = %q, want %q", line, want)
	}
}

func TestSamplerRunEmitsAtLeastOneLine(t *testing.T) {
	total := &atomic.Uint64{}
	total.Store(1000)

	lines := make(chan string, 10)
	sampler := NewSampler(total, 10*time.Millisecond, time.Now(), func(s string) {
		lines <- s
	})

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()
	sampler.Run(ctx)

	select {
	case <-lines:
	default:
		t.Fatal("expected at least one printed line within the sampler's run window")
	}
}
