package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.BatchSize != defaultBatchSize || c.NumBatches != defaultNumBatches {
		t.Fatalf("unexpected default batch geometry: %d x %d", c.BatchSize, c.NumBatches)
	}
	if c.FlushThreshold != defaultFlushThreshold {
		t.Fatalf("unexpected default flush threshold: %d", c.FlushThreshold)
	}
	if c.Workers != defaultWorkers {
		t.Fatalf("default Workers = %d, want %d", c.Workers, defaultWorkers)
	}
}

func TestValidateClampsWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"below minimum", 0, minWorkers},
		{"negative", -5, minWorkers},
		{"above maximum", 1000, maxWorkers},
		{"in range", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			c.Workers = tt.workers
			if err := c.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if c.Workers != tt.want {
				t.Errorf("Workers = %d, want %d", c.Workers, tt.want)
			}
		})
	}
}

func TestValidateRejectsBadBatchGeometry(t *testing.T) {
	tests := []struct {
		name       string
		batchSize  int
		numBatches int
	}{
		{"zero batch size", 0, 2048},
		{"negative num batches", 2048, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			c.BatchSize = tt.batchSize
			c.NumBatches = tt.numBatches
			if err := c.Validate(); err != ErrInvalidBatchGeometry {
				t.Errorf("Validate() = %v, want ErrInvalidBatchGeometry", err)
			}
		})
	}
}
