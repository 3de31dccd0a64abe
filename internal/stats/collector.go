// Package stats aggregates per-item processing latency for benchmark
// mode: count, throughput, min/max/average latency, and standard
// deviation via Welford's single-pass method.
package stats

import (
	"math"
	"sync"
	"time"
)

// Collector accumulates latency samples across any number of goroutines
// and reports the aggregate once collection stops.
type Collector struct {
	mu sync.Mutex

	start time.Time
	end   time.Time

	count int64
	mean  float64
	m2    float64 // sum of squared deviations from the running mean
	min   float64
	max   float64
}

// NewCollector starts a collector with its clock running from now.
func NewCollector() *Collector {
	return &Collector{start: time.Now()}
}

// Record adds one latency sample. Safe to call concurrently from any
// number of consumer goroutines.
func (c *Collector) Record(latency time.Duration) {
	ms := float64(latency) / float64(time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.count++
	if c.count == 1 {
		c.min, c.max = ms, ms
	} else {
		if ms < c.min {
			c.min = ms
		}
		if ms > c.max {
			c.max = ms
		}
	}

	// Welford's online mean/variance update.
	delta := ms - c.mean
	c.mean += delta / float64(c.count)
	delta2 := ms - c.mean
	c.m2 += delta * delta2
}

// Stop marks the end of the benchmark run. Results computed before Stop
// is called report throughput against an open-ended elapsed time.
func (c *Collector) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.end = time.Now()
}

// Result is a snapshot of the collector's aggregate statistics.
type Result struct {
	ItemsProcessed int64
	TotalTimeMS    float64
	ThroughputPS   float64
	AvgLatencyMS   float64
	MinLatencyMS   float64
	MaxLatencyMS   float64
	LatencyStdDev  float64
}

// Snapshot computes the current aggregate. Safe to call before or after
// Stop; if Stop has not been called, elapsed time is measured against
// the current instant.
func (c *Collector) Snapshot() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.end
	if end.IsZero() {
		end = time.Now()
	}
	elapsed := end.Sub(c.start)
	elapsedMS := float64(elapsed) / float64(time.Millisecond)

	var variance, stddev, throughput float64
	if c.count > 1 {
		variance = c.m2 / float64(c.count-1)
		stddev = math.Sqrt(variance)
	}
	if elapsed > 0 {
		throughput = float64(c.count) / elapsed.Seconds()
	}

	return Result{
		ItemsProcessed: c.count,
		TotalTimeMS:    elapsedMS,
		ThroughputPS:   throughput,
		AvgLatencyMS:   c.mean,
		MinLatencyMS:   c.min,
		MaxLatencyMS:   c.max,
		LatencyStdDev:  stddev,
	}
}
