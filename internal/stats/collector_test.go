package stats_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fastforwardq/ffq/internal/stats"
)

func TestCollectorSingleSample(t *testing.T) {
	c := stats.NewCollector()
	c.Record(10 * time.Millisecond)
	c.Stop()

	r := c.Snapshot()
	if r.ItemsProcessed != 1 {
		t.Fatalf("ItemsProcessed: got %d, want 1", r.ItemsProcessed)
	}
	if r.AvgLatencyMS != 10 {
		t.Fatalf("AvgLatencyMS: got %v, want 10", r.AvgLatencyMS)
	}
	if r.MinLatencyMS != 10 || r.MaxLatencyMS != 10 {
		t.Fatalf("Min/Max: got %v/%v, want 10/10", r.MinLatencyMS, r.MaxLatencyMS)
	}
	if r.LatencyStdDev != 0 {
		t.Fatalf("LatencyStdDev: got %v, want 0", r.LatencyStdDev)
	}
}

func TestCollectorMinMaxAvg(t *testing.T) {
	c := stats.NewCollector()
	for _, ms := range []int{5, 15, 10} {
		c.Record(time.Duration(ms) * time.Millisecond)
	}
	c.Stop()

	r := c.Snapshot()
	if r.ItemsProcessed != 3 {
		t.Fatalf("ItemsProcessed: got %d, want 3", r.ItemsProcessed)
	}
	if r.MinLatencyMS != 5 {
		t.Fatalf("MinLatencyMS: got %v, want 5", r.MinLatencyMS)
	}
	if r.MaxLatencyMS != 15 {
		t.Fatalf("MaxLatencyMS: got %v, want 15", r.MaxLatencyMS)
	}
	if r.AvgLatencyMS != 10 {
		t.Fatalf("AvgLatencyMS: got %v, want 10", r.AvgLatencyMS)
	}
	if r.LatencyStdDev <= 0 {
		t.Fatalf("LatencyStdDev: got %v, want > 0", r.LatencyStdDev)
	}
}

func TestCollectorConcurrentRecord(t *testing.T) {
	c := stats.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Record(time.Millisecond)
		}()
	}
	wg.Wait()
	c.Stop()

	if got := c.Snapshot().ItemsProcessed; got != 50 {
		t.Fatalf("ItemsProcessed: got %d, want 50", got)
	}
}
