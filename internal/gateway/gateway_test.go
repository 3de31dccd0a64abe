package gateway_test

import (
	"context"
	"testing"
	"time"

	"github.com/fastforwardq/ffq/internal/gateway"
)

func TestSimulationSourceProducesValidRecords(t *testing.T) {
	var src gateway.Source = gateway.NewSimulationSource(5 * time.Millisecond)
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		d, err := src.Next(ctx)
		if err != nil {
			t.Fatalf("Next(%d): %v", i, err)
		}
		if !d.Valid {
			t.Fatalf("Next(%d): Valid = false", i)
		}
		if d.AQI < 0 || d.AQI >= 300 {
			t.Fatalf("Next(%d): AQI out of range: %d", i, d.AQI)
		}
	}
}

func TestSimulationSourceRespectsContextCancellation(t *testing.T) {
	src := gateway.NewSimulationSource(time.Hour)
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Next(ctx); err != context.Canceled {
		t.Fatalf("Next after cancel: got %v, want context.Canceled", err)
	}
}
