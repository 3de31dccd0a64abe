package filesource_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fastforwardq/ffq/internal/filesource"
	"github.com/fastforwardq/ffq/internal/weather"
)

func TestTailerReadsAppendedRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weather.csv")

	header := "timestamp,city,aqi,weather_icon,wind_speed,humidity\n"
	if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tailer := filesource.NewTailer(path, 20*time.Millisecond)
	rows := make(chan weather.Data, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- tailer.Run(ctx, rows) }()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("2026-08-06T12:00:00Z,Nagoya,30,sunny,1.5,40\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case d := <-rows:
		if d.City != "Nagoya" || d.AQI != 30 {
			t.Fatalf("tailed row: got %+v", d)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for tailed row")
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run: got %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for Run to return after cancel")
	}
}
