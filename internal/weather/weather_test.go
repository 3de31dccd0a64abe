package weather_test

import (
	"strings"
	"testing"

	"github.com/fastforwardq/ffq/internal/weather"
)

func TestParseCSVRowValid(t *testing.T) {
	fields := []string{"2026-08-06T12:00:00Z", "Tokyo", "42", "sunny", "3.5", "55"}
	d, ok := weather.ParseCSVRow(fields)
	if !ok {
		t.Fatalf("ParseCSVRow(%v): got false, want true", fields)
	}
	if d.City != "Tokyo" || d.AQI != 42 || d.Icon != "sunny" || d.Humidity != 55 {
		t.Fatalf("ParseCSVRow: got %+v", d)
	}
	if !d.Valid {
		t.Fatalf("ParseCSVRow: Valid = false, want true")
	}
}

func TestParseCSVRowSkipsHeader(t *testing.T) {
	fields := []string{"timestamp", "city", "aqi", "weather_icon", "wind_speed", "humidity"}
	if _, ok := weather.ParseCSVRow(fields); ok {
		t.Fatalf("ParseCSVRow(header): got true, want false")
	}
}

func TestParseCSVRowRejectsWrongFieldCount(t *testing.T) {
	fields := []string{"2026-08-06T12:00:00Z", "Tokyo"}
	if _, ok := weather.ParseCSVRow(fields); ok {
		t.Fatalf("ParseCSVRow(short row): got true, want false")
	}
}

func TestParseCSVRowRejectsBadNumbers(t *testing.T) {
	fields := []string{"2026-08-06T12:00:00Z", "Tokyo", "not-a-number", "sunny", "3.5", "55"}
	if _, ok := weather.ParseCSVRow(fields); ok {
		t.Fatalf("ParseCSVRow(bad aqi): got true, want false")
	}
}

func TestParseCSVRowClampsOverlongFields(t *testing.T) {
	longCity := strings.Repeat("x", 200)
	fields := []string{"2026-08-06T12:00:00Z", longCity, "10", "sunny", "1.0", "20"}
	d, ok := weather.ParseCSVRow(fields)
	if !ok {
		t.Fatalf("ParseCSVRow: got false, want true")
	}
	if len(d.City) >= len(longCity) {
		t.Fatalf("City not clamped: len=%d", len(d.City))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := weather.Data{
		Timestamp: "2026-08-06T12:00:00Z",
		City:      "Osaka",
		AQI:       17,
		Icon:      "cloudy",
		WindSpeed: 2.25,
		Humidity:  61,
		Valid:     true,
	}
	b, err := weather.EncodeJSON(want)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	got, err := weather.DecodeJSON(b)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}
}

func TestSentinelRecognized(t *testing.T) {
	s := weather.Sentinel()
	if !weather.IsSentinel(&s) {
		t.Fatalf("IsSentinel(Sentinel()): got false, want true")
	}
}

func TestSentinelNotConfusedWithRealData(t *testing.T) {
	d := weather.Data{City: "Kyoto", AQI: 5, Valid: true}
	if weather.IsSentinel(&d) {
		t.Fatalf("IsSentinel(real data): got true, want false")
	}
}
