// Package weather is the demonstration payload fed through the queue: a
// fixed-size air-quality record, its CSV and JSON codecs, and the
// sentinel-value termination protocol.
package weather

// Byte bounds matching the original fixed-size record this payload
// generalizes; kept as a reference point for how much a wire-format
// implementation of descriptor would need to budget per field.
const (
	maxTimestampLen = 33
	maxCityLen      = 64
	maxIconLen      = 32
)

// Data is one air-quality observation: a timestamp, a city, an AQI
// reading, a weather icon code, wind speed, humidity, and a validity
// flag distinguishing a real observation from a zero value.
type Data struct {
	Timestamp string
	City      string
	AQI       int32
	Icon      string
	WindSpeed float32
	Humidity  int32
	Valid     bool
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// clampFields enforces the same byte bounds the original fixed-size
// struct enforced by construction; Go strings have no such bound.
// ParseCSVRow applies it to every row it parses; Data values built
// elsewhere are not clamped.
func clampFields(d Data) Data {
	d.Timestamp = truncate(d.Timestamp, maxTimestampLen-1)
	d.City = truncate(d.City, maxCityLen-1)
	d.Icon = truncate(d.Icon, maxIconLen-1)
	return d
}
