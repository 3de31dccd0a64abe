package weather

import (
	"strconv"
	"strings"
)

// csvFieldCount is the number of columns a valid row carries:
// timestamp,city,aqi,weather_icon,wind_speed,humidity.
const csvFieldCount = 6

// ParseCSVRow parses one already-split CSV row into a Data value. It
// returns false for the header row, for rows with the wrong field
// count, and for rows whose numeric fields do not parse — mirroring
// the original line parser's behavior of silently skipping bad input
// rather than failing the whole feed.
func ParseCSVRow(fields []string) (Data, bool) {
	var d Data
	if len(fields) != csvFieldCount {
		return d, false
	}
	if strings.EqualFold(strings.TrimSpace(fields[0]), "timestamp") {
		return d, false
	}

	aqi, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 32)
	if err != nil {
		return d, false
	}
	windSpeed, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 32)
	if err != nil {
		return d, false
	}
	humidity, err := strconv.ParseInt(strings.TrimSpace(fields[5]), 10, 32)
	if err != nil {
		return d, false
	}

	d = clampFields(Data{
		Timestamp: strings.TrimSpace(fields[0]),
		City:      strings.TrimSpace(fields[1]),
		AQI:       int32(aqi),
		Icon:      strings.TrimSpace(fields[3]),
		WindSpeed: float32(windSpeed),
		Humidity:  int32(humidity),
		Valid:     true,
	})
	return d, true
}
