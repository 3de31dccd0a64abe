package weather

// sentinelCity is an AQI city name no real observation will ever carry;
// a consumer that dequeues a Data with this City, an AQI of -1 and Valid
// false treats it as an end-of-stream marker rather than a real record.
const sentinelCity = "##BENCHMARK_END##"

// Sentinel returns the termination-marker payload. A producer enqueues
// one per consumer after the last real item; a consumer's dequeue loop
// exits the first time it personally dequeues one.
func Sentinel() Data {
	return Data{
		Timestamp: "",
		City:      sentinelCity,
		AQI:       -1,
		Icon:      "",
		WindSpeed: 0,
		Humidity:  0,
		Valid:     false,
	}
}

// IsSentinel reports whether d is the termination marker.
func IsSentinel(d *Data) bool {
	return d.City == sentinelCity && d.AQI == -1 && !d.Valid
}
