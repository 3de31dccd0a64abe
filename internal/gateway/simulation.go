package gateway

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/fastforwardq/ffq/internal/weather"
)

var icons = [...]string{"sunny", "cloudy", "rainy", "stormy", "snowy"}
var cities = [...]string{"Tokyo", "Osaka", "Nagoya", "Sapporo", "Fukuoka"}

// SimulationSource generates synthetic weather records at a fixed rate,
// the fallback this package's callers use when no broker is
// configured — matching the original gateway's simulation_mode.
type SimulationSource struct {
	rate   time.Duration
	nextID int
}

// NewSimulationSource creates a generator that produces one record
// every rate. rate <= 0 defaults to 100ms, matching the original's
// simulation_rate of 0.1s.
func NewSimulationSource(rate time.Duration) *SimulationSource {
	if rate <= 0 {
		rate = 100 * time.Millisecond
	}
	return &SimulationSource{rate: rate}
}

// Next blocks for the configured rate (or until ctx is done) and then
// returns one synthetic record.
func (s *SimulationSource) Next(ctx context.Context) (weather.Data, error) {
	select {
	case <-ctx.Done():
		return weather.Data{}, ctx.Err()
	case <-time.After(s.rate):
	}

	s.nextID++
	return weather.Data{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		City:      cities[rand.IntN(len(cities))],
		AQI:       int32(rand.IntN(300)),
		Icon:      icons[rand.IntN(len(icons))],
		WindSpeed: float32(rand.Float64() * 20),
		Humidity:  int32(20 + rand.IntN(60)),
		Valid:     true,
	}, nil
}

// Close is a no-op: SimulationSource owns no resources.
func (s *SimulationSource) Close() error { return nil }

// String identifies the source for logging.
func (s *SimulationSource) String() string {
	return fmt.Sprintf("simulation(rate=%s, generated=%d)", s.rate, s.nextID)
}
