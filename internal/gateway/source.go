// Package gateway is the external data feed that hands records to the
// producer goroutine: a Kafka-backed source in production, a synthetic
// generator when no broker is configured.
package gateway

import (
	"context"

	"github.com/fastforwardq/ffq/internal/weather"
)

// Source is the black-box external feed this package's callers depend
// on. Next blocks until a record is available or ctx is done.
type Source interface {
	Next(ctx context.Context) (weather.Data, error)
	Close() error
}
