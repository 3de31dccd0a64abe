package ffq

import "errors"

// ErrConfigInvalid is returned by Open (and NewRegion) when the requested
// capacity is smaller than the minimum of 2. Attach takes its capacity
// from the region and does not return it.
var ErrConfigInvalid = errors.New("ffq: capacity must be >= 2")

// ErrRegionAllocFailed is returned by Attach when given a nil region,
// standing in for a failed remote-window attach in a distributed
// deployment.
var ErrRegionAllocFailed = errors.New("ffq: region is nil")

// ErrRetryExhausted is returned by Dequeue when the advisory retry cap
// (Builder.WithMaxRetries) fires. It is not a queue-correctness failure:
// the rank the caller was waiting on is still claimed by it and may be
// abandoned or retried by the embedding.
//
// ErrRetryExhausted must never be observed under an execution where the
// producer keeps making progress; the cap exists purely as a diagnostic
// for embeddings that want a bounded wait instead of an unbounded one.
var ErrRetryExhausted = errors.New("ffq: dequeue retry cap exceeded")
