package ffq

// Handle binds a goroutine to a queue Region and caches everything that
// would otherwise need to be recomputed on every Enqueue/Dequeue call:
// the region's capacity N and the payload descriptor. Exactly one Handle
// per goroutine that touches the queue; Handles are not safe to share
// between goroutines with different roles (a consumer Handle must not be
// used to Enqueue, and vice versa).
type Handle[P any] struct {
	region     *Region[P]
	n          uint64
	descriptor descriptor[P]
	producer   bool
	opts       handleOptions

	// tail is the producer's private view of the next rank to assign.
	// It is never read by any other goroutine; the region's tailMirror
	// is the only externally visible (and merely advisory) trace of it.
	tail uint64
}

// Open creates a new queue region sized from b's capacity and returns a
// producer Handle bound to it. The capacity must be at least 2.
//
// The goroutine that calls Open is the region's owner. Consumer Handles
// for the same region are created with Attach, passing the *Region[P]
// this call returns via Handle.Region.
func Open[P any](b *Builder) (*Handle[P], error) {
	if b == nil {
		b = Configure()
	}
	region, err := NewRegion[P](b.capacity)
	if err != nil {
		return nil, err
	}
	return newHandle(region, true, b.opts), nil
}

// Attach binds a consumer Handle to an existing region. region must be
// the value returned by Handle.Region on the producer's Handle (or on
// another consumer's Handle attached to the same region). b may be nil
// to use the default Handle tunables.
func Attach[P any](region *Region[P], b *Builder) (*Handle[P], error) {
	if region == nil {
		return nil, ErrRegionAllocFailed
	}
	if b == nil {
		b = Configure()
	}
	return newHandle(region, false, b.opts), nil
}

func newHandle[P any](region *Region[P], producer bool, opts handleOptions) *Handle[P] {
	return &Handle[P]{
		region:     region,
		n:          region.n,
		descriptor: newDescriptor[P](),
		producer:   producer,
		opts:       opts,
	}
}

// Region returns the handle's underlying region, for passing to Attach
// from other goroutines.
func (h *Handle[P]) Region() *Region[P] { return h.region }

// Close releases the handle's local state. It never frees or mutates the
// region; the region outlives every handle attached to it.
func (h *Handle[P]) Close() error {
	h.region = nil
	return nil
}

// Cap returns the queue's fixed capacity N, from the handle's local
// cache (read once, at construction).
func (h *Handle[P]) Cap() int { return int(h.n) }

// DequeuedCount returns the advisory count of successful dequeues across
// all consumers. It is not load-bearing for queue correctness.
func (h *Handle[P]) DequeuedCount() uint64 { return h.region.dequeuedCount.LoadRelaxed() }

// TailAdvisory returns the producer's tail as last mirrored into the
// region. The value may lag the producer's true tail by one enqueue and
// must only be used for debugging or benchmarking.
func (h *Handle[P]) TailAdvisory() uint64 { return h.region.tailMirror.LoadRelaxed() }
