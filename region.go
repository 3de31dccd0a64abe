package ffq

import "code.hybscloud.com/atomix"

// Region is the shared queue object: the cell array plus the counters
// that coordinate producer and consumers. In a distributed-memory
// deployment this is the structure that would live in a single RMA
// window; here it is an ordinary Go value shared across goroutines by
// pointer.
//
// Region is constructed once by NewRegion (called from Open) and is never
// resized. Callers do not construct a Region directly.
type Region[P any] struct {
	_             pad
	head          atomix.Uint64 // consumer-shared, FAA only
	_             pad
	tailMirror    atomix.Uint64 // advisory mirror of the producer's tail, relaxed store
	_             pad
	dequeuedCount atomix.Uint64 // advisory, incremented by consumers
	_             pad
	cells         []cell[P]
	n             uint64
}

// NewRegion allocates and zero-initializes a queue region with n cells.
// n must be at least 2. All cells start EMPTY, head starts at 0.
func NewRegion[P any](n int) (*Region[P], error) {
	if n < 2 {
		return nil, ErrConfigInvalid
	}
	r := &Region[P]{
		cells: make([]cell[P], n),
		n:     uint64(n),
	}
	for i := range r.cells {
		r.cells[i].rank.StoreRelaxed(emptyRank)
		r.cells[i].gap.StoreRelaxed(emptyRank)
	}
	return r, nil
}

// Cap returns the region's fixed capacity N.
func (r *Region[P]) Cap() int {
	return int(r.n)
}
