package ffq

import "code.hybscloud.com/atomix"

// emptyRank is the sentinel stored in a cell's rank and gap fields when
// the slot carries no meaningful value. Negative so it can never collide
// with a real rank.
const emptyRank int64 = -1

// cell is one slot of the ring. rank and gap are independent: rank tracks
// which logical position currently occupies the slot (or emptyRank when
// free), gap records the highest rank the producer has ever skipped over
// this slot.
//
// payload is a plain field, not an atomic one. Its visibility to consumers
// is established entirely by the release/acquire pair around rank: the
// producer writes payload before publishing rank with StoreRelease, and a
// consumer that observes rank via LoadAcquire is guaranteed to observe the
// payload write that preceded it.
type cell[P any] struct {
	rank    atomix.Int64
	gap     atomix.Int64
	payload P
	_       padShort
}

// storeMax raises a to v if v is larger than a's current value, using a
// CAS loop. Under the single-producer precondition a plain store of gap
// would already be monotonic, since the producer's own tail only ever
// increases; storeMax is used anyway so invariant 5 (monotonic gap) holds
// unconditionally rather than by precondition alone.
func storeMax(a *atomix.Int64, v int64) {
	for {
		cur := a.LoadRelaxed()
		if v <= cur {
			return
		}
		if a.CompareAndSwapRelaxed(cur, v) {
			return
		}
	}
}
