package ffq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Dequeue claims the next rank and returns its payload. It is safe to
// call from any number of goroutines concurrently. consumerID is carried
// through only for the caller's own logging or metrics; the core does
// not interpret it.
//
// Dequeue blocks (spinning, then backing off) until the claimed rank's
// payload has been published, or until it is skipped as a gap and a new
// rank is claimed in its place. It returns ErrRetryExhausted, without
// violating any queue invariant, only if an advisory retry cap
// (WithMaxRetries) has been configured and fires.
func (h *Handle[P]) Dequeue(consumerID int) (P, error) {
	var zero P
	r := h.region
	n := h.n

	rank := r.head.AddAcqRel(1) - 1
	i := rank % n

	sw := spin.Wait{}
	bo := iox.Backoff{}
	retries := 0

	for {
		c := &r.cells[i]
		cellRank := c.rank.LoadAcquire()

		if cellRank == int64(rank) {
			item := c.payload
			c.rank.StoreRelease(emptyRank)
			r.dequeuedCount.AddAcqRel(1)
			return item, nil
		}

		// rank is read again after gap: the producer may have published
		// this rank and then gapped a later one at the same slot between
		// the two loads above, and that published payload must not be
		// skipped.
		cellGap := c.gap.LoadAcquire()
		if cellGap >= int64(rank) && c.rank.LoadAcquire() != int64(rank) {
			rank = r.head.AddAcqRel(1) - 1
			i = rank % n
			bo.Reset()
			retries = 0
			continue
		}

		// Rank not published yet: the producer has not caught up to it.
		if h.opts.maxRetries > 0 {
			retries++
			if retries > h.opts.maxRetries {
				return zero, ErrRetryExhausted
			}
		}
		sw.Once()
		bo.Wait()
	}
}
