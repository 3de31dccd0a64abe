package ffq

// Enqueue adds item to the queue. It must only be called from the
// goroutine that created the Handle with Open; calling it on a Handle
// created with Attach, or from more than one goroutine concurrently, is
// undefined behavior that the core does not detect.
//
// Enqueue returns once item is published. If the slot the next rank would
// occupy is still held by a consumer that has not released it, the
// producer marks that rank as a gap and moves on to the next one rather
// than waiting for that consumer. While every slot in the ring is still
// held, Enqueue keeps marking gaps and does not return until some
// consumer releases a slot.
func (h *Handle[P]) Enqueue(item *P) {
	r := h.region
	n := h.n

	for {
		i := h.tail % n
		c := &r.cells[i]

		if c.rank.LoadAcquire() == emptyRank {
			c.payload = *item
			c.rank.StoreRelease(int64(h.tail))
			h.tail++
			h.publishTailAdvisory()
			return
		}

		// Slot still held by a consumer: skip this rank and mark the gap
		// so any consumer that later claims it knows to re-claim instead
		// of waiting forever.
		storeMax(&c.gap, int64(h.tail))
		h.tail++
		h.publishTailAdvisory()
	}
}

func (h *Handle[P]) publishTailAdvisory() {
	if h.opts.disableTailAdvisory {
		return
	}
	h.region.tailMirror.StoreRelaxed(h.tail)
}
