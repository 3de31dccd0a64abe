// Package ffq provides a bounded Fast-Forward Queue: a single-producer,
// multiple-consumer FIFO in which the producer is wait-free and never
// blocks on a slow consumer.
//
// # Quick Start
//
//	h, err := ffq.Open[Event](ffq.New(1024))
//	if err != nil {
//	    // capacity < 2
//	}
//	defer h.Close()
//
//	// Producer goroutine (must be the one that called Open, or one that
//	// owns the same Handle — Enqueue is not safe to call concurrently):
//	ev := Event{...}
//	h.Enqueue(&ev)
//
//	// Consumer goroutines attach to the same region:
//	c, _ := ffq.Attach[Event](h.Region(), nil)
//	defer c.Close()
//	ev, err := c.Dequeue(consumerID)
//	if err != nil {
//	    // ErrRetryExhausted: only possible if WithMaxRetries was set
//	}
//
// # The Gap Mechanism
//
// Unlike the bounded queues in most lock-free libraries, Enqueue on a
// full slot does not report backpressure to the caller. Instead it marks
// the slot's rank as a "gap" — the highest rank the producer has ever
// had to skip there — and moves on to the next rank immediately:
//
//	producer: slot busy → write gap = tail, tail++, try again
//	consumer: rank != claimed, gap >= claimed → re-claim the next rank
//
// This makes the producer wait-free at the cost of the queue's FIFO
// guarantee holding only up to reordering across gaps: a consumer that
// is fast may deliver a later rank before a slow consumer finishes an
// earlier one. Delivery order is the order ranks are claimed from head,
// not the order slots are vacated.
//
// # Ordering Contract
//
// Three release/acquire pairs carry the entire synchronization contract:
//
//   - producer writes payload, then StoreRelease(rank) — any consumer
//     that LoadAcquire's that rank also observes the payload write.
//   - consumer LoadAcquire's rank before reading payload.
//   - consumer reads payload, then StoreRelease(EMPTY) — the producer,
//     observing EMPTY, may safely reuse the slot.
//
// head's fetch-add (AddAcqRel) is the only place two consumers ever
// contend; it is what guarantees no two consumers are ever given the
// same rank.
//
// # Single Producer, Multiple Consumers
//
// Enqueue may only be called by the goroutine that owns the producer
// Handle (the one returned by Open). Dequeue is safe from any number of
// goroutines holding Handles attached to the same Region via Attach.
// Violating the single-producer precondition is undefined behavior the
// core does not detect, matching the queue's name: it is an SPMC
// structure, not an MPMC one.
//
// # Backoff
//
// Dequeue spins briefly with [code.hybscloud.com/spin.Wait] and then
// backs off with [code.hybscloud.com/iox.Backoff] while waiting for a
// rank to be published — the spin primitive the wider lock-free package
// this one started from uses in every blocking consumer loop, paired
// here with the sleeping backoff that package's own tests use alongside
// it, since this queue's Dequeue is allowed to block and theirs mostly
// is not. The backoff resets whenever a gap is skipped or a payload is
// delivered — any event that represents forward progress.
//
// # Retry Cap
//
// By default Dequeue waits indefinitely for a correct producer to catch
// up. Builder.WithMaxRetries configures an advisory cap after which
// Dequeue returns ErrRetryExhausted instead of continuing to spin; this
// must never fire under any execution where the producer keeps making
// progress, and exists only so embeddings can bound a wait instead of
// trusting the producer unconditionally.
//
// # Deployment Model
//
// The design this package implements is meant for a distributed-memory
// deployment where Region would live in a single RMA-accessible window
// and Handle would hold the window binding plus a cached serialization
// descriptor for the payload type, so that no per-call descriptor
// construction happens on the hot path. This package realizes the
// degenerate, fastest case of that design — a single process, with
// goroutines standing in for separate processes and
// [code.hybscloud.com/atomix] standing in for one-sided atomic RMA
// operations — while keeping the same Handle/descriptor split, so the
// boundary where a networked Region implementation would plug in is
// visible rather than erased.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering and [code.hybscloud.com/spin] and
// [code.hybscloud.com/iox] together for the consumer-side adaptive
// backoff.
package ffq
