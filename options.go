package ffq

// handleOptions holds per-handle tunables. The zero value is the correct
// default: no retry cap, tail advisory enabled.
type handleOptions struct {
	maxRetries          int
	disableTailAdvisory bool
}

// Builder configures queue creation with a fluent API, the same shape
// the wider lock-free package this one started from uses for picking
// an algorithm and capacity. With only one algorithm here, Builder has
// nothing left to select — it only carries the capacity and the
// advisory Handle tunables through to Open/Attach.
//
// Example:
//
//	h, err := ffq.Open[Event](ffq.New(1024).WithMaxRetries(3))
type Builder struct {
	capacity int
	opts     handleOptions
}

// New creates a builder for a queue of the given capacity. Capacity is
// validated by Open, not by New, so that New(0) and friends can still
// flow into Open and surface ErrConfigInvalid instead of panicking.
func New(capacity int) *Builder {
	return &Builder{capacity: capacity}
}

// Configure creates a builder carrying only the Handle tunables below,
// for Attach calls that have no capacity to set — N always comes from
// the Region being attached to.
func Configure() *Builder {
	return &Builder{}
}

// WithMaxRetries sets the advisory retry cap a Dequeue call will spin
// through before returning ErrRetryExhausted. n <= 0 means unlimited,
// which is the default and matches the requirement that a correct
// execution — one where the producer keeps making progress — never trips
// the cap.
func (b *Builder) WithMaxRetries(n int) *Builder {
	b.opts.maxRetries = n
	return b
}

// WithoutTailAdvisory disables the relaxed tailMirror store Enqueue
// performs after every publish or gap write. The mirror is already
// advisory-only and off the correctness path; this option exists for
// embeddings that have no use for Handle.TailAdvisory and want to shave
// the extra store off the hot path.
func (b *Builder) WithoutTailAdvisory() *Builder {
	b.opts.disableTailAdvisory = true
	return b
}
