package ffq

// pad is cache line padding to prevent false sharing between independently
// updated counters.
type pad [64]byte

// padShort pads out the remainder of a cache line after an 8-byte field.
type padShort [64 - 8]byte
