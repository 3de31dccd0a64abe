//go:build race

package ffq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip heavily concurrent tests, which trigger false
// positives: the race detector cannot see the happens-before edges
// established by the release/acquire pairs around rank, only explicit
// synchronization primitives.
const RaceEnabled = true
